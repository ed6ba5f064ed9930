package language

// Language is an immutable {code, name} pair from the fixed catalog.
type Language struct {
	Code string
	Name string
}

// languages is the master list of supported translation targets
var languages = []Language{
	{Code: "ar", Name: "Arabic"},
	{Code: "bn", Name: "Bengali"},
	{Code: "zh", Name: "Chinese"},
	{Code: "cs", Name: "Czech"},
	{Code: "da", Name: "Danish"},
	{Code: "nl", Name: "Dutch"},
	{Code: "en", Name: "English"},
	{Code: "fi", Name: "Finnish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "el", Name: "Greek"},
	{Code: "he", Name: "Hebrew"},
	{Code: "hi", Name: "Hindi"},
	{Code: "hu", Name: "Hungarian"},
	{Code: "id", Name: "Indonesian"},
	{Code: "it", Name: "Italian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "no", Name: "Norwegian"},
	{Code: "pl", Name: "Polish"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ro", Name: "Romanian"},
	{Code: "ru", Name: "Russian"},
	{Code: "es", Name: "Spanish"},
	{Code: "sv", Name: "Swedish"},
	{Code: "th", Name: "Thai"},
	{Code: "tr", Name: "Turkish"},
	{Code: "uk", Name: "Ukrainian"},
	{Code: "vi", Name: "Vietnamese"},
}

var codeIndex map[string]Language

func init() {
	codeIndex = make(map[string]Language, len(languages))
	for _, l := range languages {
		codeIndex[l.Code] = l
	}
}

// ByCode looks up a language by its ISO 639-1 code.
func ByCode(code string) (Language, bool) {
	l, ok := codeIndex[code]
	return l, ok
}

// All returns a copy of the catalog in display order.
func All() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}
