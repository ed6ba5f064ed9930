package exporter

import (
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/voicequill/voicequill/internal/domain"
	"github.com/voicequill/voicequill/internal/srt"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	titleSize   = 16
	headingSize = 15
)

// Document writes the combined docx: title, SRT-stripped transcription and
// translation sections, and quotes grouped by speaker. Jobs missing any of
// the three artifacts produce nothing.
func (e *implExporter) Document(job domain.Job) (string, error) {
	if !domain.HasTranscript(job) || !domain.HasTranslation(job) || len(job.Quotes) == 0 {
		return "", nil
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", err
	}

	addStyledRun(doc.AddParagraph(""), job.FileName, true, titleSize)
	doc.AddParagraph("")

	addSection(doc, "Transcription", srt.Clean(job.Transcript))
	addSection(doc, "Translation", srt.Clean(job.Translation))

	addStyledRun(doc.AddParagraph(""), "Key Quotes", true, headingSize)
	for _, group := range groupQuotes(job.Quotes) {
		addStyledRun(doc.AddParagraph(""), group.Speaker, true, fontSize)
		for _, q := range group.Quotes {
			p := doc.AddParagraph("")
			p.AddText("“"+q+"”").Font(fontName).Size(fontSize).Color("333333")
		}
		doc.AddParagraph("")
	}

	outputPath := filepath.Join(e.outputDir, documentFileName(job.FileName))
	if err := doc.SaveTo(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

func addSection(doc *docx.RootDoc, heading, body string) {
	addStyledRun(doc.AddParagraph(""), heading, true, headingSize)
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}
	doc.AddParagraph("")
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// documentFileName replaces the source extension with the _processed suffix.
func documentFileName(source string) string {
	base := strings.TrimSuffix(source, filepath.Ext(source))
	return base + "_processed.docx"
}

type quoteGroup struct {
	Speaker string
	Quotes  []string
}

// groupQuotes groups by speaker in first-appearance order, preserving the
// extraction order within each group.
func groupQuotes(quotes []domain.Quote) []quoteGroup {
	var groups []quoteGroup
	index := make(map[string]int)

	for _, q := range quotes {
		i, ok := index[q.Speaker]
		if !ok {
			i = len(groups)
			index[q.Speaker] = i
			groups = append(groups, quoteGroup{Speaker: q.Speaker})
		}
		groups[i].Quotes = append(groups[i].Quotes, q.Text)
	}

	return groups
}
