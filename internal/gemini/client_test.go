package gemini

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildTranscribePrompt(t *testing.T) {
	timecoded := buildTranscribePrompt(true)
	if !strings.Contains(timecoded, "SRT") {
		t.Error("timecoded prompt should request SRT output")
	}

	plain := buildTranscribePrompt(false)
	if strings.Contains(plain, "SRT") {
		t.Error("plain prompt should not mention SRT")
	}
	if !strings.Contains(plain, "speaker label") {
		t.Error("plain prompt should request speaker labels")
	}
}

func TestBuildTranslatePrompt(t *testing.T) {
	structured := buildTranslatePrompt("1\n00:00:01,000 --> 00:00:02,000\nhello", "Spanish", true)
	if !strings.Contains(structured, "timecode") {
		t.Error("structured prompt should instruct to preserve timecodes")
	}
	if !strings.Contains(structured, "Spanish") {
		t.Error("prompt should name the target language")
	}

	plain := buildTranslatePrompt("hello", "Spanish", false)
	if strings.Contains(plain, "timecode") {
		t.Error("plain prompt should not mention timecodes")
	}
	if !strings.Contains(plain, "hello") {
		t.Error("prompt should carry the input text")
	}
}

func TestParseQuotes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			name: "well formed",
			raw:  `{"quotes":[{"speaker":"Speaker 1","quote":"a"},{"speaker":"Speaker 2","quote":"b"}]}`,
			want: 2,
		},
		{
			name:    "not json",
			raw:     "sorry, I cannot do that",
			wantErr: true,
		},
		{
			name:    "empty list",
			raw:     `{"quotes":[]}`,
			wantErr: true,
		},
		{
			name:    "missing field",
			raw:     `{"other":true}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, err := parseQuotes(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseQuotes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(quotes) != tt.want {
				t.Errorf("parseQuotes() returned %d quotes, want %d", len(quotes), tt.want)
			}
		})
	}
}

func TestParseQuotesPreservesOrder(t *testing.T) {
	raw := `{"quotes":[{"speaker":"B","quote":"second speaker first"},{"speaker":"A","quote":"then A"}]}`
	quotes, err := parseQuotes(raw)
	if err != nil {
		t.Fatal(err)
	}
	if quotes[0].Speaker != "B" || quotes[1].Speaker != "A" {
		t.Errorf("extraction order not preserved: %+v", quotes)
	}
}

func TestErrorTypes(t *testing.T) {
	cause := errors.New("boom")

	terr := newTranscriptionError(cause)
	if !IsTranscriptionError(terr) {
		t.Error("IsTranscriptionError should match")
	}
	if IsTranslationError(terr) || IsQuoteExtractionError(terr) {
		t.Error("transcription error should not match other kinds")
	}
	if !errors.Is(terr, cause) {
		t.Error("cause should be reachable via Unwrap")
	}
	if strings.Contains(terr.Error(), "boom") {
		t.Error("cause detail should not leak into the user-facing message")
	}

	if !IsTranslationError(newTranslationError(cause)) {
		t.Error("IsTranslationError should match")
	}
	if !IsQuoteExtractionError(newQuoteExtractionError(cause)) {
		t.Error("IsQuoteExtractionError should match")
	}
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"googleapi: Error 429: rate limit", true},
		{"RESOURCE_EXHAUSTED: out of quota", true},
		{"quota exceeded for project", true},
		{"connection refused", false},
	}

	for _, tt := range tests {
		if got := isQuotaError(errors.New(tt.msg)); got != tt.want {
			t.Errorf("isQuotaError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
