package exporter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/voicequill/voicequill/internal/domain"
)

// TranscriptSRT writes the raw transcript as <base>_transcript.srt. Only
// jobs that requested timecodes produce an SRT artifact; quotes and the
// translation are not required.
func (e *implExporter) TranscriptSRT(job domain.Job) (string, error) {
	if !job.Timecodes || !domain.HasTranscript(job) {
		return "", nil
	}
	return e.writeSRT(job.FileName, "_transcript", job.Transcript)
}

// TranslationSRT writes the raw translation as <base>_translation.srt.
func (e *implExporter) TranslationSRT(job domain.Job) (string, error) {
	if !job.Timecodes || !domain.HasTranslation(job) {
		return "", nil
	}
	return e.writeSRT(job.FileName, "_translation", job.Translation)
}

func (e *implExporter) writeSRT(source, suffix, content string) (string, error) {
	base := strings.TrimSuffix(source, filepath.Ext(source))
	outputPath := filepath.Join(e.outputDir, base+suffix+".srt")

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return outputPath, nil
}
