package exporter

import "github.com/voicequill/voicequill/internal/domain"

// Exporter writes a job's artifacts into the output directory. Each method
// returns the written path, or "" when the job is missing a required field
// (a no-op, not an error; callers are expected to check preconditions).
type Exporter interface {
	Document(job domain.Job) (string, error)
	TranscriptSRT(job domain.Job) (string, error)
	TranslationSRT(job domain.Job) (string, error)
}
