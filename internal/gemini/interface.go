package gemini

import (
	"context"

	"github.com/voicequill/voicequill/internal/domain"
)

// Client defines the three remote inference round trips of the pipeline.
// Calls are safe to re-invoke; failures surface immediately, no retry.
type Client interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string, timecodes bool) (string, error)
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	ExtractQuotes(ctx context.Context, text string) ([]domain.Quote, error)
}
