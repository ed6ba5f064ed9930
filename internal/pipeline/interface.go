package pipeline

import "context"

// Pipeline drives one dropped file through transcription, translation,
// quote extraction and export.
type Pipeline interface {
	Process(ctx context.Context, filePath string) error
}
