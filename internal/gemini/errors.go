package gemini

import "errors"

// stageError carries a human-readable message for the job card while the
// underlying cause stays available for logging via Unwrap.
type stageError struct {
	msg string
	err error
}

func (e *stageError) Error() string { return e.msg }
func (e *stageError) Unwrap() error { return e.err }

// TranscriptionError wraps a failed transcription round trip.
type TranscriptionError struct{ stageError }

// TranslationError wraps a failed translation round trip.
type TranslationError struct{ stageError }

// QuoteExtractionError wraps a failed or malformed quote extraction.
type QuoteExtractionError struct{ stageError }

func newTranscriptionError(err error) error {
	return &TranscriptionError{stageError{msg: "transcription failed", err: err}}
}

func newTranslationError(err error) error {
	return &TranslationError{stageError{msg: "translation failed", err: err}}
}

func newQuoteExtractionError(err error) error {
	return &QuoteExtractionError{stageError{msg: "quote extraction failed", err: err}}
}

// IsTranscriptionError reports whether err is a transcription failure.
func IsTranscriptionError(err error) bool {
	var e *TranscriptionError
	return errors.As(err, &e)
}

// IsTranslationError reports whether err is a translation failure.
func IsTranslationError(err error) bool {
	var e *TranslationError
	return errors.As(err, &e)
}

// IsQuoteExtractionError reports whether err is a quote extraction failure.
func IsQuoteExtractionError(err error) bool {
	var e *QuoteExtractionError
	return errors.As(err, &e)
}
