package domain

import "time"

// Status tracks each lifecycle stage for a single processing job.
type Status string

const (
	StatusPending      Status = "pending"
	StatusTranscribing Status = "transcribing"
	StatusCompleted    Status = "completed"
	StatusTranslated   Status = "translated"
	StatusSummarized   Status = "summarized"
	StatusError        Status = "error"
)

// Quote is a short verbatim excerpt attributed to an inferred speaker.
type Quote struct {
	Speaker string `json:"speaker"`
	Text    string `json:"quote"`
}

// Job holds the full state of one uploaded file's processing pipeline.
// Each job is owned by the manager; callers only ever see copies.
type Job struct {
	ID          string
	FileName    string
	FileSize    int64
	ModTime     time.Time
	Path        string
	Timecodes   bool
	Status      Status
	Transcript  string
	Translation string
	Quotes      []Quote
	Error       string
}

// CanTransition enforces the allowed job state machine edges.
// Translate and quote-extraction failures do not transition at all,
// so there is no edge from completed or translated to error.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusTranscribing
	case StatusTranscribing:
		return to == StatusCompleted || to == StatusError
	case StatusCompleted:
		return to == StatusTranslated
	case StatusTranslated:
		return to == StatusSummarized
	default:
		return false
	}
}

// HasTranscript reports whether the job holds a successful transcript.
func HasTranscript(j Job) bool {
	return j.Transcript != ""
}

// HasTranslation reports whether the job holds a successful translation.
func HasTranslation(j Job) bool {
	return j.Translation != ""
}
