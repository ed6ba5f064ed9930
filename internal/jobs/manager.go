package jobs

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voicequill/voicequill/internal/domain"
)

// ErrUnknownJob is returned when an action names a job the manager
// never created.
var ErrUnknownJob = errors.New("unknown job")

// ErrNoTranscript is returned when translate is requested before a
// transcript exists.
var ErrNoTranscript = errors.New("job has no transcript")

// ErrNoTranslation is returned when quote extraction is requested before a
// translation exists.
var ErrNoTranslation = errors.New("job has no translation")

// Manager tracks every processing job in the session. Jobs are independent;
// callers only ever receive copies, so no job's mutable state escapes.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*domain.Job
	bus  *EventBus
}

// NewManager creates an empty manager publishing to bus.
func NewManager(bus *EventBus) *Manager {
	return &Manager{
		jobs: make(map[string]*domain.Job),
		bus:  bus,
	}
}

// Create registers a job for the given file. A file already registered with
// the same (name, size, modTime) triple is not queued a second time; the
// existing job is returned with created=false.
func (m *Manager) Create(name string, size int64, modTime time.Time, path string, timecodes bool) (domain.Job, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, j := range m.jobs {
		if j.FileName == name && j.FileSize == size && j.ModTime.Equal(modTime) {
			return snapshot(j), false
		}
	}

	job := &domain.Job{
		ID:        uuid.NewString(),
		FileName:  name,
		FileSize:  size,
		ModTime:   modTime,
		Path:      path,
		Timecodes: timecodes,
		Status:    domain.StatusPending,
	}
	m.jobs[job.ID] = job
	m.publishStatus(job)

	return snapshot(job), true
}

// BeginTranscription moves a pending job into the transcribing state.
func (m *Manager) BeginTranscription(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrUnknownJob
	}
	if !domain.CanTransition(job.Status, domain.StatusTranscribing) {
		return fmt.Errorf("invalid transition: %s -> %s", job.Status, domain.StatusTranscribing)
	}

	job.Status = domain.StatusTranscribing
	m.publishStatus(job)
	return nil
}

// CompleteTranscription stores the transcript and marks the job completed.
func (m *Manager) CompleteTranscription(id, transcript string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrUnknownJob
	}
	if !domain.CanTransition(job.Status, domain.StatusCompleted) {
		return fmt.Errorf("invalid transition: %s -> %s", job.Status, domain.StatusCompleted)
	}

	job.Transcript = transcript
	job.Status = domain.StatusCompleted
	job.Error = ""
	m.publishStatus(job)
	return nil
}

// FailTranscription marks the job as terminally failed. With no transcript
// there is nothing left to act on, so this is the one stage whose failure
// changes the status.
func (m *Manager) FailTranscription(id string, cause error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrUnknownJob
	}
	if !domain.CanTransition(job.Status, domain.StatusError) {
		return fmt.Errorf("invalid transition: %s -> %s", job.Status, domain.StatusError)
	}

	job.Status = domain.StatusError
	job.Error = cause.Error()
	m.publishError(job)
	return nil
}

// CompleteTranslation stores the translation. Valid whenever a transcript
// exists; the status advances only along an allowed edge, so re-translating
// an already summarized job keeps its status.
func (m *Manager) CompleteTranslation(id, translation string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrUnknownJob
	}
	if !domain.HasTranscript(*job) {
		return ErrNoTranscript
	}

	job.Translation = translation
	job.Error = ""
	if domain.CanTransition(job.Status, domain.StatusTranslated) {
		job.Status = domain.StatusTranslated
	}
	m.publishStatus(job)
	return nil
}

// FailTranslation records the error message. Status, transcript and any
// prior translation stay untouched.
func (m *Manager) FailTranslation(id string, cause error) error {
	return m.failAction(id, cause)
}

// CompleteQuotes stores the extracted quotes. Valid whenever a translation
// exists.
func (m *Manager) CompleteQuotes(id string, quotes []domain.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrUnknownJob
	}
	if !domain.HasTranslation(*job) {
		return ErrNoTranslation
	}

	job.Quotes = append([]domain.Quote(nil), quotes...)
	job.Error = ""
	if domain.CanTransition(job.Status, domain.StatusSummarized) {
		job.Status = domain.StatusSummarized
	}
	m.publishStatus(job)
	return nil
}

// FailQuotes records the error message, preserving all prior state.
func (m *Manager) FailQuotes(id string, cause error) error {
	return m.failAction(id, cause)
}

// failAction is the shared non-destructive failure path for the user-gated
// stages: only the error message changes.
func (m *Manager) failAction(id string, cause error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrUnknownJob
	}

	job.Error = cause.Error()
	m.publishError(job)
	return nil
}

// Snapshot returns a copy of the job's current state.
func (m *Manager) Snapshot(id string) (domain.Job, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[id]
	if !ok {
		return domain.Job{}, false
	}
	return snapshot(job), true
}

// Remove drops a job, as when its file is removed from the session.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.jobs, id)
}

// Len reports the number of tracked jobs.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.jobs)
}

func (m *Manager) publishStatus(job *domain.Job) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(Event{
		JobID:    job.ID,
		FileName: job.FileName,
		Type:     EventTypeStatus,
		Status:   job.Status,
	})
}

func (m *Manager) publishError(job *domain.Job) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(Event{
		JobID:    job.ID,
		FileName: job.FileName,
		Type:     EventTypeError,
		Status:   job.Status,
		Message:  job.Error,
	})
}

// snapshot copies a job, detaching the quotes slice.
func snapshot(j *domain.Job) domain.Job {
	out := *j
	if j.Quotes != nil {
		out.Quotes = append([]domain.Quote(nil), j.Quotes...)
	}
	return out
}
