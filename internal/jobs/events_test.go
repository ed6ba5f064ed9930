package jobs

import (
	"testing"

	"github.com/voicequill/voicequill/internal/domain"
)

func TestEventBusPublishAssignsSequence(t *testing.T) {
	bus := NewEventBus(10)

	first := bus.Publish(Event{JobID: "j1", Type: EventTypeStatus, Status: domain.StatusPending})
	second := bus.Publish(Event{JobID: "j1", Type: EventTypeStatus, Status: domain.StatusTranscribing})

	if first.Seq != 1 || second.Seq != 2 {
		t.Errorf("sequences = %d, %d, want 1, 2", first.Seq, second.Seq)
	}
	if first.Timestamp.IsZero() {
		t.Error("timestamp should be assigned")
	}
}

func TestEventBusSince(t *testing.T) {
	bus := NewEventBus(10)
	for i := 0; i < 5; i++ {
		bus.Publish(Event{JobID: "j1", Type: EventTypeStatus})
	}

	if got := len(bus.Since(0)); got != 5 {
		t.Errorf("Since(0) = %d events, want 5", got)
	}
	if got := len(bus.Since(3)); got != 2 {
		t.Errorf("Since(3) = %d events, want 2", got)
	}
	if got := bus.Since(5); got != nil && len(got) != 0 {
		t.Errorf("Since(5) = %d events, want 0", len(got))
	}
}

func TestEventBusBounded(t *testing.T) {
	bus := NewEventBus(3)
	for i := 0; i < 10; i++ {
		bus.Publish(Event{JobID: "j1", Type: EventTypeStatus})
	}

	events := bus.Since(0)
	if len(events) != 3 {
		t.Fatalf("bounded bus kept %d events, want 3", len(events))
	}
	if events[0].Seq != 8 {
		t.Errorf("oldest retained seq = %d, want 8", events[0].Seq)
	}
}

func TestManagerPublishesEvents(t *testing.T) {
	bus := NewEventBus(100)
	m := NewManager(bus)

	job, _ := m.Create("a.mp3", 1, mod, "/tmp/a.mp3", false)
	m.BeginTranscription(job.ID)
	m.CompleteTranscription(job.ID, "text")

	events := bus.Since(0)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	want := []domain.Status{domain.StatusPending, domain.StatusTranscribing, domain.StatusCompleted}
	for i, e := range events {
		if e.Status != want[i] {
			t.Errorf("event %d status = %s, want %s", i, e.Status, want[i])
		}
		if e.JobID != job.ID {
			t.Errorf("event %d jobID = %s", i, e.JobID)
		}
	}
}
