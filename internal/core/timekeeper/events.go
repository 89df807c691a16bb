package timekeeper

import (
	"fmt"
	"time"

	"focustimer/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventExpired     EventType = "session_expired"
)

// Snapshot is a read-only copy of the timer state for rendering.
type Snapshot struct {
	Remaining    int
	Kind         model.SessionKind
	Running      bool
	Durations    model.Durations
	Notification model.NotificationMode
}

// Clock formats the remaining time as mm:ss.
func (snapshot Snapshot) Clock() string {
	return FormatClock(snapshot.Remaining)
}

// RemainingDuration returns the remaining time as a time.Duration.
func (snapshot Snapshot) RemainingDuration() time.Duration {
	return time.Duration(snapshot.Remaining) * time.Second
}

// Progress returns the elapsed fraction of the current session.
func (snapshot Snapshot) Progress() float64 {
	total := snapshot.Durations.Seconds(snapshot.Kind)
	if total <= 0 {
		return 1
	}
	progress := float64(total-snapshot.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	// PreviousKind and Mode are set on EventExpired.
	PreviousKind model.SessionKind
	Mode         model.NotificationMode
	At           time.Time
}

// FormatClock renders seconds as zero padded mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
