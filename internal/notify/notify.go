// Package notify plays the expiry cue selected by the notification mode.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"
	"focustimer/internal/observability"
)

// Cue describes one expiry notification.
type Cue struct {
	PreviousKind model.SessionKind
	NextKind     model.SessionKind
	NextMinutes  int
	Mode         model.NotificationMode
}

// Summary is the notification title.
func (cue Cue) Summary() string {
	if cue.PreviousKind == model.KindBreak {
		return "Break is over"
	}
	return "Focus session complete"
}

// Body is the notification text.
func (cue Cue) Body() string {
	if cue.NextKind == model.KindBreak {
		return fmt.Sprintf("Time for a %d minute break.", cue.NextMinutes)
	}
	return fmt.Sprintf("Back to a %d minute focus session.", cue.NextMinutes)
}

// CueFromEvent returns the cue for an expiry event. It reports false for
// other events and for the none mode.
func CueFromEvent(event timekeeper.Event) (Cue, bool) {
	if event.Type != timekeeper.EventExpired || event.Mode.Normalize() == model.NotifyNone {
		return Cue{}, false
	}
	return Cue{
		PreviousKind: event.PreviousKind,
		NextKind:     event.Snapshot.Kind,
		NextMinutes:  event.Snapshot.Durations.Minutes(event.Snapshot.Kind),
		Mode:         event.Mode,
	}, true
}

// Notifier delivers a cue to the user.
type Notifier interface {
	Notify(ctx context.Context, cue Cue) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, cue Cue) error

func (fn NotifierFunc) Notify(ctx context.Context, cue Cue) error {
	return fn(ctx, cue)
}

// Multi fans a cue out to every notifier and joins their errors.
type Multi []Notifier

func (notifiers Multi) Notify(ctx context.Context, cue Cue) error {
	var errs []error
	for _, notifier := range notifiers {
		if err := notifier.Notify(ctx, cue); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Dispatcher consumes expiry events and fires cues without blocking the
// event stream. A failing or slow notifier only produces a log line.
type Dispatcher struct {
	notifier Notifier
	logger   *slog.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. A non-positive timeout defaults to 5s.
func NewDispatcher(notifier Notifier, logger *slog.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		notifier: notifier,
		logger:   observability.WithComponent(logger, "notify"),
		timeout:  timeout,
	}
}

// Start runs the dispatcher on its own goroutine. Wait covers the loop as
// well as the cues it fires.
func (dispatcher *Dispatcher) Start(ctx context.Context, events <-chan timekeeper.Event) {
	dispatcher.wg.Add(1)
	go func() {
		defer dispatcher.wg.Done()
		dispatcher.Run(ctx, events)
	}()
}

// Run reads events until ctx is done or the channel is closed.
func (dispatcher *Dispatcher) Run(ctx context.Context, events <-chan timekeeper.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if cue, ok := CueFromEvent(event); ok {
				dispatcher.fire(ctx, cue)
			}
		}
	}
}

// Wait blocks until a started loop has returned and every fired cue has finished.
func (dispatcher *Dispatcher) Wait() {
	dispatcher.wg.Wait()
}

func (dispatcher *Dispatcher) fire(ctx context.Context, cue Cue) {
	dispatcher.wg.Add(1)
	go func() {
		defer dispatcher.wg.Done()
		notifyCtx, cancel := context.WithTimeout(ctx, dispatcher.timeout)
		defer cancel()

		if err := dispatcher.notifier.Notify(notifyCtx, cue); err != nil {
			dispatcher.logger.Warn("expiry cue failed", "mode", cue.Mode, "previous", cue.PreviousKind, "error", err)
			return
		}
		dispatcher.logger.Debug("expiry cue sent", "mode", cue.Mode, "previous", cue.PreviousKind)
	}()
}
