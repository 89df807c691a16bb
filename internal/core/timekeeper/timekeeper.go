package timekeeper

import (
	"log/slog"
	"sync"
	"time"

	"focustimer/internal/core/model"
	"focustimer/internal/observability"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	NewTicker    TickerFactory
	Logger       *slog.Logger
}

// TimeKeeper is the focus/break session state machine.
//
// All operations are serialized by a single mutex and run to completion.
// While running, an owned ticker drives Tick once per TickInterval. The
// ticker is released on every path that stops the countdown.
type TimeKeeper struct {
	mu           sync.Mutex
	options      Config
	logger       *slog.Logger
	durations    model.Durations
	kind         model.SessionKind
	remaining    int
	running      bool
	notification model.NotificationMode
	subscribers  []subscriber
	ticker       Ticker
	stopCh       chan struct{}
	generation   uint64
	closed       bool
}

type subscriber struct {
	ch    chan Event
	types map[EventType]bool
}

func (sub subscriber) wants(eventType EventType) bool {
	return len(sub.types) == 0 || sub.types[eventType]
}

// New creates a TimeKeeper in the Focus session, paused, with the full
// focus duration remaining.
func New(config model.TimeKeeperConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = NewClockTicker
	}
	config = config.Normalized()
	keeper := &TimeKeeper{
		options:      options,
		logger:       observability.WithComponent(options.Logger, "timekeeper"),
		durations:    config.Durations,
		kind:         model.KindFocus,
		notification: config.Notification,
	}
	keeper.remaining = keeper.durations.Seconds(keeper.kind)
	return keeper
}

// Subscribe registers a new observer channel. With no types every event is
// delivered. Delivery never blocks: a full channel drops the event.
func (keeper *TimeKeeper) Subscribe(buffer int, types ...EventType) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	sub := subscriber{ch: make(chan Event, buffer)}
	if len(types) > 0 {
		sub.types = make(map[EventType]bool, len(types))
		for _, eventType := range types {
			sub.types[eventType] = true
		}
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(sub.ch)
		return sub.ch
	}
	keeper.subscribers = append(keeper.subscribers, sub)
	return sub.ch
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// ToggleRun flips between running and paused.
func (keeper *TimeKeeper) ToggleRun() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.running = !keeper.running
	if keeper.running {
		keeper.startTickerLocked()
	} else {
		keeper.stopTickerLocked()
	}
	keeper.logger.Debug("toggle run", "running", keeper.running, "remaining", keeper.remaining)
	return keeper.emitStateLocked()
}

// Tick advances the countdown by one second. It is a no-op while paused.
func (keeper *TimeKeeper) Tick() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running {
		keeper.tickLocked(time.Now())
	}
	return keeper.snapshotLocked()
}

// Reset restarts the current session from its full duration and pauses.
func (keeper *TimeKeeper) Reset() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.restartSessionLocked()
	keeper.logger.Debug("reset", "kind", keeper.kind, "remaining", keeper.remaining)
	return keeper.emitStateLocked()
}

// OpenSettingsDraft returns the committed durations as an editable draft.
func (keeper *TimeKeeper) OpenSettingsDraft() model.Draft {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return model.DraftFrom(keeper.durations)
}

// ApplySettings commits a draft. Values are clamped to [1,60] minutes. The
// in-progress countdown is discarded and restarted for the current kind.
func (keeper *TimeKeeper) ApplySettings(draft model.Draft) Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.durations = draft.Durations()
	keeper.restartSessionLocked()
	keeper.logger.Info("settings applied", "durations", keeper.durations.String(), "kind", keeper.kind)
	return keeper.emitStateLocked()
}

// SetNotificationMode stores the cue used on the next expiry. Unknown modes
// become none.
func (keeper *TimeKeeper) SetNotificationMode(mode model.NotificationMode) Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.notification = mode.Normalize()
	keeper.logger.Debug("notification mode", "mode", keeper.notification)
	return keeper.emitStateLocked()
}

// Close releases the ticker and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.running = false
	keeper.stopTickerLocked()
	subscribers := keeper.subscribers
	keeper.subscribers = nil
	keeper.mu.Unlock()

	for _, sub := range subscribers {
		close(sub.ch)
	}
}

func (keeper *TimeKeeper) tickLocked(now time.Time) {
	if keeper.remaining > 0 {
		keeper.remaining--
	}
	if keeper.remaining > 0 {
		keeper.emitLocked(Event{
			Type:     EventProgress,
			Snapshot: keeper.snapshotLocked(),
			At:       now,
		})
		return
	}
	keeper.expireLocked(now)
}

// expireLocked switches kinds. Remaining never stays at zero under the old kind.
func (keeper *TimeKeeper) expireLocked(now time.Time) {
	previous := keeper.kind
	keeper.kind = previous.Next()
	keeper.remaining = keeper.durations.Seconds(keeper.kind)
	keeper.running = false
	keeper.stopTickerLocked()

	keeper.logger.Info("session expired", "previous", previous, "next", keeper.kind, "notification", keeper.notification)
	keeper.emitLocked(Event{
		Type:         EventExpired,
		Snapshot:     keeper.snapshotLocked(),
		PreviousKind: previous,
		Mode:         keeper.notification,
		At:           now,
	})
}

func (keeper *TimeKeeper) restartSessionLocked() {
	keeper.remaining = keeper.durations.Seconds(keeper.kind)
	keeper.running = false
	keeper.stopTickerLocked()
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		Remaining:    keeper.remaining,
		Kind:         keeper.kind,
		Running:      keeper.running,
		Durations:    keeper.durations,
		Notification: keeper.notification,
	}
}

func (keeper *TimeKeeper) emitStateLocked() Snapshot {
	snapshot := keeper.snapshotLocked()
	keeper.emitLocked(Event{
		Type:     EventStateChange,
		Snapshot: snapshot,
		At:       time.Now(),
	})
	return snapshot
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, sub := range keeper.subscribers {
		if !sub.wants(event.Type) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
}
