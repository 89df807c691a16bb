package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleTicker struct{}

func (idleTicker) C() <-chan time.Time { return nil }
func (idleTicker) Stop()               {}

func newTestConsole(t *testing.T) (*Console, *timekeeper.TimeKeeper, *bytes.Buffer) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	keeper := timekeeper.New(model.DefaultTimeKeeperConfig(), timekeeper.Config{
		NewTicker: func(time.Duration) timekeeper.Ticker { return idleTicker{} },
		Logger:    logger,
	})
	t.Cleanup(keeper.Close)
	var out bytes.Buffer
	return New(keeper, &out, logger), keeper, &out
}

func TestRender(t *testing.T) {
	snapshot := timekeeper.Snapshot{
		Remaining:    1499,
		Kind:         model.KindFocus,
		Running:      true,
		Durations:    model.DefaultDurations(),
		Notification: model.NotifyBell,
	}

	assert.Equal(t, "[Focus Mode] 24:59 running | focus 25m break 5m | sound Bell", Render(snapshot))
}

func TestExecute_StartPause(t *testing.T) {
	console, keeper, out := newTestConsole(t)

	assert.False(t, console.Execute("start"))
	assert.True(t, keeper.Snapshot().Running)

	console.Execute("start")
	assert.Contains(t, out.String(), "already running")
	assert.True(t, keeper.Snapshot().Running)

	console.Execute("pause")
	assert.False(t, keeper.Snapshot().Running)

	console.Execute("pause")
	assert.Contains(t, out.String(), "already paused")

	console.Execute("toggle")
	assert.True(t, keeper.Snapshot().Running)
}

func TestExecute_ResetAfterTicks(t *testing.T) {
	console, keeper, _ := newTestConsole(t)
	console.Execute("start")
	keeper.Tick()
	keeper.Tick()

	console.Execute("reset")

	snapshot := keeper.Snapshot()
	assert.Equal(t, 1500, snapshot.Remaining)
	assert.False(t, snapshot.Running)
}

func TestExecute_SetAppliesClampedDraft(t *testing.T) {
	console, keeper, out := newTestConsole(t)

	console.Execute("set 0 120")

	snapshot := keeper.Snapshot()
	assert.Equal(t, model.Durations{FocusMinutes: 1, BreakMinutes: 60}, snapshot.Durations)
	assert.Equal(t, 60, snapshot.Remaining)
	assert.Contains(t, out.String(), "[Focus Mode] 01:00 paused")
}

func TestExecute_SetKeepsBreakWhenOmitted(t *testing.T) {
	console, keeper, _ := newTestConsole(t)

	console.Execute("set 40")

	assert.Equal(t, model.Durations{FocusMinutes: 40, BreakMinutes: 5}, keeper.Snapshot().Durations)
}

func TestExecute_SetRejectsText(t *testing.T) {
	console, keeper, out := newTestConsole(t)

	console.Execute("set ten 5")

	assert.Contains(t, out.String(), `focus minutes "ten" is not a number`)
	assert.Equal(t, model.DefaultDurations(), keeper.Snapshot().Durations)
}

func TestExecute_Settings(t *testing.T) {
	console, _, out := newTestConsole(t)

	console.Execute("settings")

	assert.Contains(t, out.String(), "draft: focus 25m break 5m")
}

func TestExecute_Sound(t *testing.T) {
	console, keeper, _ := newTestConsole(t)

	console.Execute("sound Bell")
	assert.Equal(t, model.NotifyBell, keeper.Snapshot().Notification)

	console.Execute("sound chime")
	assert.Equal(t, model.NotifyNone, keeper.Snapshot().Notification)
}

func TestExecute_UnknownAndQuit(t *testing.T) {
	console, _, out := newTestConsole(t)

	assert.False(t, console.Execute("dance"))
	assert.Contains(t, out.String(), `unknown command "dance"`)
	assert.False(t, console.Execute("   "))
	assert.True(t, console.Execute("quit"))
}

func TestRun_ProcessesUntilQuit(t *testing.T) {
	console, keeper, out := newTestConsole(t)
	input := strings.NewReader("start\nstatus\nquit\nreset\n")

	err := console.Run(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, keeper.Snapshot().Running)
	assert.Contains(t, out.String(), "[Focus Mode] 25:00 paused")
	assert.Contains(t, out.String(), "[Focus Mode] 25:00 running")
}

func TestRun_EndOfInput(t *testing.T) {
	console, _, _ := newTestConsole(t)

	err := console.Run(context.Background(), strings.NewReader("status\n"))

	assert.NoError(t, err)
}

func TestWatch_RendersExpiry(t *testing.T) {
	console, keeper, out := newTestConsole(t)
	events := keeper.Subscribe(128, timekeeper.EventExpired)
	keeper.ApplySettings(model.Draft{FocusMinutes: 1, BreakMinutes: 2})
	keeper.ToggleRun()
	for i := 0; i < 60; i++ {
		keeper.Tick()
	}
	keeper.Close()

	console.Watch(context.Background(), events)

	assert.Contains(t, out.String(), "Focus session finished")
	assert.Contains(t, out.String(), "[Break Mode] 02:00 paused")
}
