package timerwindow

import (
	"testing"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	timer := New(app, Callbacks{})

	timer.Render(timekeeper.Snapshot{
		Remaining:    299,
		Kind:         model.KindBreak,
		Running:      true,
		Durations:    model.DefaultDurations(),
		Notification: model.NotifyBell,
	})

	assert.Equal(t, "Break Mode", timer.titleLabel.Text)
	assert.Equal(t, "04:59", timer.clockLabel.Text)
	assert.Equal(t, "Bell", timer.sound.Selected)
	assert.Equal(t, breakBackground, timer.background.FillColor)
	assert.InDelta(t, 1.0/300.0, timer.progress.Value, 0.0001)
}

func TestButtonsForwardIntents(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	var toggles, resets, settings int
	var sounds []model.NotificationMode
	timer := New(app, Callbacks{
		OnToggle:   func() { toggles++ },
		OnReset:    func() { resets++ },
		OnSettings: func() { settings++ },
		OnSound:    func(mode model.NotificationMode) { sounds = append(sounds, mode) },
	})

	test.Tap(timer.toggle)
	test.Tap(timer.toggle)
	test.Tap(timer.reset)
	test.Tap(timer.settings)
	timer.sound.SetSelected("Bell")

	assert.Equal(t, 2, toggles)
	assert.Equal(t, 1, resets)
	assert.Equal(t, 1, settings)
	assert.Equal(t, []model.NotificationMode{model.NotifyBell}, sounds)
}

func TestRenderDoesNotEchoSound(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	calls := 0
	timer := New(app, Callbacks{OnSound: func(model.NotificationMode) { calls++ }})

	timer.Render(timekeeper.Snapshot{Kind: model.KindFocus, Durations: model.DefaultDurations(), Notification: model.NotifyBell})

	assert.Zero(t, calls)
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Focus Mode", Heading(model.KindFocus))
	assert.Equal(t, "Break Mode", Heading(model.KindBreak))
}

func TestNewUsesThemeFontForClock(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	timer := New(app, Callbacks{})
	timer.Render(timekeeper.Snapshot{Remaining: 1500, Kind: model.KindFocus, Durations: model.DefaultDurations()})

	assert.True(t, timer.clockLabel.TextStyle.Monospace)
	assert.False(t, timer.clockLabel.TextStyle.Bold)
	assert.Positive(t, timer.clockLabel.MinSize().Width)
}
