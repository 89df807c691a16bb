package tray

import (
	"testing"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	snapshot := timekeeper.Snapshot{Remaining: 1500, Kind: model.KindFocus, Durations: model.DefaultDurations()}
	assert.Equal(t, "Focus 25:00 (paused)", StatusLine(snapshot))

	snapshot.Running = true
	snapshot.Kind = model.KindBreak
	snapshot.Remaining = 61
	assert.Equal(t, "Break 01:01", StatusLine(snapshot))
}

func TestSetSnapshotUpdatesMenu(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	toggles := 0
	var sounds []model.NotificationMode
	manager := New(nil, Callbacks{
		OnToggle: func() { toggles++ },
		OnSound:  func(mode model.NotificationMode) { sounds = append(sounds, mode) },
	})

	manager.SetSnapshot(timekeeper.Snapshot{
		Remaining:    1499,
		Kind:         model.KindFocus,
		Running:      true,
		Durations:    model.DefaultDurations(),
		Notification: model.NotifyBell,
	})

	assert.Equal(t, "Status: Focus 24:59", manager.statusItem.Label)
	assert.Equal(t, "Pause", manager.toggleItem.Label)
	assert.True(t, manager.soundItems[model.NotifyBell].Checked)
	assert.False(t, manager.soundItems[model.NotifyNone].Checked)

	manager.toggleItem.Action()
	manager.soundItems[model.NotifyNone].Action()
	assert.Equal(t, 1, toggles)
	assert.Equal(t, []model.NotificationMode{model.NotifyNone}, sounds)
}
