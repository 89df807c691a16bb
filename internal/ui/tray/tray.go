package tray

import (
	"fmt"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow     func()
	OnToggle   func()
	OnReset    func()
	OnSettings func()
	OnSound    func(model.NotificationMode)
	OnQuit     func()
}

// Manager handles system tray state.
type Manager struct {
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	soundItems map[model.NotificationMode]*fyne.MenuItem
	callbacks  Callbacks
	menu       *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		callbacks:  callbacks,
		soundItems: make(map[model.NotificationMode]*fyne.MenuItem, len(model.NotificationModes)),
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", orNoop(callbacks.OnToggle))

	soundMenu := fyne.NewMenu("")
	for _, mode := range model.NotificationModes {
		mode := mode
		item := fyne.NewMenuItem(mode.Title(), func() {
			if manager.callbacks.OnSound != nil {
				manager.callbacks.OnSound(mode)
			}
		})
		manager.soundItems[mode] = item
		soundMenu.Items = append(soundMenu.Items, item)
	}
	sound := fyne.NewMenuItem("Sound", nil)
	sound.ChildMenu = soundMenu

	manager.menu = fyne.NewMenu("Focus Timer",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", orNoop(callbacks.OnShow)),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", orNoop(callbacks.OnReset)),
		fyne.NewMenuItem("Settings", orNoop(callbacks.OnSettings)),
		sound,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", orNoop(callbacks.OnQuit)),
	)
	if app != nil {
		app.SetSystemTrayMenu(manager.menu)
	}

	return manager
}

// StatusLine describes a snapshot for the tray status item.
func StatusLine(snapshot timekeeper.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.Kind.Title(), snapshot.Clock())
	if !snapshot.Running {
		status += " (paused)"
	}
	return status
}

// SetSnapshot updates menu labels from the timer state.
func (manager *Manager) SetSnapshot(snapshot timekeeper.Snapshot) {
	manager.statusItem.Label = "Status: " + StatusLine(snapshot)
	if snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	for mode, item := range manager.soundItems {
		item.Checked = mode == snapshot.Notification
	}
	manager.refreshMenu()
}

func orNoop(callback func()) func() {
	if callback == nil {
		return func() {}
	}
	return callback
}

func (manager *Manager) refreshMenu() {
	manager.menu.Refresh()
}
