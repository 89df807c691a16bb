package main

import (
	"context"
	"log/slog"
	"time"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"
	"focustimer/internal/notify"
	"focustimer/internal/ui/preferences"
	"focustimer/internal/ui/timerwindow"
	"focustimer/internal/ui/tray"
	"focustimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appID = "com.focustimer.app"

func runGUI(ctx context.Context, keeper *timekeeper.TimeKeeper, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconApp))

	prefsWindow := preferences.New(fyneApp, func(draft model.Draft) {
		keeper.ApplySettings(draft)
	})

	timerWindow := timerwindow.New(fyneApp, timerwindow.Callbacks{
		OnToggle: func() { keeper.ToggleRun() },
		OnReset:  func() { keeper.Reset() },
		OnSettings: func() {
			prefsWindow.Toggle(keeper.OpenSettingsDraft())
		},
		OnSound: func(mode model.NotificationMode) {
			keeper.SetNotificationMode(mode)
		},
	})
	timerWindow.SetMaster()

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:   timerWindow.Show,
			OnToggle: func() { keeper.ToggleRun() },
			OnReset:  func() { keeper.Reset() },
			OnSettings: func() {
				prefsWindow.Open(keeper.OpenSettingsDraft())
			},
			OnSound: func(mode model.NotificationMode) {
				keeper.SetNotificationMode(mode)
			},
			OnQuit: fyneApp.Quit,
		})
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	render := func(snapshot timekeeper.Snapshot) {
		timerWindow.Render(snapshot)
		if trayManager != nil {
			trayManager.SetSnapshot(snapshot)
			desktopApp.SetSystemTrayIcon(resources.TrayIcon(snapshot.Running))
		}
	}

	go renderLatest(keeper.Subscribe(16), keeper.Snapshot, fyne.Do, render)

	dispatcher := notify.NewDispatcher(notify.NewFyneNotifier(fyneApp), logger, 5*time.Second)
	dispatcher.Start(ctx, keeper.Subscribe(4, timekeeper.EventExpired))

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	render(keeper.Snapshot())
	timerWindow.Show()
	fyneApp.Run()

	cancel()
	dispatcher.Wait()
	return nil
}
