package timerwindow

import (
	"image/color"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks forwards user intents from the window.
type Callbacks struct {
	OnToggle   func()
	OnReset    func()
	OnSettings func()
	OnSound    func(model.NotificationMode)
}

// Window is the main countdown window.
type Window struct {
	window     fyne.Window
	background *canvas.Rectangle
	titleLabel *canvas.Text
	clockLabel *canvas.Text
	progress   *widget.ProgressBar
	toggle     *widget.Button
	reset      *widget.Button
	settings   *widget.Button
	sound      *widget.Select
	callbacks  Callbacks
}

var (
	focusBackground = color.NRGBA{R: 255, G: 254, B: 244, A: 255}
	breakBackground = color.NRGBA{R: 236, G: 250, B: 245, A: 255}
	clockColor      = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

// New creates the countdown window. Render must be called before Show.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Focus Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(focusBackground)

	titleLabel := canvas.NewText(Heading(model.KindFocus), clockColor)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 24

	clockLabel := canvas.NewText("--:--", clockColor)
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Monospace: true}
	clockLabel.TextSize = 56

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	timer := &Window{
		window:     window,
		background: background,
		titleLabel: titleLabel,
		clockLabel: clockLabel,
		progress:   progress,
		callbacks:  callbacks,
	}

	timer.toggle = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), timer.handleToggle)
	timer.reset = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), timer.handleReset)
	timer.settings = widget.NewButtonWithIcon("", theme.SettingsIcon(), timer.handleSettings)

	soundOptions := make([]string, 0, len(model.NotificationModes))
	for _, mode := range model.NotificationModes {
		soundOptions = append(soundOptions, mode.Title())
	}
	timer.sound = widget.NewSelect(soundOptions, nil)
	timer.sound.Selected = model.NotifyNone.Title()
	timer.sound.OnChanged = timer.handleSound

	buttons := container.NewHBox(layout.NewSpacer(), timer.toggle, timer.reset, timer.settings, layout.NewSpacer())
	soundRow := container.NewHBox(layout.NewSpacer(), widget.NewLabel("Sound:"), timer.sound, layout.NewSpacer())
	content := container.NewVBox(
		titleLabel,
		clockLabel,
		progress,
		buttons,
		soundRow,
	)

	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(360, 300))
	return timer
}

// Heading returns the title shown for a session kind.
func Heading(kind model.SessionKind) string {
	return kind.Title() + " Mode"
}

// Render draws a snapshot. It must run on the fyne UI goroutine.
func (timer *Window) Render(snapshot timekeeper.Snapshot) {
	timer.titleLabel.Text = Heading(snapshot.Kind)
	timer.titleLabel.Refresh()

	timer.clockLabel.Text = snapshot.Clock()
	timer.clockLabel.Refresh()

	timer.progress.SetValue(snapshot.Progress())

	if snapshot.Running {
		timer.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		timer.toggle.SetIcon(theme.MediaPlayIcon())
	}

	if snapshot.Kind == model.KindBreak {
		timer.background.FillColor = breakBackground
	} else {
		timer.background.FillColor = focusBackground
	}
	timer.background.Refresh()

	// Assigned directly so rendering never echoes a sound intent back.
	if title := snapshot.Notification.Title(); timer.sound.Selected != title {
		timer.sound.Selected = title
		timer.sound.Refresh()
	}
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// SetMaster makes closing this window quit the app.
func (timer *Window) SetMaster() {
	timer.window.SetMaster()
}

func (timer *Window) handleToggle() {
	if timer.callbacks.OnToggle != nil {
		timer.callbacks.OnToggle()
	}
}

func (timer *Window) handleReset() {
	if timer.callbacks.OnReset != nil {
		timer.callbacks.OnReset()
	}
}

func (timer *Window) handleSettings() {
	if timer.callbacks.OnSettings != nil {
		timer.callbacks.OnSettings()
	}
}

func (timer *Window) handleSound(title string) {
	if timer.callbacks.OnSound != nil {
		timer.callbacks.OnSound(model.ParseNotificationMode(title))
	}
}
