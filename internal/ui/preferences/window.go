package preferences

import (
	"strconv"

	"focustimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Window edits a settings draft and commits it on Apply.
type Window struct {
	window     fyne.Window
	draft      model.Draft
	onApply    func(model.Draft)
	focusEntry *widget.Entry
	breakEntry *widget.Entry
	visible    bool
}

// New creates a settings window. onApply receives the edited draft.
func New(app fyne.App, onApply func(model.Draft)) *Window {
	window := app.NewWindow("Timer Settings")

	focusEntry := widget.NewEntry()
	focusEntry.Validator = ValidateMinutes
	breakEntry := widget.NewEntry()
	breakEntry.Validator = ValidateMinutes

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, widget.NewLabel("Focus (minutes)"), focusEntry),
		container.NewGridWithColumns(2, widget.NewLabel("Break (minutes)"), breakEntry),
	)

	prefs := &Window{
		window:     window,
		onApply:    onApply,
		focusEntry: focusEntry,
		breakEntry: breakEntry,
	}

	applyButton := widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), prefs.handleApply)
	applyButton.Importance = widget.HighImportance
	buttons := container.NewHBox(layout.NewSpacer(), applyButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(300, 180))
	window.SetCloseIntercept(prefs.Hide)

	return prefs
}

// Open seeds the entries with draft and shows the window.
func (prefs *Window) Open(draft model.Draft) {
	prefs.draft = draft
	prefs.focusEntry.SetText(strconv.Itoa(draft.FocusMinutes))
	prefs.breakEntry.SetText(strconv.Itoa(draft.BreakMinutes))
	prefs.visible = true
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Toggle opens the window with draft, or hides it when already open.
func (prefs *Window) Toggle(draft model.Draft) {
	if prefs.visible {
		prefs.Hide()
		return
	}
	prefs.Open(draft)
}

// Hide discards the draft and hides the window.
func (prefs *Window) Hide() {
	prefs.visible = false
	prefs.window.Hide()
}

// Visible reports whether the window is shown.
func (prefs *Window) Visible() bool {
	return prefs.visible
}

func (prefs *Window) handleApply() {
	prefs.draft = ParseDraft(prefs.focusEntry.Text, prefs.breakEntry.Text, prefs.draft)
	if prefs.onApply != nil {
		prefs.onApply(prefs.draft)
	}
	prefs.Hide()
}
