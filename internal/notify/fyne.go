package notify

import (
	"context"

	"fyne.io/fyne/v2"
)

// FyneNotifier sends the cue through the fyne app notification API.
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier wraps a running fyne app.
func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

func (notifier *FyneNotifier) Notify(ctx context.Context, cue Cue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	notification := fyne.NewNotification(cue.Summary(), cue.Body())
	fyne.Do(func() {
		notifier.app.SendNotification(notification)
	})
	return nil
}
