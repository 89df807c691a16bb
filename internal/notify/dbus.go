package notify

import (
	"context"
	"fmt"
	"time"

	"focustimer/internal/core/model"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsService   = "org.freedesktop.Notifications"
	notificationsPath      = "/org/freedesktop/Notifications"
	notificationsInterface = "org.freedesktop.Notifications"
)

// DBusNotifier posts a desktop notification on the user's session bus.
type DBusNotifier struct {
	AppName string
	Icon    string
	Expire  time.Duration
	connect func() (*dbus.Conn, error)
}

// NewDBusNotifier returns a notifier that connects to the session bus per cue.
func NewDBusNotifier(appName string) *DBusNotifier {
	return &DBusNotifier{
		AppName: appName,
		Icon:    "alarm-symbolic",
		Expire:  10 * time.Second,
		connect: func() (*dbus.Conn, error) {
			return dbus.ConnectSessionBus()
		},
	}
}

func (notifier *DBusNotifier) Notify(ctx context.Context, cue Cue) error {
	conn, err := notifier.connect()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(notificationsService, dbus.ObjectPath(notificationsPath))
	call := obj.CallWithContext(ctx, notificationsInterface+".Notify", 0, notifier.notifyArgs(cue)...)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

func (notifier *DBusNotifier) notifyArgs(cue Cue) []any {
	return []any{
		notifier.AppName,
		uint32(0), // replaces_id
		notifier.Icon,
		cue.Summary(),
		cue.Body(),
		[]string{},
		notificationHints(cue.Mode),
		int32(notifier.Expire / time.Millisecond),
	}
}

// notificationHints asks the server to play the bell from the sound theme.
func notificationHints(mode model.NotificationMode) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"urgency":  dbus.MakeVariant(byte(1)),
		"category": dbus.MakeVariant("presence"),
	}
	if mode.Normalize() == model.NotifyBell {
		hints["sound-name"] = dbus.MakeVariant("bell")
	} else {
		hints["suppress-sound"] = dbus.MakeVariant(true)
	}
	return hints
}
