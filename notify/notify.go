// Package notify sends desktop notifications over the session bus.
package notify

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/yllada/messages-desktop/common"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyCall = busName + ".Notify"

	defaultIcon = "mail-message-new"
)

// Type represents the kind of notification.
type Type int

const (
	TypeMessage Type = iota
	TypeInfo
	TypeWarning
	TypeError
)

// Notification is a single desktop notification.
type Notification struct {
	Title   string
	Message string
	Type    Type
	Icon    string
}

// urgency returns the freedesktop urgency hint for t.
func (t Type) urgency() byte {
	switch t {
	case TypeError:
		return 2
	case TypeInfo:
		return 0
	default:
		return 1
	}
}

func (t Type) icon() string {
	switch t {
	case TypeWarning:
		return "dialog-warning"
	case TypeError:
		return "dialog-error"
	case TypeInfo:
		return "dialog-information"
	default:
		return defaultIcon
	}
}

// caller is the part of a bus object the notifier needs.
type caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Notifier delivers notifications through org.freedesktop.Notifications,
// falling back to notify-send when no session bus is available.
type Notifier struct {
	mu       sync.Mutex
	conn     *dbus.Conn
	obj      caller
	appName  string
	enabled  bool
	lastID   uint32
	fallback func(Notification) error
}

var _ common.Notifier = (*Notifier)(nil)

// New connects to the session bus. A missing bus is not an error; the
// notifier then shells out to notify-send.
func New() *Notifier {
	n := &Notifier{
		appName:  common.AppName,
		enabled:  true,
		fallback: notifySend,
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		common.LogWarn("Session bus unavailable, using notify-send: %v", err)
		return n
	}
	n.conn = conn
	n.obj = conn.Object(busName, objectPath)
	return n
}

func newWithCaller(obj caller) *Notifier {
	return &Notifier{
		obj:      obj,
		appName:  common.AppName,
		enabled:  true,
		fallback: notifySend,
	}
}

// SetEnabled turns delivery on or off.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// Enabled reports whether notifications are delivered.
func (n *Notifier) Enabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enabled
}

// Notify sends a message notification.
func (n *Notifier) Notify(title, message string) error {
	return n.Show(Notification{Title: title, Message: message, Type: TypeMessage})
}

// Show sends n. Messages replace the previous message notification so a
// burst of incoming messages does not flood the desktop.
func (n *Notifier) Show(notification Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.enabled {
		return nil
	}

	icon := notification.Icon
	if icon == "" {
		icon = notification.Type.icon()
	}

	if n.obj == nil {
		return n.fallback(Notification{
			Title:   notification.Title,
			Message: notification.Message,
			Type:    notification.Type,
			Icon:    icon,
		})
	}

	var replaces uint32
	if notification.Type == TypeMessage {
		replaces = n.lastID
	}

	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(notification.Type.urgency()),
		"desktop-entry": dbus.MakeVariant(common.AppID),
	}

	call := n.obj.Call(notifyCall, 0,
		n.appName,
		replaces,
		icon,
		notification.Title,
		notification.Message,
		[]string{},
		hints,
		int32(-1),
	)
	if call.Err != nil {
		return common.WrapError(call.Err, "failed to send notification")
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return common.WrapError(err, "unexpected notification reply")
	}
	if notification.Type == TypeMessage {
		n.lastID = id
	}
	return nil
}

// Close releases the bus connection.
func (n *Notifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conn == nil {
		return nil
	}
	err := n.conn.Close()
	n.conn = nil
	n.obj = nil
	return err
}

func notifySend(n Notification) error {
	urgency := "normal"
	switch n.Type.urgency() {
	case 0:
		urgency = "low"
	case 2:
		urgency = "critical"
	}

	cmd := exec.Command("notify-send",
		"--app-name="+common.AppName,
		"--icon="+n.Icon,
		"--urgency="+urgency,
		n.Title,
		n.Message,
	)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}
