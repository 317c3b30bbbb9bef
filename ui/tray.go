// Package ui provides the graphical host for the Messages desktop shell.
// This file contains the system tray indicator.
package ui

import (
	"sync/atomic"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/yllada/messages-desktop/common"
	"github.com/yllada/messages-desktop/shell"
)

// Pre-generated icons for performance.
var (
	iconOnline  = GenerateOnlineIcon()
	iconOffline = GenerateOfflineIcon()
)

// TrayIndicator manages the system tray icon and menu. It keeps the
// application reachable while the window is hidden.
type TrayIndicator struct {
	app        *Application
	statusItem *systray.MenuItem
	running    atomic.Bool
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{app: app}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	t.running.Store(true)
	systray.Run(t.onReady, t.onExit)
}

// Stop removes the indicator.
func (t *TrayIndicator) Stop() {
	if t.running.Load() {
		systray.Quit()
	}
}

// onReady is called when the systray is ready. Clicks arrive on systray
// goroutines and are forwarded to the GTK main thread.
func (t *TrayIndicator) onReady() {
	setIcon(iconOnline)
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	t.statusItem = systray.AddMenuItem("Offline", "Connection status")
	t.statusItem.Disable()
	t.statusItem.Hide()

	openItem := systray.AddMenuItem("Open "+common.AppName, "Show the main window")
	go func() {
		for range openItem.ClickedCh {
			glib.IdleAdd(t.app.lifecycle.ReopenRequested)
		}
	}()

	reloadItem := systray.AddMenuItem("Reload", "Reload the page")
	go func() {
		for range reloadItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.dispatcher.Dispatch(shell.CommandReload)
			})
		}
	}()

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Quit "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			glib.IdleAdd(t.app.Quit)
		}
	}()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	t.running.Store(false)
	common.LogInfo("Tray indicator cleanup completed")
}

// SetOnline updates the tray to reflect reachability.
func (t *TrayIndicator) SetOnline(online bool) {
	if !t.running.Load() {
		return
	}
	if online {
		setIcon(iconOnline)
		systray.SetTooltip(common.AppName)
		if t.statusItem != nil {
			t.statusItem.Hide()
		}
		return
	}
	setIcon(iconOffline)
	systray.SetTooltip(common.AppName + " - Offline")
	if t.statusItem != nil {
		t.statusItem.Show()
	}
}

func setIcon(data []byte) {
	if len(data) > 0 {
		systray.SetIcon(data)
	}
}
