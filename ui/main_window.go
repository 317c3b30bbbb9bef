package ui

import (
	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/messages-desktop/common"
	"github.com/yllada/messages-desktop/config"
	"github.com/yllada/messages-desktop/shell"
)

// MainWindow is the native application window hosting the web view.
// It implements shell.Window.
type MainWindow struct {
	app       *Application
	window    *gtk.ApplicationWindow
	view      *webkit.WebView
	destroyed bool
}

// windowFactory creates MainWindows for the window manager.
type windowFactory struct {
	app *Application
}

// CreateWindow builds the window, starts loading opts.URL and leaves the
// window unshown.
func (f *windowFactory) CreateWindow(opts shell.WindowOptions) (shell.Window, error) {
	if f.app.app == nil {
		return nil, common.ErrWindowCreate
	}
	return NewMainWindow(f.app, opts), nil
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application, opts shell.WindowOptions) *MainWindow {
	mw := &MainWindow{app: app}

	mw.window = gtk.NewApplicationWindow(&app.app.Application)
	mw.window.SetTitle(opts.Title)
	mw.window.SetDefaultSize(opts.Width, opts.Height)
	mw.window.SetResizable(opts.Resizable)
	mw.window.SetIconName(common.AppID)
	mw.window.SetShowMenubar(true)
	if opts.Maximized {
		mw.window.Maximize()
	}

	// Closing is decided by the lifecycle hooks; returning true keeps the
	// window alive.
	mw.window.ConnectCloseRequest(func() bool {
		if !app.lifecycle.Quitting() {
			app.saveWindowState()
		}
		return app.lifecycle.CloseRequested()
	})
	mw.window.ConnectDestroy(func() {
		mw.destroyed = true
		app.lifecycle.WindowDestroyed()
	})

	mw.createWebView(opts.URL)
	mw.window.SetChild(mw.view)

	return mw
}

// createWebView sets up the embedded renderer and starts the initial load.
func (mw *MainWindow) createWebView(url string) {
	mw.view = webkit.NewWebView()
	mw.view.SetVExpand(true)
	mw.view.SetHExpand(true)

	mw.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event == webkit.LoadFinished {
			common.LogDebug("Page loaded: %s", mw.view.URI())
			mw.app.lifecycle.PageLoaded()
		}
	})
	mw.view.ConnectDecidePolicy(mw.onDecidePolicy)
	mw.view.ConnectPermissionRequest(mw.onPermissionRequest)
	mw.view.ConnectShowNotification(mw.onShowNotification)

	mw.view.LoadURI(url)
}

// onDecidePolicy keeps internal links inside the window and hands links
// that ask for a new window to the default browser.
func (mw *MainWindow) onDecidePolicy(decision webkit.PolicyDecisioner, kind webkit.PolicyDecisionType) bool {
	if kind != webkit.PolicyDecisionTypeNewWindowAction {
		return false
	}

	nav, ok := decision.(*webkit.NavigationPolicyDecision)
	if !ok {
		return false
	}
	uri := nav.NavigationAction().Request().URI()

	webkit.BasePolicyDecision(decision).Ignore()
	mw.followLink(uri)
	return true
}

// launchURI opens uri with the desktop's default handler.
var launchURI = func(uri string) error {
	return gio.AppInfoLaunchDefaultForURI(uri, nil)
}

// followLink loads messaging links in place and hands everything else to
// the system browser.
func (mw *MainWindow) followLink(uri string) {
	if shell.IsInternalURL(uri) {
		mw.view.LoadURI(uri)
		return
	}

	common.LogInfo("Opening external link: %s", uri)
	if err := launchURI(uri); err != nil {
		common.LogWarn("Could not open %s: %v", uri, err)
	}
}

// onPermissionRequest grants the permissions the messaging page needs.
func (mw *MainWindow) onPermissionRequest(request webkit.PermissionRequester) bool {
	perm := shell.PermissionOther
	switch request.(type) {
	case *webkit.NotificationPermissionRequest:
		perm = shell.PermissionNotifications
	case *webkit.UserMediaPermissionRequest:
		perm = shell.PermissionMedia
	case *webkit.ClipboardPermissionRequest:
		perm = shell.PermissionClipboard
	case *webkit.GeolocationPermissionRequest:
		perm = shell.PermissionGeolocation
	}

	if shell.PermissionAllowed(mw.view.URI(), perm) {
		common.LogDebug("Allowing permission request %T", request)
		request.Allow()
	} else {
		common.LogInfo("Denying permission request %T from %s", request, mw.view.URI())
		request.Deny()
	}
	return true
}

// onShowNotification routes web notifications to the desktop.
func (mw *MainWindow) onShowNotification(notification *webkit.Notification) bool {
	if mw.app.notifier == nil {
		return false
	}
	if err := mw.app.notifier.Notify(notification.Title(), notification.Body()); err != nil {
		common.LogWarn("Could not show notification: %v", err)
		return false
	}
	return true
}

// Execute evaluates script in the page. Failures are logged.
func (mw *MainWindow) Execute(script string) {
	if mw.destroyed {
		return
	}
	evaluateJavascript(mw.view, script, func(res gio.AsyncResulter) {
		if _, err := mw.view.EvaluateJavascriptFinish(res); err != nil {
			common.LogDebug("Script failed: %v", err)
		}
	})
}

// Show makes the window visible.
func (mw *MainWindow) Show() error {
	if mw.destroyed {
		return common.ErrWindowOperation
	}
	mw.window.SetVisible(true)
	return nil
}

// Focus raises the window and gives it keyboard focus.
func (mw *MainWindow) Focus() error {
	if mw.destroyed {
		return common.ErrWindowOperation
	}
	mw.window.Present()
	return nil
}

// Hide makes the window invisible without destroying it.
func (mw *MainWindow) Hide() error {
	if mw.destroyed {
		return common.ErrWindowOperation
	}
	mw.window.SetVisible(false)
	return nil
}

// SetResizable toggles user resizing.
func (mw *MainWindow) SetResizable(resizable bool) error {
	if mw.destroyed {
		return common.ErrWindowOperation
	}
	mw.window.SetResizable(resizable)
	return nil
}

// Minimize iconifies the window.
func (mw *MainWindow) Minimize() {
	if !mw.destroyed {
		mw.window.Minimize()
	}
}

// Close requests a close, which goes through the lifecycle hooks.
func (mw *MainWindow) Close() {
	if !mw.destroyed {
		mw.window.Close()
	}
}

// EditingCommand forwards an edit command such as "Copy" to the web view.
func (mw *MainWindow) EditingCommand(command string) {
	if !mw.destroyed {
		mw.view.ExecuteEditingCommand(command)
	}
}

// State returns the current geometry for persistence.
func (mw *MainWindow) State() config.WindowState {
	width, height := mw.window.DefaultSize()
	return config.WindowState{
		Width:     width,
		Height:    height,
		Maximized: mw.window.IsMaximized(),
	}
}

// GTKWindow returns the underlying toplevel for dialogs.
func (mw *MainWindow) GTKWindow() *gtk.Window {
	return &mw.window.Window
}
