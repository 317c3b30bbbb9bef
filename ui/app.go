package ui

import (
	"os"
	"path/filepath"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/messages-desktop/common"
	"github.com/yllada/messages-desktop/config"
	"github.com/yllada/messages-desktop/connectivity"
	"github.com/yllada/messages-desktop/notify"
	"github.com/yllada/messages-desktop/shell"
)

// Application represents the main application
type Application struct {
	app        *adw.Application
	config     *config.Config
	stateStore *config.StateStore
	version    string

	windows    *shell.WindowManager
	dispatcher *shell.Dispatcher
	lifecycle  *shell.Lifecycle
	menu       *shell.MenuBuilder

	notifier *notify.Notifier
	monitor  *connectivity.Monitor
	watcher  *config.Watcher
	tray     *TrayIndicator

	started  bool
	fatalErr error
}

// NewApplication creates a new application
func NewApplication(appID, version string) *Application {
	app := adw.NewApplication(appID, gio.ApplicationFlagsNone)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Configuration: %v", err)
		if cfg == nil {
			// Keep the path bound so the watcher picks up a repaired file.
			path, _ := config.Path()
			cfg = config.DefaultConfigAt(path)
		}
	}

	stateStore, err := config.DefaultStateStore()
	if err != nil {
		common.LogWarn("Window state unavailable: %v", err)
	}

	a := &Application{
		app:        app,
		config:     cfg,
		stateStore: stateStore,
		version:    version,
	}

	log := common.GetLogger()
	a.windows = shell.NewWindowManager(&windowFactory{app: a}, a.windowOptions(), log)
	a.dispatcher = shell.NewDispatcher(a.windows, a.fatal, log)
	a.lifecycle = shell.NewLifecycle(a.windows, a.fatal, log)
	a.lifecycle.SetHideOnClose(cfg.HideOnClose)
	a.lifecycle.OnHide = func() {
		common.LogDebug("Window hidden; still reachable from the tray or a new launch")
	}
	a.menu = shell.NewMenuBuilder(newMenuHost(a))

	app.ConnectStartup(a.onStartup)
	app.ConnectActivate(a.onActivate)
	app.ConnectShutdown(a.onShutdown)

	return a
}

// Run runs the application. It returns 1 when startup failed.
func (a *Application) Run(args []string) int {
	code := a.app.Run(args)
	if a.fatalErr != nil {
		return 1
	}
	return code
}

// Err returns the error that stopped the application, if any.
func (a *Application) Err() error {
	return a.fatalErr
}

// onStartup runs once per process, before the first activation.
func (a *Application) onStartup() {
	if err := a.menu.Build(shell.DefaultMenu()); err != nil {
		a.fatal(err)
	}
}

// onActivate is called on the first launch and whenever the application
// is launched again while running.
func (a *Application) onActivate() {
	if a.fatalErr != nil {
		return
	}
	if !a.started {
		a.started = true
		a.startServices()
	}
	a.lifecycle.ReopenRequested()
}

// startServices brings up everything that outlives the window.
func (a *Application) startServices() {
	a.ApplyTheme(a.config.Theme)
	a.setupAppIcon()

	a.notifier = notify.New()
	a.notifier.SetEnabled(a.config.ShowNotifications)

	a.syncTray(a.config.ShowTrayIcon)

	if path := a.config.FilePath(); path != "" {
		a.watcher = config.NewWatcher(path, func(cfg *config.Config) {
			glib.IdleAdd(func() {
				a.applyConfig(cfg)
			})
		})
		if err := a.watcher.Start(); err != nil {
			common.LogWarn("Configuration will not reload live: %v", err)
		}
	}

	a.setupConnectivity()
}

// syncTray starts or stops the tray indicator to match show.
func (a *Application) syncTray(show bool) {
	switch {
	case show && a.tray == nil:
		a.tray = NewTrayIndicator(a)
		go a.tray.Run()
	case !show && a.tray != nil:
		a.tray.Stop()
		a.tray = nil
	}
}

// onShutdown releases background resources.
func (a *Application) onShutdown() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.monitor != nil {
		a.monitor.Stop()
	}
	if a.tray != nil {
		a.tray.Stop()
	}
	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil {
			common.LogDebug("Closing notifier: %v", err)
		}
	}
	common.LogInfo("Application shut down")
}

// fatal records err and quits. Only the first error is kept.
func (a *Application) fatal(err error) {
	common.LogError("Fatal: %v", err)
	if a.fatalErr == nil {
		a.fatalErr = err
	}
	a.lifecycle.BeginQuit()
	a.app.Quit()
}

// Quit saves state and quits the application. Close requests raised while
// quitting are not intercepted.
func (a *Application) Quit() {
	common.LogInfo("Quit requested")
	a.saveWindowState()
	a.lifecycle.BeginQuit()
	a.app.Quit()
}

// windowOptions returns the options for new windows, with the saved
// geometry applied when enabled.
func (a *Application) windowOptions() shell.WindowOptions {
	opts := shell.DefaultWindowOptions()
	if !a.config.RememberWindowSize || a.stateStore == nil {
		return opts
	}
	state := a.stateStore.Load()
	opts.Width = state.Width
	opts.Height = state.Height
	opts.Maximized = state.Maximized
	return opts
}

// saveWindowState persists the window geometry when enabled.
func (a *Application) saveWindowState() {
	if !a.config.RememberWindowSize || a.stateStore == nil {
		return
	}
	win, ok := a.mainWindow()
	if !ok {
		return
	}
	if err := a.stateStore.Save(win.State()); err != nil {
		common.LogWarn("Could not save window state: %v", err)
	}
}

// mainWindow returns the native window, if one exists.
func (a *Application) mainWindow() (*MainWindow, bool) {
	w, ok := a.windows.Window()
	if !ok {
		return nil, false
	}
	mw, ok := w.(*MainWindow)
	return mw, ok
}

// applyConfig applies a reloaded configuration. It must run on the UI
// thread.
func (a *Application) applyConfig(cfg *config.Config) {
	common.LogInfo("Configuration reloaded")
	old := a.config
	a.config = cfg

	if cfg.Theme != old.Theme {
		a.ApplyTheme(cfg.Theme)
	}
	a.lifecycle.SetHideOnClose(cfg.HideOnClose)
	if a.notifier != nil {
		a.notifier.SetEnabled(cfg.ShowNotifications)
	}
	a.syncTray(cfg.ShowTrayIcon)
	if cfg.RememberWindowSize {
		a.windows.SetOptions(a.windowOptions())
	} else {
		a.windows.SetOptions(shell.DefaultWindowOptions())
	}
	if cfg.ConnectivityCheck != old.ConnectivityCheck || cfg.ReloadOnReconnect != old.ReloadOnReconnect {
		if a.monitor != nil {
			a.monitor.Stop()
			a.monitor = nil
		}
		a.setupConnectivity()
	}
}

// setupConnectivity starts the reachability monitor when enabled.
func (a *Application) setupConnectivity() {
	if !a.config.ConnectivityCheck {
		return
	}

	reload := func() {}
	if a.config.ReloadOnReconnect {
		reload = func() {
			common.LogInfo("Back online, reloading")
			a.dispatcher.Dispatch(shell.CommandReload)
		}
	}
	onReconnect := connectivity.ReconnectReloader(reload)

	a.monitor = connectivity.NewMonitor(connectivity.DefaultConfig(), nil)
	a.monitor.SetOnChange(func(oldState, newState connectivity.State) {
		glib.IdleAdd(func() {
			if a.tray != nil {
				a.tray.SetOnline(newState != connectivity.StateOffline)
			}
			if newState == connectivity.StateOffline && a.notifier != nil {
				err := a.notifier.Show(notify.Notification{
					Title:   common.AppName,
					Message: "You are offline. Messages will sync when the connection returns.",
					Type:    notify.TypeWarning,
				})
				if err != nil {
					common.LogDebug("Offline notification: %v", err)
				}
			}
			onReconnect(oldState, newState)
		})
	})
	a.monitor.Start()
}

// setupAppIcon sets up the application icon
func (a *Application) setupAppIcon() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}

	// GTK looks for theme subdirectories (like "hicolor") inside these paths
	if execPath, err := os.Executable(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(filepath.Dir(execPath), "assets", "icons"))
	}
	if cwd, err := os.Getwd(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(cwd, "assets", "icons"))
	}

	gtk.WindowSetDefaultIconName(common.AppID)
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	manager := adw.StyleManagerGetDefault()
	if manager == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		manager.SetColorScheme(adw.ColorSchemeForceLight)
	case common.ThemeDark:
		manager.SetColorScheme(adw.ColorSchemeForceDark)
	default:
		manager.SetColorScheme(adw.ColorSchemeDefault)
	}
}
