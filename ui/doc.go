// Package ui provides the graphical host for the Messages desktop shell.
//
// This package binds the toolkit-independent core in package shell to
// GTK4, libadwaita and WebKitGTK:
//
//   - Application: GTK application lifecycle, services and fatal errors
//   - MainWindow: native window with the embedded web view (shell.Window)
//   - menuHost: renders shell.MenuTree as a menubar of application actions
//   - TrayIndicator: system tray integration for reopening a hidden window
//
// # Lifecycle
//
// The first activation starts background services and creates the window.
// Later activations (launching the binary again) and the tray "Open" item
// reopen it. Closing the window hides it unless the application is
// quitting or hide_on_close is disabled.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Tray clicks, the
// configuration watcher and the connectivity monitor run on their own
// goroutines and use glib.IdleAdd() to schedule work on the main thread.
//
// # File Organization
//
//   - app.go: Application lifecycle, configuration and services
//   - main_window.go: native window and web view integration
//   - menu.go: menubar rendering and platform menu items
//   - tray.go: System tray indicator
//   - icons.go: Icon generation for tray
package ui
