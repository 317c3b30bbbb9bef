// Package common provides shared constants, types, and utilities
// used across the Messages desktop shell.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "io.github.yllada.MessagesDesktop"
	// AppName is the display name of the application.
	AppName = "Google Messages"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "messages-desktop"
)

// AppURL is the navigation target. It is used both as the initial load and
// as the "home" destination and is not configurable at runtime.
const AppURL = "https://messages.google.com/web"

// AppHost is the host the embedded page is trusted on.
const AppHost = "messages.google.com"

// File names used by the application.
const (
	ConfigFileName      = "config.yaml"
	WindowStateFileName = "window-state.yaml"
	LogFileName         = "messages-desktop.log"
)

// Window defaults.
const (
	// WindowName is the logical name of the single application window.
	WindowName = "main"
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 1024
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 768
	// MinWindowWidth is the smallest width restored from saved state.
	MinWindowWidth = 400
	// MinWindowHeight is the smallest height restored from saved state.
	MinWindowHeight = 300
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Page zoom bounds.
const (
	ZoomDefault = 1.0
	ZoomStep    = 0.1
	ZoomMin     = 0.5
	ZoomMax     = 3.0
)

// Connectivity monitor defaults.
const (
	ConnectivityInterval = 30 * time.Second
	ConnectivityTimeout  = 5 * time.Second
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
