// Package main provides the entry point for the Messages desktop shell.
// It wraps Google Messages for web in a native GTK4 window with an
// application menu, keyboard shortcuts and a tray indicator.
//
// Features:
//   - Single window that hides on close and keeps the web session alive
//   - Menubar with reload, zoom and history commands
//   - Desktop notifications for incoming messages
//   - Optional window size persistence and connectivity monitoring
//
// Usage:
//
//	messages-desktop [options]
//
// Environment:
//
//	The application requires GTK4, libadwaita and WebKitGTK 6.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/yllada/messages-desktop/cli"
	"github.com/yllada/messages-desktop/common"
	"github.com/yllada/messages-desktop/shell"
	"github.com/yllada/messages-desktop/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// GUI/General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// CLI flags
	printMenu        = flag.Bool("menu", false, "Print the application menu and exit")
	showPaths        = flag.Bool("paths", false, "Show configuration and log file locations")
	resetWindowState = flag.Bool("reset-window-state", false, "Forget the saved window size")
)

func main() {
	flag.Parse()

	// Handle help flag
	if *showHelp {
		cli.PrintHelp(os.Stdout)
		os.Exit(0)
	}

	// Handle version flag
	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	// Initialize logger with structured logging and file output
	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}

	// Check if any CLI mode flag is set
	if *printMenu || *showPaths || *resetWindowState {
		code := runCLI()
		common.CloseLogger()
		os.Exit(code)
	}

	// Start the GTK application (GUI mode)
	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(common.AppID, appVersion)

	// Handle shutdown signals (SIGINT, SIGTERM)
	setupSignalHandler(app)

	exitCode := app.Run(os.Args[:1])
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	common.CloseLogger()
	os.Exit(exitCode)
}

// runCLI handles command-line interface operations and returns the exit code.
func runCLI() int {
	cliApp, err := cli.New(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var cliErr error

	switch {
	case *printMenu:
		cliErr = cliApp.PrintMenu(shell.DefaultMenu())
	case *showPaths:
		cliErr = cliApp.PrintPaths()
	case *resetWindowState:
		cliErr = cliApp.ResetWindowState()
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		return 1
	}
	return 0
}

// setupSignalHandler quits the application cleanly on SIGINT/SIGTERM so
// the window state is saved.
func setupSignalHandler(app *ui.Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		glib.IdleAdd(app.Quit)
	}()
}
