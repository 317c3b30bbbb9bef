// Package common provides shared constants, types, utilities, and interfaces
// used throughout the Messages desktop shell.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: navigation target, window defaults, zoom bounds and file names
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: The Logger abstraction consumed by the shell core
//   - Logger: Structured logging with console and rotating file output
//   - Utils: Helpers for configuration and data directories
//
// # Usage
//
//	import "github.com/yllada/messages-desktop/common"
//
//	common.LogInfo("Navigating to %s", common.AppURL)
//
//	if errors.Is(err, common.ErrWindowCreate) {
//	    // Startup cannot continue
//	}
package common
