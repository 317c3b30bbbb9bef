// Package shell is the core of the Messages desktop shell.
//
// It owns everything that is not toolkit glue:
//
//   - Command: the closed set of custom menu commands and their identifiers
//   - MenuTree and MenuBuilder: the static menu, rendered once through a MenuHost
//   - WindowManager: the owner of the single application window
//   - Dispatcher: maps an activated command to a window operation or script
//   - Lifecycle: hide-on-close and reopen handling
//
// The host toolkit is reached only through the Window, WindowFactory,
// ScriptExecutor and MenuHost interfaces. All methods are expected to be
// called from the host's UI thread; nothing here locks.
package shell
