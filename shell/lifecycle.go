package shell

import "github.com/yllada/messages-desktop/common"

// Lifecycle intercepts window close requests and application reopen
// events. Closing hides the window so the web session survives; reopening
// brings it back.
type Lifecycle struct {
	windows     *WindowManager
	fatal       FatalFunc
	log         common.Logger
	hideOnClose bool
	quitting    bool

	// OnHide runs after the window was hidden in response to a close.
	OnHide func()
}

// NewLifecycle returns lifecycle hooks for windows.
func NewLifecycle(windows *WindowManager, fatal FatalFunc, log common.Logger) *Lifecycle {
	if log == nil {
		log = common.GetLogger()
	}
	return &Lifecycle{
		windows:     windows,
		fatal:       fatal,
		log:         log,
		hideOnClose: true,
	}
}

// SetHideOnClose controls whether close requests are intercepted.
func (l *Lifecycle) SetHideOnClose(hide bool) {
	l.hideOnClose = hide
}

// BeginQuit marks the application as quitting; later close requests are
// no longer intercepted.
func (l *Lifecycle) BeginQuit() {
	l.quitting = true
}

// Quitting reports whether BeginQuit was called.
func (l *Lifecycle) Quitting() bool {
	return l.quitting
}

// CloseRequested handles a user close. It returns true when the default
// destroy must be suppressed.
func (l *Lifecycle) CloseRequested() bool {
	if l.quitting || !l.hideOnClose {
		l.log.Debug("Allowing window close")
		return false
	}

	l.log.Info("Hiding window on close request")
	l.windows.Hide()
	if l.OnHide != nil {
		l.OnHide()
	}
	return true
}

// ReopenRequested handles dock, tray or second-launch activation.
func (l *Lifecycle) ReopenRequested() {
	l.log.Info("Reopen requested")
	if err := l.windows.CreateOrShow(); err != nil && l.fatal != nil {
		l.fatal(err)
	}
}

// PageLoaded restores page state that a navigation resets.
func (l *Lifecycle) PageLoaded() {
	l.windows.ReapplyZoom()
}

// WindowDestroyed forgets a window the platform tore down.
func (l *Lifecycle) WindowDestroyed() {
	l.windows.Forget()
}
