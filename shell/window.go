package shell

import (
	"fmt"
	"net/url"

	"github.com/yllada/messages-desktop/common"
)

// Visibility is the shown/hidden state of the application window.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

// String returns a human-readable visibility.
func (v Visibility) String() string {
	if v == Visible {
		return "Visible"
	}
	return "Hidden"
}

// WindowOptions configures the native window when it is created.
type WindowOptions struct {
	Name      string
	Title     string
	URL       string
	Width     int
	Height    int
	Resizable bool
	Maximized bool
}

// DefaultWindowOptions returns the fixed window configuration.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Name:      common.WindowName,
		Title:     common.AppName,
		URL:       common.AppURL,
		Width:     common.DefaultWindowWidth,
		Height:    common.DefaultWindowHeight,
		Resizable: true,
	}
}

// Validate checks the navigation target.
func (o WindowOptions) Validate() error {
	u, err := url.Parse(o.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidURL, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: %q", common.ErrInvalidURL, o.URL)
	}
	return nil
}

// Window is a native window hosting the embedded web view.
type Window interface {
	ScriptExecutor
	Show() error
	Focus() error
	Hide() error
	SetResizable(resizable bool) error
}

// WindowFactory constructs native windows. The created window has already
// started loading opts.URL but is not yet shown.
type WindowFactory interface {
	CreateWindow(opts WindowOptions) (Window, error)
}

// WindowManager owns the single application window. It is created lazily
// and kept for the process lifetime; closing hides it, and it is rebuilt
// only after Forget reports that the native window is gone.
type WindowManager struct {
	factory    WindowFactory
	opts       WindowOptions
	scripts    Scripts
	bounds     ZoomBounds
	log        common.Logger
	window     Window
	visibility Visibility
	zoom       float64
}

// NewWindowManager returns a manager that creates windows with factory.
func NewWindowManager(factory WindowFactory, opts WindowOptions, log common.Logger) *WindowManager {
	if log == nil {
		log = common.GetLogger()
	}
	return &WindowManager{
		factory: factory,
		opts:    opts,
		scripts: DOMScripts{},
		bounds:  DefaultZoomBounds(),
		log:     log,
		zoom:    common.ZoomDefault,
	}
}

// SetScripts replaces the script generator.
func (m *WindowManager) SetScripts(s Scripts) {
	m.scripts = s
}

// Options returns the options used for new windows.
func (m *WindowManager) Options() WindowOptions {
	return m.opts
}

// SetOptions changes the options used the next time a window is created.
func (m *WindowManager) SetOptions(opts WindowOptions) {
	m.opts = opts
}

// Window returns the current window, if any.
func (m *WindowManager) Window() (Window, bool) {
	return m.window, m.window != nil
}

// Visibility returns the tracked visibility.
func (m *WindowManager) Visibility() Visibility {
	return m.visibility
}

// CreateOrShow shows and focuses the existing window, or creates, shows
// and focuses a new one. Only creation failures are returned; show and
// focus failures on an existing window are logged.
func (m *WindowManager) CreateOrShow() error {
	if m.window != nil {
		m.log.Info("Showing existing window")
		if err := m.window.Show(); err != nil {
			m.log.Warn("Could not show window: %v", err)
		}
		if err := m.window.Focus(); err != nil {
			m.log.Warn("Could not focus window: %v", err)
		}
		m.visibility = Visible
		return nil
	}

	if err := m.opts.Validate(); err != nil {
		return err
	}

	m.log.Info("Creating window %q for %s", m.opts.Name, m.opts.URL)
	window, err := m.factory.CreateWindow(m.opts)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrWindowCreate, err)
	}
	if window == nil {
		return fmt.Errorf("%w: factory returned no window", common.ErrWindowCreate)
	}

	m.window = window
	m.zoom = common.ZoomDefault

	if err := window.Show(); err != nil {
		m.log.Warn("Could not show new window: %v", err)
	}
	if err := window.Focus(); err != nil {
		m.log.Debug("Could not focus new window: %v", err)
	}
	m.visibility = Visible
	return nil
}

// Hide makes the window invisible while keeping its page and history.
func (m *WindowManager) Hide() {
	if m.window == nil {
		return
	}
	if err := m.window.Hide(); err != nil {
		m.log.Warn("Could not hide window: %v", err)
		return
	}
	m.visibility = Hidden
}

// NavigateHome sends the page back to the navigation target without a
// full reload of the window.
func (m *WindowManager) NavigateHome() {
	m.Execute(m.scripts.Navigate(m.opts.URL))
}

// Execute runs script in the current window. It is a no-op without one.
func (m *WindowManager) Execute(script string) {
	if m.window == nil {
		m.log.Debug("Dropping script, no window")
		return
	}
	m.window.Execute(script)
}

// Zoom returns the page zoom level of the current window.
func (m *WindowManager) Zoom() float64 {
	return m.zoom
}

// ZoomBounds returns the allowed zoom range.
func (m *WindowManager) ZoomBounds() ZoomBounds {
	return m.bounds
}

// SetZoom clamps level, records it and writes it into the page.
func (m *WindowManager) SetZoom(level float64) {
	if m.window == nil {
		return
	}
	m.zoom = m.bounds.Clamp(level)
	m.window.Execute(m.scripts.SetZoom(m.zoom))
}

// ReapplyZoom writes the recorded zoom into a freshly loaded page. Pages
// start at the default, so nothing is injected then.
func (m *WindowManager) ReapplyZoom() {
	if m.window == nil || m.zoom == common.ZoomDefault {
		return
	}
	m.window.Execute(m.scripts.SetZoom(m.zoom))
}

// Forget drops the window handle after the native window was destroyed.
func (m *WindowManager) Forget() {
	if m.window == nil {
		return
	}
	m.log.Info("Window %q destroyed", m.opts.Name)
	m.window = nil
	m.visibility = Hidden
	m.zoom = common.ZoomDefault
}
