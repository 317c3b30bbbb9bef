package shell

import (
	"fmt"

	"github.com/yllada/messages-desktop/common"
)

// FatalFunc receives errors the application cannot continue after.
type FatalFunc func(err error)

// Dispatcher performs the action behind an activated menu command.
type Dispatcher struct {
	windows *WindowManager
	fatal   FatalFunc
	log     common.Logger
}

// NewDispatcher returns a dispatcher acting on windows. fatal is called
// when the window cannot be created.
func NewDispatcher(windows *WindowManager, fatal FatalFunc, log common.Logger) *Dispatcher {
	if log == nil {
		log = common.GetLogger()
	}
	return &Dispatcher{
		windows: windows,
		fatal:   fatal,
		log:     log,
	}
}

// DispatchID handles a menu activation event. Unknown identifiers have no
// effect and yield common.ErrUnknownCommand.
func (d *Dispatcher) DispatchID(id string) error {
	cmd, ok := ParseCommand(id)
	if !ok {
		d.log.Debug("Ignoring unknown menu id %q", id)
		return fmt.Errorf("%w: %q", common.ErrUnknownCommand, id)
	}
	d.Dispatch(cmd)
	return nil
}

// Dispatch performs exactly one action for cmd. Commands other than
// CommandNewWindow need an existing window and are dropped without one.
func (d *Dispatcher) Dispatch(cmd Command) {
	d.log.Debug("Dispatching %s", cmd)

	if cmd == CommandNewWindow {
		if err := d.windows.CreateOrShow(); err != nil && d.fatal != nil {
			d.fatal(err)
		}
		return
	}

	win, ok := d.windows.Window()
	if !ok {
		d.log.Debug("No window for %s", cmd)
		return
	}

	bounds := d.windows.ZoomBounds()

	switch cmd {
	case CommandReload:
		win.Execute(d.windows.scripts.Reload())
	case CommandActualSize:
		d.windows.SetZoom(common.ZoomDefault)
	case CommandZoomIn:
		d.windows.SetZoom(bounds.In(d.windows.Zoom()))
	case CommandZoomOut:
		d.windows.SetZoom(bounds.Out(d.windows.Zoom()))
	case CommandHome:
		d.windows.NavigateHome()
	case CommandBack:
		win.Execute(d.windows.scripts.Back())
	case CommandForward:
		win.Execute(d.windows.scripts.Forward())
	case CommandWindowZoom:
		// Makes the window resizable again; it does not maximize.
		if err := win.SetResizable(true); err != nil {
			d.log.Debug("SetResizable failed: %v", err)
		}
	case CommandBringAllToFront:
		if err := win.Focus(); err != nil {
			d.log.Debug("Focus failed: %v", err)
		}
	default:
		d.log.Error("No action for command %d", int(cmd))
	}
}
