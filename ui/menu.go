package ui

import (
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/messages-desktop/common"
	"github.com/yllada/messages-desktop/shell"
)

// predefinedAction describes how a platform menu item is rendered.
type predefinedAction struct {
	name   string
	label  string
	accels []string
}

var predefinedActions = map[shell.Predefined]predefinedAction{
	shell.PredefinedAbout:       {"about", "About " + common.AppName, nil},
	shell.PredefinedQuit:        {"quit", "Quit", []string{"<Primary>q"}},
	shell.PredefinedCloseWindow: {"close-window", "Close Window", []string{"<Primary>w"}},
	shell.PredefinedUndo:        {"undo", "Undo", []string{"<Primary>z"}},
	shell.PredefinedRedo:        {"redo", "Redo", []string{"<Primary><Shift>z"}},
	shell.PredefinedCut:         {"cut", "Cut", []string{"<Primary>x"}},
	shell.PredefinedCopy:        {"copy", "Copy", []string{"<Primary>c"}},
	shell.PredefinedPaste:       {"paste", "Paste", []string{"<Primary>v"}},
	shell.PredefinedSelectAll:   {"select-all", "Select All", []string{"<Primary>a"}},
	shell.PredefinedMinimize:    {"minimize", "Minimize", []string{"<Primary>m"}},
}

// editingCommands maps edit items to web view editing commands.
var editingCommands = map[shell.Predefined]string{
	shell.PredefinedUndo:      "Undo",
	shell.PredefinedRedo:      "Redo",
	shell.PredefinedCut:       "Cut",
	shell.PredefinedCopy:      "Copy",
	shell.PredefinedPaste:     "Paste",
	shell.PredefinedSelectAll: "SelectAll",
}

// menuHost renders a shell.MenuTree as a GTK menubar backed by application
// actions.
type menuHost struct {
	app       *Application
	bar       *gio.Menu
	submenu   *gio.Menu
	section   *gio.Menu
	label     string
	installed map[string]bool
}

func newMenuHost(app *Application) *menuHost {
	return &menuHost{
		app:       app,
		bar:       gio.NewMenu(),
		installed: make(map[string]bool),
	}
}

func (h *menuHost) BeginSubmenu(label string) error {
	h.label = label
	h.submenu = gio.NewMenu()
	h.section = gio.NewMenu()
	return nil
}

func (h *menuHost) AddItem(label string, cmd shell.Command, accel shell.Accelerator) error {
	name := cmd.ActionName()
	id := cmd.ID()

	action := gio.NewSimpleAction(name, nil)
	action.ConnectActivate(func(_ *glib.Variant) {
		if err := h.app.dispatcher.DispatchID(id); err != nil {
			common.LogWarn("Menu event: %v", err)
		}
	})
	h.addAction(name, action, accelList(accel))

	h.section.Append(label, "app."+name)
	return nil
}

func (h *menuHost) AddPredefined(p shell.Predefined, label string) error {
	spec, ok := predefinedActions[p]
	if !ok {
		return common.ErrMenuBuild
	}
	if label == "" {
		label = spec.label
	}

	if !h.installed[spec.name] {
		action := gio.NewSimpleAction(spec.name, nil)
		action.ConnectActivate(func(_ *glib.Variant) {
			h.app.activatePredefined(p)
		})
		h.addAction(spec.name, action, spec.accels)
	}

	h.section.Append(label, "app."+spec.name)
	return nil
}

func (h *menuHost) AddSeparator() error {
	h.flushSection()
	return nil
}

func (h *menuHost) EndSubmenu() error {
	h.flushSection()
	h.bar.AppendSubmenu(h.label, h.submenu)
	h.submenu = nil
	return nil
}

func (h *menuHost) Install() error {
	h.app.app.SetMenubar(h.bar)
	return nil
}

// flushSection closes the current section. GMenu draws separators between
// sections.
func (h *menuHost) flushSection() {
	if h.section.NItems() > 0 {
		h.submenu.AppendSection("", h.section)
	}
	h.section = gio.NewMenu()
}

func (h *menuHost) addAction(name string, action *gio.SimpleAction, accels []string) {
	h.app.app.AddAction(action)
	h.installed[name] = true
	if len(accels) > 0 {
		h.app.app.SetAccelsForAction("app."+name, accels)
	}
}

func accelList(accel shell.Accelerator) []string {
	if accel.IsZero() {
		return nil
	}
	return []string{accel.GTK()}
}

// activatePredefined performs a platform menu item.
func (a *Application) activatePredefined(p shell.Predefined) {
	if p == shell.PredefinedQuit {
		a.Quit()
		return
	}
	if p == shell.PredefinedAbout {
		a.showAbout()
		return
	}

	win, ok := a.mainWindow()
	if !ok {
		return
	}
	switch p {
	case shell.PredefinedCloseWindow:
		win.Close()
	case shell.PredefinedMinimize:
		win.Minimize()
	default:
		if command, ok := editingCommands[p]; ok {
			win.EditingCommand(command)
		}
	}
}

// showAbout shows the about dialog.
func (a *Application) showAbout() {
	about := gtk.NewAboutDialog()
	if win, ok := a.mainWindow(); ok {
		about.SetTransientFor(win.GTKWindow())
	}
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetLogoIconName(common.AppID)
	about.SetVersion(a.version)
	about.SetComments("Desktop shell for Google Messages for web.")
	about.SetWebsite(common.AppURL)

	about.Show()
}
