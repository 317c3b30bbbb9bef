package shell

import (
	"fmt"

	"github.com/yllada/messages-desktop/common"
)

// ItemKind distinguishes the kinds of menu entries.
type ItemKind int

const (
	ItemCustom ItemKind = iota
	ItemPredefined
	ItemSeparator
)

// Predefined names a menu entry whose label, behavior and accelerator are
// supplied by the host platform.
type Predefined int

const (
	PredefinedAbout Predefined = iota
	PredefinedQuit
	PredefinedCloseWindow
	PredefinedUndo
	PredefinedRedo
	PredefinedCut
	PredefinedCopy
	PredefinedPaste
	PredefinedSelectAll
	PredefinedMinimize
)

// String returns a short name for the predefined item.
func (p Predefined) String() string {
	switch p {
	case PredefinedAbout:
		return "about"
	case PredefinedQuit:
		return "quit"
	case PredefinedCloseWindow:
		return "close_window"
	case PredefinedUndo:
		return "undo"
	case PredefinedRedo:
		return "redo"
	case PredefinedCut:
		return "cut"
	case PredefinedCopy:
		return "copy"
	case PredefinedPaste:
		return "paste"
	case PredefinedSelectAll:
		return "select_all"
	case PredefinedMinimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// MenuItem is a single entry of a submenu.
type MenuItem struct {
	Kind  ItemKind
	Label string
	// Command and Accelerator apply to custom items.
	Command     Command
	Accelerator string
	// Predefined applies to predefined items. Label may be empty to use
	// the platform's own label.
	Predefined Predefined
}

// Custom returns a custom item.
func Custom(label string, cmd Command, accel string) MenuItem {
	return MenuItem{Kind: ItemCustom, Label: label, Command: cmd, Accelerator: accel}
}

// Standard returns a predefined item.
func Standard(p Predefined, label string) MenuItem {
	return MenuItem{Kind: ItemPredefined, Predefined: p, Label: label}
}

// Separator returns a separator.
func Separator() MenuItem {
	return MenuItem{Kind: ItemSeparator}
}

// Submenu is a labelled, ordered group of items.
type Submenu struct {
	Label string
	Items []MenuItem
}

// MenuTree is an ordered sequence of top-level submenus. It is immutable
// once constructed; accessors return copies.
type MenuTree struct {
	submenus []Submenu
}

// NewMenuTree builds a tree from submenus.
func NewMenuTree(submenus ...Submenu) MenuTree {
	return MenuTree{submenus: copySubmenus(submenus)}
}

// Submenus returns a copy of the top-level submenus.
func (t MenuTree) Submenus() []Submenu {
	return copySubmenus(t.submenus)
}

// CustomItems returns every custom item in menu order.
func (t MenuTree) CustomItems() []MenuItem {
	var items []MenuItem
	for _, sub := range t.submenus {
		for _, item := range sub.Items {
			if item.Kind == ItemCustom {
				items = append(items, item)
			}
		}
	}
	return items
}

// Validate checks that every custom item names a defined command exactly
// once and that every accelerator parses.
func (t MenuTree) Validate() error {
	seen := make(map[Command]string)
	for _, item := range t.CustomItems() {
		if !item.Command.Valid() {
			return fmt.Errorf("%w: item %q has no command", common.ErrMenuBuild, item.Label)
		}
		if other, dup := seen[item.Command]; dup {
			return fmt.Errorf("%w: %s used by %q and %q", common.ErrMenuBuild, item.Command, other, item.Label)
		}
		seen[item.Command] = item.Label
		if item.Accelerator != "" {
			if _, err := ParseAccelerator(item.Accelerator); err != nil {
				return fmt.Errorf("%w: %v", common.ErrMenuBuild, err)
			}
		}
	}
	return nil
}

func copySubmenus(in []Submenu) []Submenu {
	out := make([]Submenu, len(in))
	for i, sub := range in {
		out[i] = Submenu{Label: sub.Label, Items: append([]MenuItem(nil), sub.Items...)}
	}
	return out
}

// DefaultMenu returns the application's menu.
func DefaultMenu() MenuTree {
	return NewMenuTree(
		Submenu{Label: common.AppName, Items: []MenuItem{
			Standard(PredefinedAbout, ""),
			Separator(),
			Standard(PredefinedQuit, "Quit "+common.AppName),
		}},
		Submenu{Label: "File", Items: []MenuItem{
			Custom("New Window", CommandNewWindow, ""),
			Standard(PredefinedCloseWindow, "Close Window"),
		}},
		Submenu{Label: "Edit", Items: []MenuItem{
			Standard(PredefinedUndo, ""),
			Standard(PredefinedRedo, ""),
			Separator(),
			Standard(PredefinedCut, ""),
			Standard(PredefinedCopy, ""),
			Standard(PredefinedPaste, ""),
			Standard(PredefinedSelectAll, ""),
		}},
		Submenu{Label: "View", Items: []MenuItem{
			Custom("Reload This Page", CommandReload, "CmdOrCtrl+R"),
			Separator(),
			Custom("Actual Size", CommandActualSize, "CmdOrCtrl+0"),
			Custom("Zoom In", CommandZoomIn, "CmdOrCtrl+Equal"),
			Custom("Zoom Out", CommandZoomOut, "CmdOrCtrl+-"),
		}},
		Submenu{Label: "History", Items: []MenuItem{
			Custom("Home", CommandHome, "CmdOrCtrl+H"),
			Custom("Back", CommandBack, "CmdOrCtrl+["),
			Custom("Forward", CommandForward, "CmdOrCtrl+]"),
		}},
		Submenu{Label: "Window", Items: []MenuItem{
			Standard(PredefinedMinimize, ""),
			Custom("Zoom", CommandWindowZoom, ""),
			Separator(),
			Custom("Bring All to Front", CommandBringAllToFront, ""),
		}},
	)
}

// MenuHost renders a menu tree with the platform's menu system.
// Calls arrive in tree order: BeginSubmenu, its items, EndSubmenu, and
// finally Install once every submenu has been added.
type MenuHost interface {
	BeginSubmenu(label string) error
	// AddItem adds a custom item; accel is zero when the item has none.
	AddItem(label string, cmd Command, accel Accelerator) error
	// AddPredefined asks the platform for one of its own items. An empty
	// label means the platform default.
	AddPredefined(p Predefined, label string) error
	AddSeparator() error
	EndSubmenu() error
	Install() error
}

// MenuBuilder renders a menu tree exactly once.
type MenuBuilder struct {
	host  MenuHost
	built bool
}

// NewMenuBuilder returns a builder targeting host.
func NewMenuBuilder(host MenuHost) *MenuBuilder {
	return &MenuBuilder{host: host}
}

// Build validates tree and renders it. Any host failure aborts the build
// and is returned wrapped in common.ErrMenuBuild.
func (b *MenuBuilder) Build(tree MenuTree) error {
	if b.built {
		return common.ErrMenuAlreadyBuilt
	}
	if err := tree.Validate(); err != nil {
		return err
	}

	for _, sub := range tree.submenus {
		if err := b.host.BeginSubmenu(sub.Label); err != nil {
			return buildError(sub.Label, err)
		}
		for _, item := range sub.Items {
			if err := b.addItem(item); err != nil {
				return buildError(sub.Label, err)
			}
		}
		if err := b.host.EndSubmenu(); err != nil {
			return buildError(sub.Label, err)
		}
	}

	if err := b.host.Install(); err != nil {
		return fmt.Errorf("%w: install: %v", common.ErrMenuBuild, err)
	}

	b.built = true
	return nil
}

func (b *MenuBuilder) addItem(item MenuItem) error {
	switch item.Kind {
	case ItemSeparator:
		return b.host.AddSeparator()
	case ItemPredefined:
		return b.host.AddPredefined(item.Predefined, item.Label)
	default:
		var accel Accelerator
		if item.Accelerator != "" {
			// Validate already accepted every accelerator
			accel, _ = ParseAccelerator(item.Accelerator)
		}
		return b.host.AddItem(item.Label, item.Command, accel)
	}
}

func buildError(submenu string, err error) error {
	return fmt.Errorf("%w: submenu %q: %v", common.ErrMenuBuild, submenu, err)
}
