package shell

import "strings"

// Command identifies the action behind a custom menu item.
type Command int

const (
	CommandNewWindow Command = iota
	CommandReload
	CommandActualSize
	CommandZoomIn
	CommandZoomOut
	CommandHome
	CommandBack
	CommandForward
	CommandWindowZoom
	CommandBringAllToFront

	commandCount
)

var commandIDs = [commandCount]string{
	CommandNewWindow:       "new_window",
	CommandReload:          "view_reload",
	CommandActualSize:      "view_actual_size",
	CommandZoomIn:          "view_zoom_in",
	CommandZoomOut:         "view_zoom_out",
	CommandHome:            "history_home",
	CommandBack:            "history_back",
	CommandForward:         "history_forward",
	CommandWindowZoom:      "window_zoom",
	CommandBringAllToFront: "window_bring_all_to_front",
}

// ID returns the stable identifier carried by menu activation events.
func (c Command) ID() string {
	if !c.Valid() {
		return ""
	}
	return commandIDs[c]
}

// ActionName returns the toolkit action name for c. Action names may not
// contain underscores, so they are replaced with dashes.
func (c Command) ActionName() string {
	return strings.ReplaceAll(c.ID(), "_", "-")
}

// String implements fmt.Stringer.
func (c Command) String() string {
	if id := c.ID(); id != "" {
		return id
	}
	return "unknown"
}

// Valid reports whether c is one of the defined commands.
func (c Command) Valid() bool {
	return c >= 0 && c < commandCount
}

// ParseCommand resolves a menu identifier.
func ParseCommand(id string) (Command, bool) {
	for c := Command(0); c < commandCount; c++ {
		if commandIDs[c] == id {
			return c, true
		}
	}
	return 0, false
}

// AllCommands returns every defined command in declaration order.
func AllCommands() []Command {
	all := make([]Command, 0, commandCount)
	for c := Command(0); c < commandCount; c++ {
		all = append(all, c)
	}
	return all
}
