package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_IDs(t *testing.T) {
	tests := []struct {
		cmd Command
		id  string
	}{
		{CommandNewWindow, "new_window"},
		{CommandReload, "view_reload"},
		{CommandActualSize, "view_actual_size"},
		{CommandZoomIn, "view_zoom_in"},
		{CommandZoomOut, "view_zoom_out"},
		{CommandHome, "history_home"},
		{CommandBack, "history_back"},
		{CommandForward, "history_forward"},
		{CommandWindowZoom, "window_zoom"},
		{CommandBringAllToFront, "window_bring_all_to_front"},
	}

	assert.Len(t, tests, len(AllCommands()), "every command needs a row here")

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.id, tt.cmd.ID())
			assert.Equal(t, tt.id, tt.cmd.String())

			parsed, ok := ParseCommand(tt.id)
			assert.True(t, ok)
			assert.Equal(t, tt.cmd, parsed)
		})
	}
}

func TestCommand_Invalid(t *testing.T) {
	for _, c := range []Command{-1, commandCount, Command(99)} {
		assert.False(t, c.Valid())
		assert.Empty(t, c.ID())
		assert.Equal(t, "unknown", c.String())
	}

	_, ok := ParseCommand("view_zoom_sideways")
	assert.False(t, ok)

	_, ok = ParseCommand("")
	assert.False(t, ok)
}

func TestAllCommands_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range AllCommands() {
		id := c.ID()
		assert.NotEmpty(t, id, "command %d has no identifier", int(c))
		assert.False(t, seen[id], "duplicate identifier %q", id)
		seen[id] = true
	}
}

func TestCommand_ActionName(t *testing.T) {
	assert.Equal(t, "view-zoom-in", CommandZoomIn.ActionName())
	assert.Equal(t, "window-bring-all-to-front", CommandBringAllToFront.ActionName())
	assert.Equal(t, "", Command(-1).ActionName())

	for _, cmd := range AllCommands() {
		assert.NotContains(t, cmd.ActionName(), "_")
	}
}
