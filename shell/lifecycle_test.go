package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yllada/messages-desktop/common"
)

func TestLifecycle_CloseHidesAndKeepsPage(t *testing.T) {
	factory, windows, dispatcher, lifecycle, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())
	dispatcher.Dispatch(CommandZoomIn)

	suppressed := lifecycle.CloseRequested()

	assert.True(t, suppressed)
	w := factory.last()
	assert.False(t, w.visible)
	assert.Equal(t, Hidden, windows.Visibility())

	lifecycle.ReopenRequested()

	require.Len(t, factory.created, 1, "reopen must reuse the hidden window")
	assert.Equal(t, 1, w.navigation, "page must not be reloaded")
	assert.True(t, w.visible)
	assert.Equal(t, 1.1, windows.Zoom())
}

func TestLifecycle_ReopenCreatesWindow(t *testing.T) {
	factory, windows, _, lifecycle, fatal := newTestShell()

	lifecycle.ReopenRequested()

	require.Len(t, factory.created, 1)
	assert.Equal(t, Visible, windows.Visibility())
	assert.Empty(t, fatal.errs)

	lifecycle.ReopenRequested()
	assert.Len(t, factory.created, 1)
}

func TestLifecycle_ReopenFailureIsFatal(t *testing.T) {
	factory, _, _, lifecycle, fatal := newTestShell()
	factory.fail = errNative

	lifecycle.ReopenRequested()

	require.Len(t, fatal.errs, 1)
	assert.ErrorIs(t, fatal.errs[0], common.ErrWindowCreate)
}

func TestLifecycle_OnHide(t *testing.T) {
	_, windows, _, lifecycle, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())

	calls := 0
	lifecycle.OnHide = func() { calls++ }

	lifecycle.CloseRequested()
	lifecycle.CloseRequested()

	assert.Equal(t, 2, calls)
}

func TestLifecycle_QuitAllowsClose(t *testing.T) {
	factory, windows, _, lifecycle, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())

	assert.False(t, lifecycle.Quitting())
	lifecycle.BeginQuit()
	assert.True(t, lifecycle.Quitting())

	assert.False(t, lifecycle.CloseRequested())
	assert.Zero(t, factory.last().hides)
}

func TestLifecycle_HideOnCloseDisabled(t *testing.T) {
	factory, windows, _, lifecycle, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())
	lifecycle.SetHideOnClose(false)

	assert.False(t, lifecycle.CloseRequested())
	assert.Zero(t, factory.last().hides)

	// Once the platform tears the window down, reopen builds a new one
	lifecycle.WindowDestroyed()
	lifecycle.ReopenRequested()
	assert.Len(t, factory.created, 2)
}

func TestLifecycle_CloseWithoutWindow(t *testing.T) {
	_, _, _, lifecycle, _ := newTestShell()

	assert.NotPanics(t, func() {
		assert.True(t, lifecycle.CloseRequested())
	})
}

func TestLifecycle_PageLoadedReappliesZoom(t *testing.T) {
	factory, windows, dispatcher, lifecycle, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())
	w := factory.last()

	lifecycle.PageLoaded()
	assert.Empty(t, w.scripts, "default zoom needs no script")

	dispatcher.Dispatch(CommandZoomOut)
	dispatcher.Dispatch(CommandReload)
	lifecycle.PageLoaded()

	assert.Equal(t, []string{
		zoomScript("0.9"),
		"window.location.reload();",
		zoomScript("0.9"),
	}, w.scripts)
}
