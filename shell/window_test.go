package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yllada/messages-desktop/common"
)

func TestDefaultWindowOptions(t *testing.T) {
	opts := DefaultWindowOptions()

	assert.Equal(t, "main", opts.Name)
	assert.Equal(t, "Google Messages", opts.Title)
	assert.Equal(t, "https://messages.google.com/web", opts.URL)
	assert.Equal(t, 1024, opts.Width)
	assert.Equal(t, 768, opts.Height)
	assert.True(t, opts.Resizable)
	assert.NoError(t, opts.Validate())
}

func TestWindowOptions_Validate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://messages.google.com/web", false},
		{"http://localhost:8080/", false},
		{"", true},
		{"messages.google.com/web", true},
		{"ftp://messages.google.com/", true},
		{"https://", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			opts := DefaultWindowOptions()
			opts.URL = tt.url
			err := opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWindowManager_CreatesLazily(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()

	_, ok := windows.Window()
	assert.False(t, ok)
	assert.Equal(t, Hidden, windows.Visibility())
	assert.Empty(t, factory.created)

	require.NoError(t, windows.CreateOrShow())

	require.Len(t, factory.created, 1)
	w := factory.last()
	assert.Equal(t, DefaultWindowOptions(), w.opts)
	assert.Equal(t, 1, w.shows)
	assert.Equal(t, 1, w.focuses)
	assert.Equal(t, Visible, windows.Visibility())
}

func TestWindowManager_SingleInstance(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()

	for i := 0; i < 3; i++ {
		require.NoError(t, windows.CreateOrShow())
	}

	require.Len(t, factory.created, 1)
	assert.Equal(t, 3, factory.last().shows)
	assert.Equal(t, 1, factory.last().navigation)
}

func TestWindowManager_ShowFailureIsNotFatal(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())

	w := factory.last()
	w.failShow = true
	w.failFocus = true

	assert.NoError(t, windows.CreateOrShow())
	assert.Equal(t, 2, w.shows)
	assert.Equal(t, 2, w.focuses)
}

func TestWindowManager_CreateFailure(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()
	factory.fail = errors.New("no display")

	err := windows.CreateOrShow()

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrWindowCreate)
	assert.Contains(t, err.Error(), "no display")
	_, ok := windows.Window()
	assert.False(t, ok)
}

func TestWindowManager_InvalidURL(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()
	opts := windows.Options()
	opts.URL = "not a url"
	windows.SetOptions(opts)

	assert.ErrorIs(t, windows.CreateOrShow(), common.ErrInvalidURL)
	assert.Empty(t, factory.created)
}

func TestWindowManager_HideKeepsWindow(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())

	windows.Hide()

	w := factory.last()
	assert.Equal(t, 1, w.hides)
	assert.False(t, w.visible)
	assert.Equal(t, Hidden, windows.Visibility())
	_, ok := windows.Window()
	assert.True(t, ok)
}

func TestWindowManager_HideFailureKeepsVisibility(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())
	factory.last().failHide = true

	windows.Hide()

	assert.Equal(t, Visible, windows.Visibility())
}

func TestWindowManager_NoWindowOperationsAreNoops(t *testing.T) {
	_, windows, _, _, _ := newTestShell()

	windows.Hide()
	windows.Execute("history.back();")
	windows.NavigateHome()
	windows.SetZoom(2)
	windows.ReapplyZoom()
	windows.Forget()

	assert.Equal(t, common.ZoomDefault, windows.Zoom())
}

func TestWindowManager_ForgetThenRecreate(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())
	windows.SetZoom(1.5)

	windows.Forget()
	_, ok := windows.Window()
	assert.False(t, ok)
	assert.Equal(t, common.ZoomDefault, windows.Zoom())

	require.NoError(t, windows.CreateOrShow())
	assert.Len(t, factory.created, 2)
}

func TestWindowManager_SetZoomClamps(t *testing.T) {
	factory, windows, _, _, _ := newTestShell()
	require.NoError(t, windows.CreateOrShow())

	windows.SetZoom(10)
	assert.Equal(t, common.ZoomMax, windows.Zoom())

	windows.SetZoom(0.01)
	assert.Equal(t, common.ZoomMin, windows.Zoom())

	assert.Equal(t, []string{
		"if (document.body) { document.body.style.zoom = 3; }",
		"if (document.body) { document.body.style.zoom = 0.5; }",
	}, factory.last().scripts)
}

type stubScripts struct{ DOMScripts }

func (stubScripts) Reload() string { return "stub reload" }

func TestWindowManager_SetScripts(t *testing.T) {
	factory, windows, dispatcher, _, _ := newTestShell()
	windows.SetScripts(stubScripts{})
	require.NoError(t, windows.CreateOrShow())

	dispatcher.Dispatch(CommandReload)

	assert.Equal(t, []string{"stub reload"}, factory.last().scripts)
}

func TestVisibility_String(t *testing.T) {
	assert.Equal(t, "Visible", Visible.String())
	assert.Equal(t, "Hidden", Hidden.String())
}
