package ui

import (
	"runtime"
	"testing"
	"time"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/stretchr/testify/require"
)

// spinUntil iterates the default main context until done reports true.
func spinUntil(t *testing.T, timeout time.Duration, done func() bool) {
	t.Helper()
	ctx := glib.MainContextDefault()
	deadline := time.Now().Add(timeout)
	for !done() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the web view")
		}
		if !ctx.Iteration(false) {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func TestEvaluateJavascript_RunsInPage(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if !gtk.InitCheck() {
		t.Skip("no display available")
	}

	view := webkit.NewWebView()
	window := gtk.NewWindow()
	window.SetChild(view)
	defer window.Destroy()

	loaded := false
	view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event == webkit.LoadFinished {
			loaded = true
		}
	})
	view.LoadHtml("<html><body></body></html>", "https://messages.google.com/")
	spinUntil(t, 10*time.Second, func() bool { return loaded })

	var (
		finished bool
		result   int32
		evalErr  error
	)
	evaluateJavascript(view, "document.body.style.zoom = 1.2; 6 * 7", func(res gio.AsyncResulter) {
		value, err := view.EvaluateJavascriptFinish(res)
		if err == nil {
			result = value.ToInt32()
		}
		evalErr = err
		finished = true
	})
	spinUntil(t, 10*time.Second, func() bool { return finished })

	require.NoError(t, evalErr)
	require.Equal(t, int32(42), result)
}
