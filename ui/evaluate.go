package ui

// #cgo pkg-config: webkitgtk-6.0
// #include <stdlib.h>
// #include <webkit/webkit.h>
// extern void _gotk4_gio2_AsyncReadyCallback(GObject*, GAsyncResult*, gpointer);
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/core/gbox"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
)

// evaluateJavascript starts webkit_web_view_evaluate_javascript in the
// main world. The generated webkit bindings only carry the Finish half, so
// the call is made directly and completed through gio's exported callback
// trampoline.
func evaluateJavascript(view *webkit.WebView, script string, callback gio.AsyncReadyCallback) {
	cview := (*C.WebKitWebView)(unsafe.Pointer(coreglib.InternObject(view).Native()))

	cscript := C.CString(script)
	defer C.free(unsafe.Pointer(cscript))

	var ccallback C.GAsyncReadyCallback
	var cdata C.gpointer
	if callback != nil {
		ccallback = (*[0]byte)(C._gotk4_gio2_AsyncReadyCallback)
		cdata = C.gpointer(gbox.AssignOnce(callback))
	}

	C.webkit_web_view_evaluate_javascript(cview, cscript, -1, nil, nil, nil, ccallback, cdata)
	runtime.KeepAlive(view)
}
