package shell

import (
	"errors"
	"fmt"
	"sync"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Debug(msg string, args ...interface{}) { l.add("DEBUG", msg, args...) }
func (l *recordingLogger) Info(msg string, args ...interface{})  { l.add("INFO", msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...interface{})  { l.add("WARN", msg, args...) }
func (l *recordingLogger) Error(msg string, args ...interface{}) { l.add("ERROR", msg, args...) }

var errNative = errors.New("native call failed")

// fakeWindow records every native call and injected script.
type fakeWindow struct {
	opts WindowOptions

	visible    bool
	resizable  bool
	shows      int
	focuses    int
	hides      int
	resizes    int
	scripts    []string
	navigation int // incremented whenever the page is loaded from scratch

	failShow  bool
	failFocus bool
	failHide  bool
	failSize  bool
}

func (w *fakeWindow) Execute(script string) {
	w.scripts = append(w.scripts, script)
}

func (w *fakeWindow) Show() error {
	w.shows++
	if w.failShow {
		return errNative
	}
	w.visible = true
	return nil
}

func (w *fakeWindow) Focus() error {
	w.focuses++
	if w.failFocus {
		return errNative
	}
	return nil
}

func (w *fakeWindow) Hide() error {
	w.hides++
	if w.failHide {
		return errNative
	}
	w.visible = false
	return nil
}

func (w *fakeWindow) SetResizable(resizable bool) error {
	w.resizes++
	if w.failSize {
		return errNative
	}
	w.resizable = resizable
	return nil
}

// nativeCalls sums every observable side effect on the window.
func (w *fakeWindow) nativeCalls() int {
	return w.shows + w.focuses + w.hides + w.resizes + len(w.scripts)
}

// fakeFactory hands out fakeWindows.
type fakeFactory struct {
	created []*fakeWindow
	fail    error
}

func (f *fakeFactory) CreateWindow(opts WindowOptions) (Window, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	w := &fakeWindow{opts: opts, resizable: opts.Resizable, navigation: 1}
	f.created = append(f.created, w)
	return w, nil
}

func (f *fakeFactory) last() *fakeWindow {
	if len(f.created) == 0 {
		return nil
	}
	return f.created[len(f.created)-1]
}

// fatalRecorder collects errors passed to a FatalFunc.
type fatalRecorder struct {
	errs []error
}

func (r *fatalRecorder) fatal(err error) {
	r.errs = append(r.errs, err)
}

// newTestShell wires a manager, dispatcher and lifecycle over fakes.
func newTestShell() (*fakeFactory, *WindowManager, *Dispatcher, *Lifecycle, *fatalRecorder) {
	factory := &fakeFactory{}
	log := &recordingLogger{}
	fatal := &fatalRecorder{}
	windows := NewWindowManager(factory, DefaultWindowOptions(), log)
	return factory, windows, NewDispatcher(windows, fatal.fatal, log), NewLifecycle(windows, fatal.fatal, log), fatal
}
