// Package memory is an in-process widget toolkit implementing every host UI
// backend. It keeps a retained tree, a posted-work queue drained by
// ProcessEvents, and synchronous observer delivery, which is enough to drive
// the automation engine in tests and in demo mode.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mj1618/uibridge/internal/model"
	"github.com/mj1618/uibridge/internal/platform"
)

// ErrStopped is returned by Invoke once the UI loop has exited.
var ErrStopped = errors.New("ui loop stopped")

type observer struct {
	fn     func(model.RawEvent)
	active bool
}

type invocation struct {
	fn   func()
	done chan error
}

// App is the application instance: top-level windows, focus, observers and
// the UI execution context.
type App struct {
	windows   []*Widget
	focus     *Widget
	observers []*observer
	shortcuts map[string]func()

	fileName string
	dirty    bool

	mu     sync.Mutex
	posted []func()

	invoke  chan invocation
	stopped chan struct{}
	once    sync.Once

	// IdleInterval is how often Run drains posted work while idle.
	IdleInterval time.Duration
}

func NewApp() *App {
	return &App{
		shortcuts:    make(map[string]func()),
		invoke:       make(chan invocation),
		stopped:      make(chan struct{}),
		IdleInterval: 10 * time.Millisecond,
	}
}

// AddWindow registers a top-level window without showing it.
func (a *App) AddWindow(w *Widget) *Widget {
	w.parent = nil
	w.adopt(a)
	a.windows = append(a.windows, w)
	return w
}

// ShowWindow registers w if needed and shows it.
func (a *App) ShowWindow(w *Widget) {
	if !a.hasWindow(w) {
		w.destroyed = false
		w.visible = false
		a.AddWindow(w)
	}
	w.Show()
}

func (a *App) hasWindow(w *Widget) bool {
	for _, existing := range a.windows {
		if existing == w {
			return true
		}
	}
	return false
}

// TopLevelWindows implements platform.Tree.
func (a *App) TopLevelWindows() []model.Element {
	out := make([]model.Element, 0, len(a.windows))
	for _, w := range a.windows {
		if !w.destroyed {
			out = append(out, w)
		}
	}
	return out
}

// Lookup returns the first widget with objectName, for fixtures and tests.
func (a *App) Lookup(objectName string) *Widget {
	el := model.FindFirst(a.TopLevelWindows(), func(el model.Element) bool {
		return el.ObjectName() == objectName
	})
	if el == nil {
		return nil
	}
	return el.(*Widget)
}

// Focus returns the widget holding keyboard focus, or nil.
func (a *App) Focus() *Widget { return a.focus }

// SetFocus moves keyboard focus and emits a focus-in event.
func (a *App) SetFocus(w *Widget) {
	if a.focus == w {
		return
	}
	a.focus = w
	if w != nil {
		a.emit(model.RawEvent{Kind: model.EventFocusIn, Target: w})
	}
}

// Shortcut binds a key combination such as "Ctrl+S" to fn.
func (a *App) Shortcut(combo string, fn func()) { a.shortcuts[combo] = fn }

// Document

func (a *App) FileName() string { return a.fileName }
func (a *App) IsDirty() bool    { return a.dirty }

func (a *App) SetDocument(name string, dirty bool) {
	a.fileName, a.dirty = name, dirty
}

// EventSource

// Subscribe installs an application-wide observer. Observers run
// synchronously in subscription order.
func (a *App) Subscribe(fn func(model.RawEvent)) func() {
	obs := &observer{fn: fn, active: true}
	a.observers = append(a.observers, obs)
	return func() {
		obs.active = false
		for i, o := range a.observers {
			if o == obs {
				a.observers = append(a.observers[:i:i], a.observers[i+1:]...)
				return
			}
		}
	}
}

// Observers reports how many observers are installed.
func (a *App) Observers() int { return len(a.observers) }

func (a *App) emit(ev model.RawEvent) {
	snapshot := append([]*observer(nil), a.observers...)
	for _, o := range snapshot {
		if o.active {
			o.fn(ev)
		}
	}
}

// EventLoop

// Post schedules fn to run on the next ProcessEvents. Safe from any
// goroutine.
func (a *App) Post(fn func()) {
	a.mu.Lock()
	a.posted = append(a.posted, fn)
	a.mu.Unlock()
}

// Pending reports the number of queued posted functions.
func (a *App) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.posted)
}

// ProcessEvents runs the work posted before the call. Work posted while
// draining waits for the next call.
func (a *App) ProcessEvents() {
	a.mu.Lock()
	work := a.posted
	a.posted = nil
	a.mu.Unlock()
	for _, fn := range work {
		fn()
	}
}

// Run makes the calling goroutine the UI context until ctx is done. Posted
// work is drained while idle.
func (a *App) Run(ctx context.Context) error {
	defer a.once.Do(func() { close(a.stopped) })
	ticker := time.NewTicker(a.IdleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case inv := <-a.invoke:
			inv.done <- a.runGuarded(inv.fn)
		case <-ticker.C:
			a.ProcessEvents()
		}
	}
}

func (a *App) runGuarded(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic on ui context: %v", r)
		}
	}()
	fn()
	return nil
}

// Invoke runs fn on the UI context and waits for it.
func (a *App) Invoke(ctx context.Context, fn func()) error {
	inv := invocation{fn: fn, done: make(chan error, 1)}
	select {
	case a.invoke <- inv:
	case <-ctx.Done():
		return ctx.Err()
	case <-a.stopped:
		return ErrStopped
	}
	// Once started, fn runs to completion; the caller waits so results are
	// never read concurrently with the UI.
	return <-inv.done
}

// NewProvider exposes app through the platform interfaces.
func NewProvider(app *App) *platform.Provider {
	return &platform.Provider{
		Tree:     app,
		Loop:     app,
		Events:   app,
		Inputter: app,
		Closer:   app,
		Document: app,
	}
}
