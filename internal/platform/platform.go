package platform

import (
	"context"

	"github.com/mj1618/uibridge/internal/model"
)

// Tree enumerates the host toolkit's top-level windows.
type Tree interface {
	TopLevelWindows() []model.Element
}

// EventLoop is the host UI execution context.
type EventLoop interface {
	// ProcessEvents drains pending host events once. It must be called from
	// the UI context.
	ProcessEvents()

	// Invoke runs fn on the UI context and blocks until it returns. Calls
	// from several goroutines queue rather than interleave.
	Invoke(ctx context.Context, fn func()) error
}

// EventSource delivers every application-wide event to subscribed
// observers, synchronously on the UI context.
type EventSource interface {
	Subscribe(fn func(model.RawEvent)) (cancel func())
}

// Inputter drives widgets through the toolkit's native interaction
// primitives, so the application's own handlers fire as they would for a
// real user.
type Inputter interface {
	Click(el model.Element, button MouseButton) error
	SetText(el model.Element, text string, clearFirst bool) error
	// SelectItem returns the text of the item that ended up selected.
	SelectItem(el model.Element, sel Selection) (string, error)
	// KeyPress delivers one key stroke to target, or to whatever holds
	// focus when target is nil.
	KeyPress(target model.Element, key KeyStroke) error
}

// WindowCloser closes top-level windows and dialogs.
type WindowCloser interface {
	// Close returns the close method that was used, e.g. "reject()".
	Close(el model.Element, force bool) (string, error)
}

// Document describes the application's open project.
type Document interface {
	FileName() string
	IsDirty() bool
}
