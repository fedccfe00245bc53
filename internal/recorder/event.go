package recorder

import (
	"time"

	"github.com/mj1618/uibridge/internal/model"
)

// Kind is a recorded event type.
type Kind string

const (
	KindClick    Kind = "click"
	KindShow     Kind = "show"
	KindHide     Kind = "hide"
	KindFocus    Kind = "focus"
	KindKeyPress Kind = "key_press"
	KindNote     Kind = "note"
)

// Boundary reports whether k starts a new step.
func (k Kind) Boundary() bool {
	return k == KindClick || k == KindShow || k == KindNote
}

// WidgetSnapshot is a copy of the target's identity at event time.
type WidgetSnapshot struct {
	Class       string  `json:"class"`
	ObjectName  string  `json:"objectName"`
	Text        *string `json:"text"`
	WindowTitle *string `json:"windowTitle"`
}

// WindowSnapshot identifies the window containing the target.
type WindowSnapshot struct {
	Class      string `json:"class"`
	ObjectName string `json:"objectName"`
	Title      string `json:"title"`
}

// Event is one buffered interaction.
type Event struct {
	Timestamp    time.Time       `json:"timestamp"`
	Elapsed      float64         `json:"elapsed"`
	Kind         Kind            `json:"event"`
	Widget       *WidgetSnapshot `json:"widget,omitempty"`
	ParentWindow *WindowSnapshot `json:"parent_window,omitempty"`
	Button       string          `json:"button,omitempty"`
	Key          string          `json:"key,omitempty"`
	Note         string          `json:"note,omitempty"`
}

func snapshotWidget(el model.Element) *WidgetSnapshot {
	ws := &WidgetSnapshot{Class: el.ClassName(), ObjectName: el.ObjectName()}
	if t, ok := el.(model.Texted); ok {
		if s, ok := t.Text(); ok {
			ws.Text = &s
		}
	}
	if t, ok := el.(model.Titled); ok {
		if s, ok := t.Title(); ok {
			ws.WindowTitle = &s
		}
	}
	return ws
}

func snapshotWindow(el model.Element) *WindowSnapshot {
	win := model.Window(el)
	if win == nil || win == el {
		return nil
	}
	return &WindowSnapshot{
		Class:      win.ClassName(),
		ObjectName: win.ObjectName(),
		Title:      model.TitleOf(win),
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
