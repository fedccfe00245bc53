package memory

import (
	"github.com/mj1618/uibridge/internal/model"
	"github.com/mj1618/uibridge/internal/platform"
)

// Widget is a node in the in-memory retained tree. Widgets must only be
// touched from the App's UI context.
type Widget struct {
	app        *App
	objectName string
	className  string
	geometry   model.Rect
	visible    bool
	enabled    bool
	parent     *Widget
	children   []*Widget
	destroyed  bool

	title       *string
	text        *string
	placeholder *string
	toolTip     *string
	checked     *bool

	items        []string
	hasItems     bool
	currentIndex int

	editable     bool
	dialog       bool
	modal        bool
	closeBlocked bool

	minWidth, minHeight int
	hasMinSize          bool

	// OnClick runs after the press has been delivered to observers.
	OnClick func(w *Widget, button platform.MouseButton)
	// OnTextChanged runs after SetText or a typed character.
	OnTextChanged func(w *Widget)
}

var editableClasses = model.ClassSet(model.DefaultTextInputClasses)

// NewWidget creates a visible, enabled widget. Text input classes start
// editable with empty text.
func NewWidget(className, objectName string) *Widget {
	w := &Widget{
		className:  className,
		objectName: objectName,
		visible:    true,
		enabled:    true,
		geometry:   model.Rect{Width: 100, Height: 30},
	}
	if editableClasses[className] {
		empty := ""
		w.editable, w.text = true, &empty
	}
	return w
}

func (w *Widget) WithTitle(s string) *Widget       { w.title = &s; return w }
func (w *Widget) WithText(s string) *Widget        { w.text = &s; return w }
func (w *Widget) WithPlaceholder(s string) *Widget { w.placeholder = &s; return w }
func (w *Widget) WithToolTip(s string) *Widget     { w.toolTip = &s; return w }
func (w *Widget) WithChecked(b bool) *Widget       { w.checked = &b; return w }
func (w *Widget) WithGeometry(r model.Rect) *Widget {
	w.geometry = r
	return w
}

func (w *Widget) WithMinimumSize(width, height int) *Widget {
	w.minWidth, w.minHeight, w.hasMinSize = width, height, true
	return w
}

// WithItems makes the widget list-like with the first item selected.
func (w *Widget) WithItems(items ...string) *Widget {
	w.items = append([]string(nil), items...)
	w.hasItems = true
	w.currentIndex = 0
	if len(items) == 0 {
		w.currentIndex = -1
	}
	return w
}

// AsDialog marks a top-level window as a dialog, closed through reject().
func (w *Widget) AsDialog(modal bool) *Widget {
	w.dialog, w.modal = true, modal
	return w
}

// BlockClose makes close() refuse, leaving only a forced deleteLater().
func (w *Widget) BlockClose() *Widget { w.closeBlocked = true; return w }

// ReadOnly stops the widget from accepting typed text.
func (w *Widget) ReadOnly() *Widget { w.editable = false; return w }

func (w *Widget) Hidden() *Widget   { w.visible = false; return w }
func (w *Widget) Disabled() *Widget { w.enabled = false; return w }

// Add appends children and returns w.
func (w *Widget) Add(children ...*Widget) *Widget {
	for _, c := range children {
		c.parent = w
		c.adopt(w.app)
		w.children = append(w.children, c)
	}
	return w
}

func (w *Widget) adopt(app *App) {
	w.app = app
	for _, c := range w.children {
		c.adopt(app)
	}
}

// model.Element

func (w *Widget) ObjectName() string   { return w.objectName }
func (w *Widget) ClassName() string    { return w.className }
func (w *Widget) Geometry() model.Rect { return w.geometry }

// IsVisible reports whether the widget and all its ancestors are shown.
func (w *Widget) IsVisible() bool {
	if w.destroyed || !w.visible {
		return false
	}
	if w.parent != nil {
		return w.parent.IsVisible()
	}
	return true
}

// IsEnabled reports whether the widget and all its ancestors are enabled.
func (w *Widget) IsEnabled() bool {
	if !w.enabled {
		return false
	}
	if w.parent != nil {
		return w.parent.IsEnabled()
	}
	return true
}

func (w *Widget) Parent() model.Element {
	if w.parent == nil {
		return nil
	}
	return w.parent
}

func (w *Widget) Children() []model.Element {
	out := make([]model.Element, 0, len(w.children))
	for _, c := range w.children {
		if !c.destroyed {
			out = append(out, c)
		}
	}
	return out
}

// Optional capabilities

func (w *Widget) Title() (string, bool)           { return deref(w.title) }
func (w *Widget) Text() (string, bool)            { return deref(w.text) }
func (w *Widget) PlaceholderText() (string, bool) { return deref(w.placeholder) }
func (w *Widget) ToolTip() (string, bool)         { return deref(w.toolTip) }

func (w *Widget) Checked() (bool, bool) {
	if w.checked == nil {
		return false, false
	}
	return *w.checked, true
}

func (w *Widget) CurrentText() (string, bool) {
	if !w.hasItems {
		return "", false
	}
	if w.currentIndex < 0 || w.currentIndex >= len(w.items) {
		return "", true
	}
	return w.items[w.currentIndex], true
}

func (w *Widget) IsModal() bool { return w.modal }

func (w *Widget) MinimumSize() (int, int, bool) {
	return w.minWidth, w.minHeight, w.hasMinSize
}

// MapToGlobal offsets p by the geometry of w and every ancestor.
func (w *Widget) MapToGlobal(p model.Point) (model.Point, bool) {
	for n := w; n != nil; n = n.parent {
		p.X += n.geometry.X
		p.Y += n.geometry.Y
	}
	return p, true
}

// Mutators. These emit the same events a real toolkit would.

// Show makes the widget visible and notifies observers.
func (w *Widget) Show() {
	if w.visible && !w.destroyed {
		return
	}
	w.visible = true
	w.emit(model.RawEvent{Kind: model.EventShow, Target: w})
}

// Hide hides the widget and notifies observers.
func (w *Widget) Hide() {
	if !w.visible {
		return
	}
	w.visible = false
	w.emit(model.RawEvent{Kind: model.EventHide, Target: w})
	if w.app != nil && w.app.focus != nil && w.app.focus.isDescendantOf(w) {
		w.app.focus = nil
	}
}

func (w *Widget) SetEnabled(b bool) { w.enabled = b }

// SetTextValue replaces the text without simulating typing.
func (w *Widget) SetTextValue(s string) {
	w.text = &s
	if w.OnTextChanged != nil {
		w.OnTextChanged(w)
	}
}

// Destroy removes the widget from the tree. Held handles stay safe to read
// but report the widget as hidden.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	if w.visible {
		w.Hide()
	}
	w.destroyed = true
	if w.parent != nil {
		w.parent.children = removeWidget(w.parent.children, w)
	} else if w.app != nil {
		w.app.windows = removeWidget(w.app.windows, w)
	}
}

func (w *Widget) Destroyed() bool { return w.destroyed }

func (w *Widget) emit(ev model.RawEvent) {
	if w.app != nil {
		w.app.emit(ev)
	}
}

func (w *Widget) isDescendantOf(ancestor *Widget) bool {
	for n := w; n != nil; n = n.parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

func removeWidget(list []*Widget, w *Widget) []*Widget {
	for i, c := range list {
		if c == w {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
