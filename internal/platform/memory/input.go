package memory

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mj1618/uibridge/internal/model"
	"github.com/mj1618/uibridge/internal/platform"
)

func (a *App) widget(el model.Element) (*Widget, error) {
	w, ok := el.(*Widget)
	if !ok || w == nil {
		return nil, fmt.Errorf("element %T does not belong to this toolkit", el)
	}
	if w.destroyed {
		return nil, fmt.Errorf("widget %q has been destroyed", w.objectName)
	}
	return w, nil
}

// Click delivers a press to the widget, moves focus to it and runs its
// click handler. Checkable widgets toggle.
func (a *App) Click(el model.Element, button platform.MouseButton) error {
	w, err := a.widget(el)
	if err != nil {
		return err
	}
	a.emit(model.RawEvent{Kind: model.EventPress, Target: w, Button: button.String()})
	if w.editable || w.hasItems {
		a.SetFocus(w)
	}
	a.emit(model.RawEvent{Kind: model.EventRelease, Target: w, Button: button.String()})
	if button == platform.MouseLeft && w.checked != nil {
		toggled := !*w.checked
		w.checked = &toggled
	}
	if w.OnClick != nil {
		w.OnClick(w, button)
	}
	return nil
}

// SetText focuses the widget and types text one character at a time.
func (a *App) SetText(el model.Element, text string, clearFirst bool) error {
	w, err := a.widget(el)
	if err != nil {
		return err
	}
	if !w.editable {
		return fmt.Errorf("%w: %s does not accept text", platform.ErrUnsupportedInteraction, w.className)
	}
	a.SetFocus(w)
	if clearFirst {
		w.SetTextValue("")
	}
	for _, r := range text {
		ch := string(r)
		if err := a.KeyPress(w, platform.KeyStroke{Key: ch, Text: ch}); err != nil {
			return err
		}
	}
	return nil
}

// SelectItem changes the current item of a list-like widget.
func (a *App) SelectItem(el model.Element, sel platform.Selection) (string, error) {
	w, err := a.widget(el)
	if err != nil {
		return "", err
	}
	if !w.hasItems {
		return "", fmt.Errorf("%w: %s has no items", platform.ErrUnsupportedInteraction, w.className)
	}
	idx := -1
	if sel.ByIndex {
		if sel.Index < 0 || sel.Index >= len(w.items) {
			return "", fmt.Errorf("index %d out of range (0-%d)", sel.Index, len(w.items)-1)
		}
		idx = sel.Index
	} else {
		for i, item := range w.items {
			if item == sel.Value {
				idx = i
				break
			}
		}
		if idx < 0 {
			return "", fmt.Errorf("item not found: %q", sel.Value)
		}
	}
	a.SetFocus(w)
	w.currentIndex = idx
	if w.editable {
		w.SetTextValue(w.items[idx])
	} else if w.OnTextChanged != nil {
		w.OnTextChanged(w)
	}
	return w.items[idx], nil
}

// KeyPress delivers a key stroke to target, or to the focused widget. Bound
// shortcuts fire before text editing.
func (a *App) KeyPress(target model.Element, key platform.KeyStroke) error {
	var w *Widget
	if target != nil {
		var err error
		if w, err = a.widget(target); err != nil {
			return err
		}
	} else {
		w = a.focus
	}
	if w == nil {
		w = a.activeWindow()
	}
	if w == nil {
		return fmt.Errorf("no window to receive %s", key)
	}
	a.emit(model.RawEvent{Kind: model.EventKeyPress, Target: w, Text: key.Text})

	if fn, ok := a.shortcuts[key.String()]; ok && key.Modifiers != 0 {
		fn()
		return nil
	}
	if !w.editable || key.Modifiers&(platform.ModCtrl|platform.ModAlt|platform.ModMeta) != 0 {
		return nil
	}
	switch strings.ToLower(key.Key) {
	case "backspace":
		if s := *w.text; s != "" {
			_, size := utf8.DecodeLastRuneInString(s)
			w.SetTextValue(s[:len(s)-size])
		}
	default:
		// Return, Tab and other control text never lands in a line edit.
		if key.Text != "" && strings.IndexFunc(key.Text, unicode.IsControl) < 0 {
			w.SetTextValue(*w.text + key.Text)
		}
	}
	return nil
}

// activeWindow is the topmost visible window, standing in for the
// toolkit's active window when nothing holds focus.
func (a *App) activeWindow() *Widget {
	for i := len(a.windows) - 1; i >= 0; i-- {
		if w := a.windows[i]; w.IsVisible() {
			return w
		}
	}
	return nil
}

// Close dismisses a top-level window. Dialogs are rejected; other windows
// are closed unless they refuse, in which case only force deletes them.
func (a *App) Close(el model.Element, force bool) (string, error) {
	w, err := a.widget(el)
	if err != nil {
		return "", err
	}
	switch {
	case w.dialog:
		w.Hide()
		return "reject()", nil
	case !w.closeBlocked:
		w.Hide()
		return "close()", nil
	case force:
		a.Post(w.Destroy)
		return "deleteLater()", nil
	default:
		return "", fmt.Errorf("no suitable close method found for %s", w.className)
	}
}
