// Package action performs single interactions on resolved widgets.
package action

import (
	"errors"
	"time"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/locator"
	"github.com/mj1618/uibridge/internal/model"
	"github.com/mj1618/uibridge/internal/platform"
)

const DefaultKeyDelay = 100 * time.Millisecond

// Executor resolves a target, checks it can be interacted with, drives it
// through the host's native input primitives and pumps the event loop once
// so resulting UI changes are visible to the next command.
type Executor struct {
	loc   *locator.Locator
	input platform.Inputter
	loop  platform.EventLoop
	sleep func(time.Duration)
}

func New(loc *locator.Locator, input platform.Inputter, loop platform.EventLoop) *Executor {
	return &Executor{loc: loc, input: input, loop: loop, sleep: time.Sleep}
}

// WithSleep replaces the inter-key sleep.
func (x *Executor) WithSleep(fn func(time.Duration)) *Executor {
	x.sleep = fn
	return x
}

// interactable resolves t and checks visibility then enablement.
func (x *Executor) interactable(t locator.Target) (model.Element, error) {
	el, err := x.loc.MustResolve(t)
	if err != nil {
		return nil, err
	}
	if !el.IsVisible() {
		return nil, command.Errorf(command.PreconditionFailed, "Widget is not visible: %s", t)
	}
	if !el.IsEnabled() {
		return nil, command.Errorf(command.PreconditionFailed, "Widget is not enabled: %s", t)
	}
	return el, nil
}

func hostError(err error, action string, t locator.Target) error {
	if errors.Is(err, platform.ErrUnsupportedInteraction) {
		return &command.Error{Code: command.PreconditionFailed, Message: action + " " + t.String(), Err: err}
	}
	return command.Wrap(err, "%s %s", action, t)
}

// Click presses el with button.
func (x *Executor) Click(t locator.Target, button platform.MouseButton) (command.Fields, error) {
	el, err := x.interactable(t)
	if err != nil {
		return nil, err
	}
	if err := x.input.Click(el, button); err != nil {
		return nil, hostError(err, "click", t)
	}
	x.loop.ProcessEvents()
	return command.Fields{
		"clicked":      true,
		"widget_class": el.ClassName(),
		"objectName":   el.ObjectName(),
		"button":       button.String(),
	}, nil
}

// SetText types text into a text input, clearing it first when asked.
func (x *Executor) SetText(t locator.Target, text string, clearFirst bool) (command.Fields, error) {
	el, err := x.interactable(t)
	if err != nil {
		return nil, err
	}
	if err := x.input.SetText(el, text, clearFirst); err != nil {
		return nil, hostError(err, "set text on", t)
	}
	x.loop.ProcessEvents()
	return command.Fields{
		"widget_class": el.ClassName(),
		"text_set":     text,
		"objectName":   el.ObjectName(),
	}, nil
}

// SelectItem picks an item by text or index.
func (x *Executor) SelectItem(t locator.Target, sel platform.Selection) (command.Fields, error) {
	el, err := x.interactable(t)
	if err != nil {
		return nil, err
	}
	current, err := x.input.SelectItem(el, sel)
	if err != nil {
		return nil, hostError(err, "select item on", t)
	}
	x.loop.ProcessEvents()
	var selected any = sel.Value
	if sel.ByIndex {
		selected = sel.Index
	}
	return command.Fields{
		"widget_class": el.ClassName(),
		"selected":     selected,
		"current_text": current,
		"objectName":   el.ObjectName(),
	}, nil
}

// SendKeys delivers keys to the target, or to the focused widget when the
// target is zero. The event loop is pumped after every stroke.
func (x *Executor) SendKeys(t locator.Target, keys string, delay time.Duration) (command.Fields, error) {
	strokes, err := ParseKeys(keys)
	if err != nil {
		return nil, err
	}
	var el model.Element
	targetName := "global"
	if !t.IsZero() {
		if el, err = x.interactable(t); err != nil {
			return nil, err
		}
		targetName = t.String()
	}
	for i, k := range strokes {
		if err := x.input.KeyPress(el, k); err != nil {
			return nil, hostError(err, "send "+k.String()+" to", t)
		}
		x.loop.ProcessEvents()
		if delay > 0 && i < len(strokes)-1 {
			x.sleep(delay)
		}
	}
	return command.Fields{
		"keys_sent": keys,
		"target":    targetName,
	}, nil
}
