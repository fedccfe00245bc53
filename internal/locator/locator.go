// Package locator searches the live widget tree and reads element property
// sets.
package locator

import (
	"strings"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/model"
	"github.com/mj1618/uibridge/internal/platform"
)

// Field is the element property a search matches against.
type Field string

const (
	ByObjectName Field = "objectName"
	ByTitle      Field = "title"
	ByClass      Field = "class"
	ByText       Field = "text"
)

// ParseField validates a search type parameter.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case ByObjectName, ByTitle, ByClass, ByText:
		return f, nil
	}
	return "", command.Errorf(command.InvalidParameter,
		"Invalid search type: %q (expected objectName, title, class, or text)", s)
}

// Criteria selects elements. Exactly one field is matched per search.
type Criteria struct {
	Field Field
	Value string
	// Exact compares verbatim; otherwise a case-insensitive substring match.
	Exact bool
	// Parent restricts the search to the top-level window with this
	// objectName.
	Parent string
	// VisibleOnly skips hidden elements and everything beneath them.
	VisibleOnly bool
}

// Matches reports whether el satisfies the criteria's field and mode.
func (c Criteria) Matches(el model.Element) bool {
	var got string
	switch c.Field {
	case ByObjectName:
		got = el.ObjectName()
	case ByTitle:
		got = model.TitleOf(el)
	case ByClass:
		got = el.ClassName()
	case ByText:
		got = model.TextOf(el)
	default:
		return false
	}
	if c.Exact {
		return got == c.Value
	}
	return strings.Contains(strings.ToLower(got), strings.ToLower(c.Value))
}

// Locator walks the host's top-level windows.
type Locator struct {
	tree platform.Tree
}

func New(tree platform.Tree) *Locator {
	return &Locator{tree: tree}
}

// Roots returns the scope roots for a search.
func (l *Locator) Roots(parent string) ([]model.Element, error) {
	windows := l.tree.TopLevelWindows()
	if parent == "" {
		return windows, nil
	}
	for _, w := range windows {
		if w.ObjectName() == parent {
			return []model.Element{w}, nil
		}
	}
	return nil, command.Errorf(command.NotFound, "Parent widget not found: %s", parent)
}

// Find returns every match in pre-order traversal order. A parent and its
// descendant may both match; nothing is de-duplicated. No matches is not an
// error.
func (l *Locator) Find(c Criteria) ([]model.Match, error) {
	roots, err := l.Roots(c.Parent)
	if err != nil {
		return nil, err
	}
	matches := []model.Match{}
	model.Walk(roots, func(el model.Element, depth int, path string) bool {
		if c.VisibleOnly && !el.IsVisible() {
			return false
		}
		if c.Matches(el) {
			matches = append(matches, model.MatchOf(el, depth, path))
		}
		return true
	})
	return matches, nil
}

// First returns the first element satisfying c, or nil.
func (l *Locator) First(c Criteria) (model.Element, error) {
	roots, err := l.Roots(c.Parent)
	if err != nil {
		return nil, err
	}
	var found model.Element
	model.Walk(roots, func(el model.Element, _ int, _ string) bool {
		if found != nil || (c.VisibleOnly && !el.IsVisible()) {
			return false
		}
		if c.Matches(el) {
			found = el
			return false
		}
		return true
	})
	return found, nil
}

// ByName returns the first element, over all elements, whose objectName
// equals name. Duplicate names resolve to the first in traversal order.
func (l *Locator) ByName(name string) model.Element {
	return model.FindFirst(l.tree.TopLevelWindows(), func(el model.Element) bool {
		return el.ObjectName() == name
	})
}

// Windows lists the top-level windows.
func (l *Locator) Windows(visibleOnly bool) []model.WindowInfo {
	out := []model.WindowInfo{}
	for _, w := range l.tree.TopLevelWindows() {
		if visibleOnly && !w.IsVisible() {
			continue
		}
		out = append(out, model.WindowOf(w))
	}
	return out
}
