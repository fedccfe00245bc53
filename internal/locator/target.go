package locator

import (
	"fmt"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/model"
)

// Target addresses one element: by objectName over all elements, or by the
// first match of a locator query.
type Target struct {
	ObjectName string
	Criteria   *Criteria
}

func (t Target) IsZero() bool { return t.ObjectName == "" && t.Criteria == nil }

func (t Target) String() string {
	if t.ObjectName != "" {
		return t.ObjectName
	}
	if t.Criteria != nil {
		return fmt.Sprintf("%s=%q", t.Criteria.Field, t.Criteria.Value)
	}
	return "<none>"
}

// TargetFromParams reads objectName, or type and value (with optional exact
// and parent), from a command's parameters.
func TargetFromParams(p command.Params) (Target, error) {
	if name := p.String("objectName", ""); name != "" {
		return Target{ObjectName: name}, nil
	}
	if !p.Has("type") || !p.Has("value") {
		return Target{}, command.Errorf(command.MissingParameter, "Must provide either objectName OR (type and value)")
	}
	field, err := ParseField(p.String("type", ""))
	if err != nil {
		return Target{}, err
	}
	return Target{Criteria: &Criteria{
		Field:  field,
		Value:  p.String("value", ""),
		Exact:  p.Bool("exact", false),
		Parent: p.String("parent", ""),
	}}, nil
}

// Resolve looks the target up afresh. A nil element with a nil error means
// the target does not currently exist, including when its scope window is
// missing.
func (l *Locator) Resolve(t Target) (model.Element, error) {
	if t.ObjectName != "" {
		return l.ByName(t.ObjectName), nil
	}
	if t.Criteria == nil {
		return nil, command.Errorf(command.MissingParameter, "Must provide either objectName OR (type and value)")
	}
	el, err := l.First(*t.Criteria)
	if command.IsCode(err, command.NotFound) {
		return nil, nil
	}
	return el, err
}

// MustResolve is Resolve with absence reported as NotFound.
func (l *Locator) MustResolve(t Target) (model.Element, error) {
	el, err := l.Resolve(t)
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, command.Errorf(command.NotFound, "Widget not found: %s", t)
	}
	return el, nil
}
