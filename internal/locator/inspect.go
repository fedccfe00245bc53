package locator

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/model"
)

// Inspection is an element's property set, optionally with one flat level
// of immediate children.
type Inspection struct {
	Widget   model.ElementSnapshot
	Children []model.ChildSnapshot
}

// Inspect resolves the first element named objectName and reads its
// properties. Children are listed one level deep only.
func (l *Locator) Inspect(objectName string, includeChildren bool) (*Inspection, error) {
	el := l.ByName(objectName)
	if el == nil {
		return nil, command.Errorf(command.NotFound, "Widget not found: %s", objectName)
	}
	in := &Inspection{Widget: model.Snapshot(el)}
	if includeChildren {
		in.Children = []model.ChildSnapshot{}
		for _, child := range el.Children() {
			in.Children = append(in.Children, model.ChildOf(child))
		}
	}
	return in, nil
}

// Fields renders the inspection in result form.
func (in *Inspection) Fields() command.Fields {
	f := command.Fields{"widget": in.Widget}
	if in.Children != nil {
		f["children"] = in.Children
		f["child_count"] = len(in.Children)
	}
	return f
}
