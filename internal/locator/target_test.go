package locator

import (
	"testing"

	"github.com/mj1618/uibridge/internal/command"
)

func TestTargetFromParams(t *testing.T) {
	tgt, err := TargetFromParams(command.Params{"objectName": "ok", "type": "class"})
	if err != nil || tgt.ObjectName != "ok" || tgt.Criteria != nil {
		t.Errorf("objectName should win, got %+v, %v", tgt, err)
	}

	tgt, err = TargetFromParams(command.Params{"type": "text", "value": "Add", "exact": true})
	if err != nil {
		t.Fatal(err)
	}
	if tgt.Criteria == nil || tgt.Criteria.Field != ByText || !tgt.Criteria.Exact {
		t.Errorf("unexpected criteria %+v", tgt.Criteria)
	}

	if _, err := TargetFromParams(command.Params{"type": "text"}); command.CodeOf(err) != command.MissingParameter {
		t.Errorf("expected MissingParameter, got %v", err)
	}
	if _, err := TargetFromParams(command.Params{"type": "css", "value": "x"}); command.CodeOf(err) != command.InvalidParameter {
		t.Errorf("expected InvalidParameter, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	l := New(fixture())
	el, err := l.Resolve(Target{Criteria: &Criteria{Field: ByClass, Value: "QLineEdit", Exact: true}})
	if err != nil || el == nil || el.ObjectName() != "projectName" {
		t.Errorf("Resolve by class = %v, %v", el, err)
	}
	el, err = l.Resolve(Target{Criteria: &Criteria{Field: ByClass, Value: "QLineEdit", Parent: "closedDialog"}})
	if err != nil || el != nil {
		t.Errorf("missing scope should resolve to nothing, got %v, %v", el, err)
	}
	if _, err := l.MustResolve(Target{ObjectName: "ghost"}); command.CodeOf(err) != command.NotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}
