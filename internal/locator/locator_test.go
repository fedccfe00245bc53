package locator

import (
	"testing"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/platform/memory"
)

func fixture() *memory.App {
	app := memory.NewApp()
	app.AddWindow(memory.NewWidget("QMainWindow", "main").WithTitle("Untitled - QGIS").Add(
		memory.NewWidget("QToolBar", "files").Add(
			memory.NewWidget("QToolButton", "newProject").WithText("New Project"),
			memory.NewWidget("QToolButton", "openProject").WithText("Open Project"),
		),
		memory.NewWidget("QWidget", "").Hidden().Add(
			memory.NewWidget("QPushButton", "hiddenNew").WithText("New"),
		),
	))
	app.AddWindow(memory.NewWidget("QDialog", "newDialog").WithTitle("New Project").Add(
		memory.NewWidget("QLineEdit", "projectName"),
	))
	return app
}

func names(t *testing.T, l *Locator, c Criteria) []string {
	t.Helper()
	matches, err := l.Find(c)
	if err != nil {
		t.Fatalf("Find(%+v): %v", c, err)
	}
	var out []string
	for _, m := range matches {
		out = append(out, m.ObjectName)
	}
	return out
}

func TestFind_SubstringIsCaseInsensitive(t *testing.T) {
	l := New(fixture())
	got := names(t, l, Criteria{Field: ByTitle, Value: "new"})
	if len(got) != 1 || got[0] != "newDialog" {
		t.Errorf("expected newDialog, got %v", got)
	}
}

func TestFind_PreOrderAcrossWindows(t *testing.T) {
	l := New(fixture())
	got := names(t, l, Criteria{Field: ByObjectName, Value: "new"})
	want := []string{"newProject", "hiddenNew", "newDialog"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFind_ParentAndDescendantBothMatch(t *testing.T) {
	app := memory.NewApp()
	app.AddWindow(memory.NewWidget("QWidget", "panel").Add(memory.NewWidget("QWidget", "panelInner")))
	matches, err := New(app).Find(Criteria{Field: ByObjectName, Value: "panel"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Depth != 0 || matches[1].Depth != 1 {
		t.Errorf("unexpected depths %d, %d", matches[0].Depth, matches[1].Depth)
	}
	if matches[1].Path != "panel.panelInner" {
		t.Errorf("unexpected path %q", matches[1].Path)
	}
}

func TestFind_ExactAndVisibleOnly(t *testing.T) {
	l := New(fixture())
	if got := names(t, l, Criteria{Field: ByText, Value: "new", Exact: true}); len(got) != 0 {
		t.Errorf("exact match is case sensitive, got %v", got)
	}
	if got := names(t, l, Criteria{Field: ByText, Value: "New", Exact: true}); len(got) != 1 || got[0] != "hiddenNew" {
		t.Errorf("expected hiddenNew, got %v", got)
	}
	got := names(t, l, Criteria{Field: ByText, Value: "new", VisibleOnly: true})
	if len(got) != 1 || got[0] != "newProject" {
		t.Errorf("expected only visible newProject, got %v", got)
	}
}

func TestFind_ParentScope(t *testing.T) {
	l := New(fixture())
	got := names(t, l, Criteria{Field: ByClass, Value: "QLineEdit", Parent: "newDialog"})
	if len(got) != 1 || got[0] != "projectName" {
		t.Errorf("expected projectName, got %v", got)
	}
	_, err := l.Find(Criteria{Field: ByClass, Value: "QLineEdit", Parent: "missing"})
	if command.CodeOf(err) != command.NotFound {
		t.Errorf("expected NotFound for missing parent, got %v", err)
	}
}

func TestFind_NoMatchesIsEmpty(t *testing.T) {
	matches, err := New(fixture()).Find(Criteria{Field: ByClass, Value: "QTableView"})
	if err != nil {
		t.Fatalf("no matches must not be an error: %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", matches)
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"objectName", "title", "class", "text"} {
		if _, err := ParseField(s); err != nil {
			t.Errorf("ParseField(%q): %v", s, err)
		}
	}
	if _, err := ParseField("xpath"); command.CodeOf(err) != command.InvalidParameter {
		t.Errorf("expected InvalidParameter, got %v", err)
	}
}

func TestInspect(t *testing.T) {
	app := memory.NewApp()
	app.AddWindow(memory.NewWidget("QDialog", "dlg").WithTitle("Options").Add(
		memory.NewWidget("QCheckBox", "snap").WithText("Snap").WithChecked(true),
		memory.NewWidget("QLineEdit", "dup").WithPlaceholder("Name").Add(
			memory.NewWidget("QWidget", "grandchild"),
		),
	))
	app.AddWindow(memory.NewWidget("QLabel", "dup").WithText("second"))
	l := New(app)

	in, err := l.Inspect("dlg", true)
	if err != nil {
		t.Fatal(err)
	}
	if in.Widget.Title == nil || *in.Widget.Title != "Options" {
		t.Errorf("expected title Options, got %v", in.Widget.Title)
	}
	if len(in.Children) != 2 {
		t.Fatalf("expected 2 immediate children, got %d", len(in.Children))
	}
	fields := in.Fields()
	if fields["child_count"] != 2 {
		t.Errorf("expected child_count 2, got %v", fields["child_count"])
	}

	in, err = l.Inspect("dup", false)
	if err != nil {
		t.Fatal(err)
	}
	if in.Widget.Class != "QLineEdit" {
		t.Errorf("duplicate names must resolve to the first in traversal order, got %s", in.Widget.Class)
	}
	if in.Widget.PlaceholderText == nil || in.Widget.Checked != nil {
		t.Error("expected placeholder present and checked absent on a line edit")
	}
	if _, ok := in.Fields()["children"]; ok {
		t.Error("children should be omitted when not requested")
	}

	if _, err := l.Inspect("nope", false); command.CodeOf(err) != command.NotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestDetectErrorsAndTopLevel(t *testing.T) {
	app := memory.NewApp()
	app.AddWindow(memory.NewWidget("QMainWindow", "main").WithTitle("QGIS"))
	app.AddWindow(memory.NewWidget("QMessageBox", "").WithTitle("Invalid Data Source").WithText("bad"))
	app.AddWindow(memory.NewWidget("QDialog", "proc").WithTitle("Processing failed"))
	app.AddWindow(memory.NewWidget("QDialog", "gone").WithTitle("Error").Hidden())
	l := New(app)

	errs := l.DetectErrors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 error dialogs, got %+v", errs)
	}
	if errs[0].Type != "QMessageBox" || errs[0].Text != "bad" {
		t.Errorf("unexpected message box entry %+v", errs[0])
	}
	if errs[1].Type != "Dialog with error keyword" {
		t.Errorf("unexpected dialog entry %+v", errs[1])
	}

	w, err := l.TopLevel("", "Processing")
	if err != nil || w.ObjectName() != "proc" {
		t.Errorf("TopLevel by title = %v, %v", w, err)
	}
	if _, err := l.TopLevel("nope", ""); command.CodeOf(err) != command.NotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}
