package recorder

import (
	"strings"
	"testing"
	"time"
)

func ev(kind Kind, name string) Event {
	return Event{Kind: kind, Widget: &WidgetSnapshot{Class: "QWidget", ObjectName: name}}
}

func kinds(s Step) string {
	var parts []string
	for _, e := range s.Events {
		parts = append(parts, string(e.Kind))
	}
	return strings.Join(parts, ",")
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   []string
	}{
		{"empty", nil, nil},
		{"clicks", []Event{ev(KindClick, "a"), ev(KindClick, "b")}, []string{"click", "click"}},
		{
			"preceding non-boundary events join the boundary",
			[]Event{ev(KindFocus, "f"), ev(KindKeyPress, "f"), ev(KindClick, "ok"), ev(KindHide, "dlg")},
			[]string{"focus,key_press,click", "hide"},
		},
		{
			"show and note are boundaries",
			[]Event{ev(KindShow, "dlg"), ev(KindNote, ""), ev(KindFocus, "f")},
			[]string{"show", "note", "focus"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := Segment(tt.events)
			if len(steps) != len(tt.want) {
				t.Fatalf("expected %d steps, got %d", len(tt.want), len(steps))
			}
			for i, s := range steps {
				if got := kinds(s); got != tt.want[i] {
					t.Errorf("step %d = %s, want %s", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestStep_Primary(t *testing.T) {
	boundary := Step{Events: []Event{ev(KindFocus, "f"), ev(KindClick, "ok")}}
	if p := boundary.Primary(); p.Kind != KindClick {
		t.Errorf("expected the boundary event, got %s", p.Kind)
	}
	trailing := Step{Events: []Event{ev(KindKeyPress, "f"), ev(KindFocus, "g")}}
	if p := trailing.Primary(); p.Kind != KindKeyPress {
		t.Errorf("a trailing focus should defer to the first event, got %s", p.Kind)
	}
	hide := Step{Events: []Event{ev(KindFocus, "f"), ev(KindHide, "dlg")}}
	if p := hide.Primary(); p.Kind != KindHide {
		t.Errorf("expected the last event, got %s", p.Kind)
	}
}

func TestStep_Inputs(t *testing.T) {
	key := func(k string) Event {
		e := ev(KindKeyPress, "field")
		e.Key = k
		return e
	}
	step := Step{Events: []Event{key("a"), key("b"), key("\b"), key("c"), key("\r")}}
	inputs := step.Inputs()
	if len(inputs) != 1 || inputs[0].Text != "ac" {
		t.Errorf("unexpected inputs %+v", inputs)
	}
}

func TestDocument_Markdown(t *testing.T) {
	title := "Layer Properties"
	text := "OK"
	doc := Document{
		Name:      "props",
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:  2300 * time.Millisecond,
		Events:    nil,
	}
	doc.Steps = []Step{
		{Events: []Event{{Kind: KindShow, Elapsed: 0.2, Widget: &WidgetSnapshot{Class: "QDialog", WindowTitle: &title}}}},
		{Events: []Event{{Kind: KindClick, Elapsed: 1.25, Button: "left", Widget: &WidgetSnapshot{Class: "QPushButton", Text: &text}}}},
		{Events: []Event{{Kind: KindNote, Elapsed: 2, Note: "done"}}},
	}
	md := doc.Markdown()
	for _, want := range []string{
		"**Purpose:** No description provided",
		"**Recorded:** 2026-01-02 03:04:05",
		"**Duration:** 2.3 seconds",
		"**Steps:** 3",
		"### 1. Dialog/Window Opened: Layer Properties",
		`{"command":"widget.wait_for","params":{"exact":true,"state":"visible","type":"title","value":"Layer Properties"}}`,
		"- **Time:** 1.25s",
		`- **Target:** text="OK"`,
		`{"command":"widget.click","params":{"exact":true,"type":"text","value":"OK"}}`,
		"### 3. Note: done",
		"## Notes",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}
