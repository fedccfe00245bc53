package model

import (
	"encoding/json"
	"testing"
)

func TestSnapshot_OmitsAbsentProperties(t *testing.T) {
	n := tree("ok", "QPushButton")
	n.text, n.hasText = "OK", true

	snap := Snapshot(n)
	if snap.Text == nil || *snap.Text != "OK" {
		t.Fatalf("expected text OK, got %v", snap.Text)
	}
	if snap.Title != nil {
		t.Errorf("expected no title, got %q", *snap.Title)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"checked", "currentText", "placeholderText", "toolTip", "title"} {
		if _, ok := m[key]; ok {
			t.Errorf("unexpected key %q for a push button", key)
		}
	}
	for _, key := range []string{"class", "objectName", "visible", "enabled", "geometry", "text"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected key %q", key)
		}
	}
}

func TestSnapshot_EmptyTextIsKept(t *testing.T) {
	n := tree("field", "QLineEdit")
	n.hasText = true
	snap := Snapshot(n)
	if snap.Text == nil || *snap.Text != "" {
		t.Errorf("expected empty but present text, got %v", snap.Text)
	}
}

func TestHasErrorKeyword(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Error", true},
		{"Processing Failed", true},
		{"Python Exception", true},
		{"Layer Properties", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasErrorKeyword(tt.title); got != tt.want {
			t.Errorf("HasErrorKeyword(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}
