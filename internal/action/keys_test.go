package action

import (
	"testing"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/platform"
)

func TestParseKeys_Combos(t *testing.T) {
	tests := []struct {
		spec string
		want platform.KeyStroke
	}{
		{"Ctrl+S", platform.KeyStroke{Key: "S", Modifiers: platform.ModCtrl}},
		{"ctrl+shift+z", platform.KeyStroke{Key: "Z", Modifiers: platform.ModCtrl | platform.ModShift}},
		{"Alt+F4", platform.KeyStroke{Key: "F4", Modifiers: platform.ModAlt}},
		{"Cmd + Return", platform.KeyStroke{Key: "Return", Modifiers: platform.ModMeta}},
		{"Shift+a", platform.KeyStroke{Key: "A", Text: "A", Modifiers: platform.ModShift}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseKeys(tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("ParseKeys(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseKeys_NamedKey(t *testing.T) {
	got, err := ParseKeys("Enter")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Key != "Return" {
		t.Errorf("expected a single Return stroke, got %+v", got)
	}
}

func TestParseKeys_BackspaceCarriesText(t *testing.T) {
	got, err := ParseKeys("Backspace")
	if err != nil {
		t.Fatal(err)
	}
	want := platform.KeyStroke{Key: "Backspace", Text: "\b"}
	if len(got) != 1 || got[0] != want {
		t.Errorf("ParseKeys(Backspace) = %+v, want %+v", got, want)
	}
}

func TestParseKeys_LiteralText(t *testing.T) {
	got, err := ParseKeys("a+b é")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 strokes, got %d", len(got))
	}
	if got[1].Text != "+" || got[3].Text != " " || got[4].Text != "é" {
		t.Errorf("unexpected strokes %+v", got)
	}
}

func TestParseKeys_Errors(t *testing.T) {
	tests := []struct {
		spec string
		code command.Code
	}{
		{"", command.MissingParameter},
		{"Ctrl+Shift", command.InvalidParameter},
		{"Ctrl+", command.InvalidParameter},
		{"Ctrl+Banana", command.InvalidParameter},
		{"Ctrl+A+B", command.InvalidParameter},
	}
	for _, tt := range tests {
		_, err := ParseKeys(tt.spec)
		if command.CodeOf(err) != tt.code {
			t.Errorf("ParseKeys(%q) error = %v, want code %s", tt.spec, err, tt.code)
		}
	}
}
