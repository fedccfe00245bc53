package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mj1618/uibridge/internal/command"
	"gopkg.in/yaml.v3"
)

func TestWriteYAML_Result(t *testing.T) {
	var buf bytes.Buffer
	r := command.OK(command.Fields{"widgets": []string{"a", "b"}, "count": 2})
	if err := WriteYAML(&buf, r); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["success"] != true || decoded["count"] != 2 {
		t.Errorf("unexpected decoded result: %v", decoded)
	}
}

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		pretty bool
		lines  int
	}{
		{"compact", false, 1},
		{"pretty", true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := command.Fail(command.Errorf(command.NotFound, "Widget not found: <x>"))
			if err := WriteJSON(&buf, r, tt.pretty); err != nil {
				t.Fatal(err)
			}
			if got := strings.Count(buf.String(), "\n"); got < tt.lines {
				t.Errorf("expected at least %d lines, got %d:\n%s", tt.lines, got, buf.String())
			}
			if !strings.Contains(buf.String(), "<x>") {
				t.Errorf("HTML should not be escaped: %s", buf.String())
			}
		})
	}
}

func TestFprint_RespectsFormat(t *testing.T) {
	defer func() { OutputFormat = FormatYAML }()

	var buf bytes.Buffer
	OutputFormat = FormatJSON
	if err := Fprint(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\"a\":1}\n" {
		t.Errorf("unexpected json: %q", buf.String())
	}

	OutputFormat = "xml"
	if err := Fprint(&buf, 1); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatYAML, "yaml": FormatYAML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("expected error")
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, "# Workflow: demo\n\n**Purpose:** test\n", "notty", 80); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Workflow: demo") {
		t.Errorf("rendered output lost the heading:\n%s", buf.String())
	}
	if TerminalWidth(nil) != defaultWidth {
		t.Error("nil file should use the default width")
	}
}
