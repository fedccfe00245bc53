package recorder

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/mj1618/uibridge/internal/command"
)

func TestStore_SaveListGet(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, "/srv/workflows")

	if list, err := s.List(); err != nil || len(list) != 0 {
		t.Fatalf("missing directory should list empty, got %v, %v", list, err)
	}

	md := "# Workflow: b\n\n**Purpose:** Second\n**Recorded:** 2026-01-02 03:04:05\n"
	if _, _, err := s.Save("b", md, []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Save("a", "# Workflow: a\n\n**Purpose:** First\n", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/srv/workflows/README.md", []byte("**Purpose:** docs"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 workflows without README, got %+v", list)
	}
	if list[0].Name != "a" || list[1].Purpose != "Second" || list[1].Recorded != "2026-01-02 03:04:05" {
		t.Errorf("unexpected summaries %+v", list)
	}
	if list[1].FilePath != "/srv/workflows/b.md" {
		t.Errorf("unexpected path %q", list[1].FilePath)
	}

	content, path, err := s.Get("b")
	if err != nil || content != md || path != "/srv/workflows/b.md" {
		t.Errorf("Get = %q, %q, %v", content, path, err)
	}
	if _, _, err := s.Get("zzz"); command.CodeOf(err) != command.NotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"add_layer", "Export map 2"} {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q): %v", name, err)
		}
	}
	for _, name := range []string{"a/b", `a\b`, "..", "."} {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) should fail", name)
		}
	}
}
