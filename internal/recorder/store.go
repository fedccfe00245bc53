package recorder

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/mj1618/uibridge/internal/command"
)

// Store keeps procedure documents and raw event logs by workflow name.
type Store struct {
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Summary is one stored workflow's header metadata.
type Summary struct {
	Name     string `yaml:"name"      json:"name"`
	Purpose  string `yaml:"purpose"   json:"purpose"`
	Recorded string `yaml:"recorded"  json:"recorded"`
	FilePath string `yaml:"file_path" json:"file_path"`
}

// ValidateName rejects names that would escape the workflow directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return command.Missing("workflow_name")
	case strings.ContainsAny(name, `/\`) || name == "." || name == "..":
		return command.Errorf(command.InvalidParameter, "Invalid workflow name: %q", name)
	}
	return nil
}

func (s *Store) paths(name string) (md, raw string) {
	return filepath.Join(s.dir, name+".md"), filepath.Join(s.dir, name+".json")
}

// Save writes both artifacts for name.
func (s *Store) Save(name string, markdown string, rawJSON []byte) (mdPath, jsonPath string, err error) {
	if err := ValidateName(name); err != nil {
		return "", "", err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", command.Wrap(err, "create workflow directory %s", s.dir)
	}
	mdPath, jsonPath = s.paths(name)
	if err := afero.WriteFile(s.fs, mdPath, []byte(markdown), 0o644); err != nil {
		return "", "", command.Wrap(err, "write %s", mdPath)
	}
	if err := afero.WriteFile(s.fs, jsonPath, rawJSON, 0o644); err != nil {
		return "", "", command.Wrap(err, "write %s", jsonPath)
	}
	return mdPath, jsonPath, nil
}

// List returns every stored procedure document except README.md, sorted by
// name.
func (s *Store) List() ([]Summary, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if os.IsNotExist(err) {
		return []Summary{}, nil
	}
	if err != nil {
		return nil, command.Wrap(err, "read workflow directory %s", s.dir)
	}
	out := []Summary{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" || e.Name() == "README.md" {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			return nil, command.Wrap(err, "read %s", path)
		}
		sum := parseHeader(data)
		sum.Name = strings.TrimSuffix(e.Name(), ".md")
		sum.FilePath = path
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func parseHeader(data []byte) Summary {
	var sum Summary
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "**Purpose:**"):
			sum.Purpose = strings.TrimSpace(strings.TrimPrefix(line, "**Purpose:**"))
		case strings.HasPrefix(line, "**Recorded:**"):
			sum.Recorded = strings.TrimSpace(strings.TrimPrefix(line, "**Recorded:**"))
		}
	}
	return sum
}

// Get returns the procedure document for name.
func (s *Store) Get(name string) (content, path string, err error) {
	if err := ValidateName(name); err != nil {
		return "", "", err
	}
	path, _ = s.paths(name)
	data, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		return "", "", command.Errorf(command.NotFound, "Workflow '%s' not found", name)
	}
	if err != nil {
		return "", "", command.Wrap(err, "read %s", path)
	}
	return string(data), path, nil
}
