// Package checkpoint records lightweight "what was open" descriptors before
// risky operations, for manual recovery.
package checkpoint

import (
	"sync"
	"time"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/platform"
)

// UnsavedProject is the locator recorded when the document has no file.
const UnsavedProject = "[Unsaved Project]"

const idLayout = "20060102_150405"

// Checkpoint is immutable once saved.
type Checkpoint struct {
	ID          string    `yaml:"checkpoint_id" json:"checkpoint_id"`
	Timestamp   string    `yaml:"timestamp"     json:"timestamp"`
	CreatedAt   time.Time `yaml:"created_at"    json:"created_at"`
	Operation   string    `yaml:"operation"     json:"operation"`
	ProjectPath string    `yaml:"project_path"  json:"project_path"`
	Dirty       bool      `yaml:"is_dirty"      json:"is_dirty"`
}

// Registry holds checkpoints for the life of the process. Ids have
// one-second resolution: a second save within the same second replaces the
// first, keeping its position in the listing.
type Registry struct {
	doc platform.Document
	now func() time.Time

	mu    sync.Mutex
	order []string
	byID  map[string]Checkpoint
}

func New(doc platform.Document, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{doc: doc, now: now, byID: make(map[string]Checkpoint)}
}

// Save records the current document state under a timestamp id.
func (r *Registry) Save(operation string) Checkpoint {
	created := r.now()
	stamp := created.Format(idLayout)
	cp := Checkpoint{
		ID:          "checkpoint_" + stamp,
		Timestamp:   stamp,
		CreatedAt:   created,
		Operation:   operation,
		ProjectPath: UnsavedProject,
	}
	if r.doc != nil {
		if name := r.doc.FileName(); name != "" {
			cp.ProjectPath = name
		}
		cp.Dirty = r.doc.IsDirty()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[cp.ID]; !exists {
		r.order = append(r.order, cp.ID)
	}
	r.byID[cp.ID] = cp
	return cp
}

// List returns checkpoints in save order.
func (r *Registry) List() []Checkpoint {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Checkpoint, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Restore returns the checkpoint for id. It does not reload anything;
// callers drive recovery from the returned locator.
func (r *Registry) Restore(id string) (Checkpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp, ok := r.byID[id]
	if !ok {
		return Checkpoint{}, command.Errorf(command.NotFound, "Checkpoint not found: %s", id)
	}
	return cp, nil
}
