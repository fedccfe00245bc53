package observability

import (
	"sync"
	"time"
)

// DefaultBufferSize is how many entries the ring keeps.
const DefaultBufferSize = 100

// DefaultReadLimit is the number of entries Messages returns for limit <= 0.
const DefaultReadLimit = 20

const timestampLayout = "2006-01-02 15:04:05"

type Entry struct {
	Timestamp string `yaml:"timestamp" json:"timestamp"`
	Level     string `yaml:"level"     json:"level"`
	Category  string `yaml:"category"  json:"category"`
	Message   string `yaml:"message"   json:"message"`
}

// LogBuffer retains the most recent log entries in memory.
type LogBuffer struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	now     func() time.Time
}

func NewLogBuffer(size int) *LogBuffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &LogBuffer{entries: make([]Entry, size), now: time.Now}
}

// Append stores one entry, evicting the oldest when the ring is full.
func (b *LogBuffer) Append(level, category, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[b.next] = Entry{
		Timestamp: b.now().Format(timestampLayout),
		Level:     level,
		Category:  category,
		Message:   message,
	}
	b.next = (b.next + 1) % len(b.entries)
	if b.next == 0 {
		b.full = true
	}
}

// Len reports the number of retained entries.
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.full {
		return len(b.entries)
	}
	return b.next
}

// Messages returns up to limit of the newest entries, oldest first. An empty
// category matches every entry.
func (b *LogBuffer) Messages(category string, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultReadLimit
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	var ordered []Entry
	if b.full {
		ordered = append(ordered, b.entries[b.next:]...)
	}
	ordered = append(ordered, b.entries[:b.next]...)

	out := make([]Entry, 0, limit)
	for i := len(ordered) - 1; i >= 0 && len(out) < limit; i-- {
		if category == "" || ordered[i].Category == category {
			out = append(out, ordered[i])
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
