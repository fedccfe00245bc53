package observability

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow_StreamsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uibridge.log")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	lines := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- Follow(ctx, path, false, func(line string) { lines <- line })
	}()

	var got []string
	for len(got) < 2 {
		select {
		case l := <-lines:
			got = append(got, l)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %v", got)
		}
	}
	assert.Equal(t, []string{"first", "second"}, got)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Follow did not return after cancel")
	}
}

func TestFollow_MissingFile(t *testing.T) {
	err := Follow(context.Background(), filepath.Join(t.TempDir(), "absent.log"), true, func(string) {})
	require.Error(t, err)
}
