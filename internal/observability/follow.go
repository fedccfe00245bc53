package observability

import (
	"context"
	"fmt"
	"io"

	"github.com/hpcloud/tail"
)

// Follow streams lines appended to the log file at path until ctx is done.
// With fromEnd set, existing content is skipped. Rotated files are reopened.
func Follow(ctx context.Context, path string, fromEnd bool, fn func(line string)) error {
	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	}
	if fromEnd {
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}
	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to tail log file: %w", err)
	}
	defer func() {
		_ = t.Stop()
		t.Cleanup()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				return line.Err
			}
			fn(line.Text)
		}
	}
}
