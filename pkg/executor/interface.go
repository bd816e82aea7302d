package executor

import "context"

// Executor runs external tools such as ffmpeg and ffprobe.
type Executor interface {
	// Execute runs name with args and returns its stdout.
	// The command is killed when ctx is done.
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
}
