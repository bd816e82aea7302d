package watcher

import "context"

// Watcher monitors a recordings directory.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once per new recording.
type EventHandler func(ctx context.Context, filePath string) error
