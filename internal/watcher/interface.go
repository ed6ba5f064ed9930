package watcher

import "context"

// Watcher monitors the input directory for newly dropped media files
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected file
type EventHandler func(ctx context.Context, filePath string) error
