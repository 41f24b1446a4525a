package service

import "context"

// ArchiveStore keeps a copy of produced export files
type ArchiveStore interface {
	// Save writes data under key. Implementations may be no-ops.
	Save(ctx context.Context, key, contentType string, data []byte) error

	Close() error
}
