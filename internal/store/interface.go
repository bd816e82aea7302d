package store

import (
	"context"

	"github.com/nguyentantai21042004/meetbot/internal/domain/meeting"
)

// Store persists one analysis bundle per call.
type Store interface {
	// Save writes b to a new file in a fresh directory and returns its path.
	Save(ctx context.Context, b meeting.Bundle) (string, error)
}
