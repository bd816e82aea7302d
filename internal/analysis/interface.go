package analysis

import (
	"context"

	"github.com/nguyentantai21042004/meetbot/internal/audio"
	"github.com/nguyentantai21042004/meetbot/internal/domain/meeting"
)

// Analyzer turns a recording into a meeting.Bundle.
type Analyzer interface {
	// Analyze never fails: every problem ends in a fallback or placeholder field.
	Analyze(ctx context.Context, asset audio.Asset) Result
}

// Result is the bundle plus where it was persisted.
// RecordPath is empty when nothing was written.
type Result struct {
	Bundle     meeting.Bundle
	RecordPath string
}
