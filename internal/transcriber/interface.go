package transcriber

import "context"

// Transcriber turns a recording into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}
