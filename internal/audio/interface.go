package audio

import "context"

// Guard keeps recordings under the upload ceiling of the transcription service.
type Guard interface {
	// EnsureWithinLimit returns asset itself when it fits, otherwise a
	// truncated copy. Every failure degrades to returning asset unchanged.
	EnsureWithinLimit(ctx context.Context, asset Asset) Asset
}

// Prober reports the duration of an audio file in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Trimmer writes the [start, start+duration) seconds of src into dst.
type Trimmer interface {
	Trim(ctx context.Context, src, dst string, start, duration float64) error
}
