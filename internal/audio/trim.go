package audio

import (
	"context"
	"fmt"
	"strconv"
)

// Trim cuts src down to [start, start+duration) seconds.
func (f *ffmpeg) Trim(ctx context.Context, src, dst string, start, duration float64) error {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	// -ss: seek offset, -t: output duration, -y: dst is always fresh but never prompt
	args := []string{
		"-i", src,
		"-ss", strconv.FormatFloat(start, 'f', -1, 64),
		"-t", strconv.FormatFloat(duration, 'f', 3, 64),
		"-y",
		dst,
	}

	if _, err := f.executor.Execute(ctx, f.binary, args...); err != nil {
		return fmt.Errorf("ffmpeg trim: %w", err)
	}
	return nil
}
