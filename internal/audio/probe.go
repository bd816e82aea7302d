package audio

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Duration asks ffprobe for the container duration.
func (p *ffprobe) Duration(ctx context.Context, path string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// -show_entries format=duration -of csv=p=0 prints a bare number, e.g. "61.440000"
	args := []string{
		"-i", path,
		"-show_entries", "format=duration",
		"-v", "quiet",
		"-of", "csv=p=0",
	}

	out, err := p.executor.Execute(ctx, p.binary, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	raw := strings.TrimSpace(string(out))
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", raw, err)
	}
	return d, nil
}
