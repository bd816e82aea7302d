package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meetbot/internal/domain/meeting"
)

// bundleView is what every codec receives: the bundle plus its section list.
type bundleView struct {
	meeting.Bundle
	sections []meeting.Section
}

// Save writes the bundle to <root>/meeting-*/meeting_data_<timestamp>.<ext>.
func (s *implStore) Save(ctx context.Context, b meeting.Bundle) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.root != "" {
		if err := os.MkdirAll(s.root, 0755); err != nil {
			return "", fmt.Errorf("create output root: %w", err)
		}
	}

	dir, err := os.MkdirTemp(s.root, "meeting-*")
	if err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("meeting_data_%s.%s", s.now().Format("20060102150405"), s.ext)
	path := filepath.Join(dir, name)

	if err := s.encode(path, bundleView{Bundle: b, sections: b.Sections()}); err != nil {
		return "", fmt.Errorf("write %s record: %w", s.ext, err)
	}

	return path, nil
}
