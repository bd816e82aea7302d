package store

import (
	"fmt"
	"time"
)

type encodeFunc func(path string, b bundleView) error

type implStore struct {
	root   string
	ext    string
	encode encodeFunc
	now    func() time.Time
}

// New creates a Store writing the given format ("json", "yaml", "docx", "xlsx")
// under root. An empty root means the OS temp dir.
func New(root, format string) (Store, error) {
	s := &implStore{root: root, ext: format, now: time.Now}

	switch format {
	case "json":
		s.encode = writeJSON
	case "yaml":
		s.encode = writeYAML
	case "docx":
		s.encode = writeDocx
	case "xlsx":
		s.encode = writeXLSX
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	return s, nil
}
