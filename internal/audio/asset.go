package audio

import (
	"fmt"
	"os"
)

// Asset is a recorded audio file plus what is known about it.
// DurationSeconds is 0 when it has not been probed or probing failed.
type Asset struct {
	Path            string  `json:"path" yaml:"path"`
	SizeBytes       int64   `json:"size_bytes" yaml:"size_bytes"`
	DurationSeconds float64 `json:"duration_seconds" yaml:"duration_seconds"`
}

// Stat builds an Asset from the file at path, reading its size from disk.
func Stat(path string) (Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Asset{}, err
	}
	if info.IsDir() {
		return Asset{}, fmt.Errorf("%s is a directory", path)
	}
	return Asset{Path: path, SizeBytes: info.Size()}, nil
}
