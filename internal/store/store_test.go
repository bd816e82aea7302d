package store

import (
	"archive/zip"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/meetbot/internal/domain/meeting"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func sampleBundle() meeting.Bundle {
	return meeting.Bundle{
		AbstractSummary: "The team reviewed the Q3 roadmap — café launch moved to <October>.",
		KeyPoints:       "1. Roadmap review\n2. **Launch** date moved",
		ActionItems:     "- Ana: update the plan",
		Sentiment:       "Positive",
		Provenance: meeting.Provenance{
			Source:    meeting.SourceTranscript,
			RunID:     "run-1",
			CreatedAt: fixedNow,
		},
	}
}

func newTestStore(t *testing.T, root, format string) *implStore {
	t.Helper()
	s, err := New(root, format)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	impl := s.(*implStore)
	impl.now = func() time.Time { return fixedNow }
	return impl
}

func TestSaveJSON(t *testing.T) {
	root := t.TempDir()
	s := newTestStore(t, root, "json")

	path, err := s.Save(context.Background(), sampleBundle())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if filepath.Base(path) != "meeting_data_20260301093000.json" {
		t.Errorf("file name = %q", filepath.Base(path))
	}
	dir := filepath.Dir(path)
	if filepath.Dir(dir) != root || !strings.HasPrefix(filepath.Base(dir), "meeting-") {
		t.Errorf("record not in a fresh dir under root: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "café") || !strings.Contains(string(data), "<October>") {
		t.Errorf("non-ASCII or HTML characters were escaped: %s", data)
	}

	var got meeting.Bundle
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("record is not valid JSON: %v", err)
	}
	if got.AbstractSummary != sampleBundle().AbstractSummary || got.Provenance.RunID != "run-1" {
		t.Errorf("decoded bundle = %+v", got)
	}
}

func TestSaveYAML(t *testing.T) {
	s := newTestStore(t, t.TempDir(), "yaml")

	path, err := s.Save(context.Background(), sampleBundle())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("record is not valid YAML: %v", err)
	}
	if got["key_points"] != sampleBundle().KeyPoints {
		t.Errorf("key_points = %v", got["key_points"])
	}
}

func TestSaveDocx(t *testing.T) {
	s := newTestStore(t, t.TempDir(), "docx")

	path, err := s.Save(context.Background(), sampleBundle())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("docx is not a zip archive: %v", err)
	}
	defer r.Close()

	var body string
	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, readErr := io.ReadAll(rc)
		rc.Close()
		if readErr != nil {
			t.Fatal(readErr)
		}
		body = string(b)
	}
	for _, want := range []string{"Meeting Minutes", "Key Points", "Launch", "Ana: update the plan"} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestSaveXLSX(t *testing.T) {
	s := newTestStore(t, t.TempDir(), "xlsx")

	path, err := s.Save(context.Background(), sampleBundle())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell string
		want string
	}{
		{"A1", "Field"},
		{"A2", "Summary"},
		{"B5", "Positive"},
		{"B6", meeting.SourceTranscript},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(sheetName, tt.cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestSaveUniqueDirs(t *testing.T) {
	s := newTestStore(t, t.TempDir(), "json")

	first, err := s.Save(context.Background(), sampleBundle())
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Save(context.Background(), sampleBundle())
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("two saves with the same timestamp share a path: %s", first)
	}
}

func TestSaveFailure(t *testing.T) {
	// root is a regular file, so no directory can be created under it
	root := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(root, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestStore(t, root, "json")
	if _, err := s.Save(context.Background(), sampleBundle()); err == nil {
		t.Error("Save() should fail when the root is not a directory")
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, err := New("", "pdf"); err == nil {
		t.Error("New() should reject unknown formats")
	}
}
