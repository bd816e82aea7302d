package transcriber

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meetbot/internal/logger"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "output.wav")
	if err := os.WriteFile(path, []byte("RIFF....WAVEfmt "), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWhisperTranscribe(t *testing.T) {
	var gotPath, gotLanguage, gotFormat, gotModel, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotLanguage = r.FormValue("language")
		gotFormat = r.FormValue("response_format")
		gotModel = r.FormValue("model")
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "Let's ship the release on Friday.\n")
	}))
	defer srv.Close()

	tr := NewWhisper(Options{
		APIKey:   "sk-test",
		BaseURL:  srv.URL + "/v1",
		Language: "en",
		Timeout:  5 * time.Second,
	}, logger.Nop())

	text, err := tr.Transcribe(context.Background(), writeFixture(t))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if strings.TrimSpace(text) != "Let's ship the release on Friday." {
		t.Errorf("Transcribe() = %q", text)
	}
	if gotPath != "/v1/audio/transcriptions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotLanguage != "en" || gotFormat != "text" || gotModel != "whisper-1" {
		t.Errorf("form language=%q format=%q model=%q", gotLanguage, gotFormat, gotModel)
	}
}

func TestWhisperTranscribeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		io.WriteString(w, `{"error":{"message":"Maximum content size limit exceeded","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	tr := NewWhisper(Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second}, logger.Nop())

	if _, err := tr.Transcribe(context.Background(), writeFixture(t)); err == nil {
		t.Error("Transcribe() should fail on a 413 response")
	}
}

func TestWhisperTranscribeMissingFile(t *testing.T) {
	tr := NewWhisper(Options{APIKey: "sk-test", BaseURL: "http://127.0.0.1:0/v1", Timeout: time.Second}, logger.Nop())

	if _, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "none.wav")); err == nil {
		t.Error("Transcribe() should fail for a missing file")
	}
}
