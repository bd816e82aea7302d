package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/meetbot/internal/domain/meeting"
)

// Formatter prints results in the marker format the meeting bot's callers parse.
type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

var markers = map[string]string{
	meeting.FieldAbstractSummary: "SUMMARY",
	meeting.FieldKeyPoints:       "KEY_POINTS",
	meeting.FieldActionItems:     "ACTION_ITEMS",
	meeting.FieldSentiment:       "SENTIMENT",
}

func (f *Formatter) AudioPath(path string, sizeBytes int64) {
	fmt.Fprintf(f.w, "[AUDIO_PATH] %s\n", path)
	fmt.Fprintf(f.w, "[AUDIO_FILE_SIZE] %.2f MB\n", float64(sizeBytes)/(1024*1024))
}

func (f *Formatter) Bundle(b meeting.Bundle, recordPath string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(f.w, rule)
	fmt.Fprintln(f.w, "[TRANSCRIPTION_COMPLETE]")
	fmt.Fprintln(f.w, rule)
	for _, s := range b.Sections() {
		fmt.Fprintf(f.w, "[%s] %s\n", markers[s.Field], s.Text)
	}
	if b.IsFallback() {
		fmt.Fprintf(f.w, "[FALLBACK] %s\n", b.Provenance.Reason)
	}
	if recordPath != "" {
		fmt.Fprintf(f.w, "[RECORD_PATH] %s\n", recordPath)
	}
	fmt.Fprintln(f.w, rule)
}

func (f *Formatter) Complete() {
	fmt.Fprintln(f.w, "[PROCESS_COMPLETE] Bot finished successfully")
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "[ERROR] %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  [OK]   %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  [FAIL] %s: %s\n", name, detail)
	}
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "[INFO] %s\n", msg)
}
