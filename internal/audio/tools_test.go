package audio

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type fakeExecutor struct {
	out         []byte
	err         error
	name        string
	args        []string
	hadDeadline bool
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.name, f.args = name, args
	_, f.hadDeadline = ctx.Deadline()
	return f.out, f.err
}

func TestFFprobeDuration(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		err     error
		want    float64
		wantErr bool
	}{
		{"plain number", "61.440000\n", nil, 61.44, false},
		{"garbage", "N/A\n", nil, 0, true},
		{"empty", "", nil, 0, true},
		{"command fails", "", errors.New("exit status 1"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{out: []byte(tt.out), err: tt.err}
			p := NewFFprobe("ffprobe", 10*time.Second, exec)

			got, err := p.Duration(context.Background(), "meeting.wav")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Duration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
			if !exec.hadDeadline {
				t.Error("ffprobe ran without a timeout")
			}
		})
	}
}

func TestFFprobeArgs(t *testing.T) {
	exec := &fakeExecutor{out: []byte("1.0")}
	if _, err := NewFFprobe("/usr/bin/ffprobe", time.Second, exec).Duration(context.Background(), "a.wav"); err != nil {
		t.Fatal(err)
	}

	want := []string{"-i", "a.wav", "-show_entries", "format=duration", "-v", "quiet", "-of", "csv=p=0"}
	if exec.name != "/usr/bin/ffprobe" || !reflect.DeepEqual(exec.args, want) {
		t.Errorf("ran %s %v, want /usr/bin/ffprobe %v", exec.name, exec.args, want)
	}
}

func TestFFmpegTrim(t *testing.T) {
	exec := &fakeExecutor{}
	tr := NewFFmpeg("ffmpeg", 60*time.Second, exec)
	dst := filepath.Join("tmp", "out.wav")

	if err := tr.Trim(context.Background(), "in.wav", dst, 0, 12.3456); err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	want := []string{"-i", "in.wav", "-ss", "0", "-t", "12.346", "-y", dst}
	if !reflect.DeepEqual(exec.args, want) {
		t.Errorf("args = %v, want %v", exec.args, want)
	}
	if !exec.hadDeadline {
		t.Error("ffmpeg ran without a timeout")
	}
}

func TestFFmpegTrimError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	if err := NewFFmpeg("ffmpeg", time.Second, exec).Trim(context.Background(), "in.wav", "out.wav", 0, 1); err == nil {
		t.Error("Trim() should fail when ffmpeg fails")
	}
}
