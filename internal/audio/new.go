package audio

import (
	"time"

	"github.com/nguyentantai21042004/meetbot/internal/logger"
	"github.com/nguyentantai21042004/meetbot/pkg/executor"
)

type implGuard struct {
	limit   int64
	tempDir string
	prober  Prober
	trimmer Trimmer
	logger  logger.Logger
	now     func() time.Time
}

// NewGuard creates a Guard with a byte ceiling of limit.
// Compressed copies go under tempDir ("" means the OS temp dir).
func NewGuard(limit int64, tempDir string, prober Prober, trimmer Trimmer, log logger.Logger) Guard {
	return &implGuard{
		limit:   limit,
		tempDir: tempDir,
		prober:  prober,
		trimmer: trimmer,
		logger:  log,
		now:     time.Now,
	}
}

type ffprobe struct {
	binary   string
	timeout  time.Duration
	executor executor.Executor
}

// NewFFprobe creates a Prober that shells out to ffprobe.
func NewFFprobe(binary string, timeout time.Duration, exec executor.Executor) Prober {
	return &ffprobe{binary: binary, timeout: timeout, executor: exec}
}

type ffmpeg struct {
	binary   string
	timeout  time.Duration
	executor executor.Executor
}

// NewFFmpeg creates a Trimmer that shells out to ffmpeg.
func NewFFmpeg(binary string, timeout time.Duration, exec executor.Executor) Trimmer {
	return &ffmpeg{binary: binary, timeout: timeout, executor: exec}
}
