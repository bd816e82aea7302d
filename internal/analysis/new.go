package analysis

import (
	"time"

	"github.com/nguyentantai21042004/meetbot/internal/audio"
	"github.com/nguyentantai21042004/meetbot/internal/generator"
	"github.com/nguyentantai21042004/meetbot/internal/logger"
	"github.com/nguyentantai21042004/meetbot/internal/store"
	"github.com/nguyentantai21042004/meetbot/internal/transcriber"
)

// Options tunes the pipeline.
type Options struct {
	// MinSizeBytes is the smallest recording worth sending (default 1000).
	MinSizeBytes int64
	// MaxConcurrent bounds parallel extraction calls; 1 runs them in order.
	MaxConcurrent int
}

type implAnalyzer struct {
	guard       audio.Guard
	transcriber transcriber.Transcriber
	generator   generator.Generator
	store       store.Store
	logger      logger.Logger
	tasks       []task
	opts        Options
	now         func() time.Time
}

// New creates an Analyzer.
func New(guard audio.Guard, tr transcriber.Transcriber, gen generator.Generator, st store.Store, log logger.Logger, opts Options) Analyzer {
	if opts.MinSizeBytes <= 0 {
		opts.MinSizeBytes = 1000
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}

	return &implAnalyzer{
		guard:       guard,
		transcriber: tr,
		generator:   gen,
		store:       st,
		logger:      log,
		tasks:       extractionTasks,
		opts:        opts,
		now:         time.Now,
	}
}
