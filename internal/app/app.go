package app

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meetbot/internal/analysis"
	"github.com/nguyentantai21042004/meetbot/internal/audio"
	"github.com/nguyentantai21042004/meetbot/internal/config"
	"github.com/nguyentantai21042004/meetbot/internal/generator"
	"github.com/nguyentantai21042004/meetbot/internal/logger"
	"github.com/nguyentantai21042004/meetbot/internal/store"
	"github.com/nguyentantai21042004/meetbot/internal/transcriber"
	"github.com/nguyentantai21042004/meetbot/pkg/executor"
)

type App struct {
	Guard    audio.Guard
	Analyzer analysis.Analyzer
	Logger   logger.Logger
}

func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	exec := executor.New()

	prober := audio.NewFFprobe(cfg.Audio.FFprobePath, cfg.Audio.ProbeTimeout, exec)
	trimmer := audio.NewFFmpeg(cfg.Audio.FFmpegPath, cfg.Audio.TranscodeTimeout, exec)
	guard := audio.NewGuard(cfg.Audio.MaxSizeBytes, cfg.Audio.TempDir, prober, trimmer, log.With("component", "audio"))

	tr := transcriber.NewWhisper(transcriber.Options{
		APIKey:   cfg.OpenAI.APIKey,
		BaseURL:  cfg.OpenAI.BaseURL,
		Model:    cfg.OpenAI.WhisperModel,
		Language: cfg.Transcription.Language,
		Timeout:  cfg.Services.RequestTimeout,
	}, log.With("component", "transcriber"))

	gen, err := generator.New(ctx, cfg, log.With("component", "generator"))
	if err != nil {
		return nil, err
	}

	st, err := store.New(cfg.Output.Dir, cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	analyzer := analysis.New(guard, tr, gen, st, log.With("component", "analysis"), analysis.Options{
		MinSizeBytes:  cfg.Audio.MinSizeBytes,
		MaxConcurrent: cfg.Generation.MaxConcurrent,
	})

	return &App{
		Guard:    guard,
		Analyzer: analyzer,
		Logger:   log,
	}, nil
}
