package analysis

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meetbot/internal/audio"
	"github.com/nguyentantai21042004/meetbot/internal/domain/meeting"
	"github.com/nguyentantai21042004/meetbot/internal/logger"
)

// Analyze runs size guard, transcription, extraction and persistence for one recording.
func (a *implAnalyzer) Analyze(ctx context.Context, asset audio.Asset) (res Result) {
	startTime := a.now()

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error(ctx, "Analysis workflow failed: %v", r)
			res = Result{Bundle: a.fallback(ctx, asset.Path, fmt.Sprintf("Transcription error: %v", r))}
		}
	}()

	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Starting analysis: %s", asset.Path)
	a.logger.Info(ctx, "========================================")

	// Step 1: existence and size gate
	current, err := audio.Stat(asset.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Error(ctx, "Audio file not found: %s", asset.Path)
			return Result{Bundle: a.fallback(ctx, asset.Path, meeting.ReasonNotFound)}
		}
		a.logger.Error(ctx, "Cannot read audio file %s: %v", asset.Path, err)
		return Result{Bundle: a.fallback(ctx, asset.Path, "Transcription error: "+err.Error())}
	}
	if current.SizeBytes < a.opts.MinSizeBytes {
		a.logger.Warn(ctx, "Audio file too small (%d bytes)", current.SizeBytes)
		return Result{Bundle: a.fallback(ctx, asset.Path, meeting.ReasonTooSmall)}
	}
	current.DurationSeconds = asset.DurationSeconds

	// Step 2: keep the upload under the service ceiling
	sized := a.guard.EnsureWithinLimit(ctx, current)

	// Step 3: speech to text; a failed call counts as no transcript
	transcript, err := a.transcriber.Transcribe(ctx, sized.Path)
	if err != nil {
		a.logger.Error(ctx, "Transcription failed: %v", err)
		transcript = ""
	}

	// Step 4: nothing said, nothing to extract
	if strings.TrimSpace(transcript) == "" {
		a.logger.Info(ctx, "No transcription, no speech detected")
		return Result{Bundle: a.fallback(ctx, asset.Path, meeting.ReasonNoSpeech)}
	}
	a.logger.Info(ctx, "Transcription successful: %d characters", len(transcript))
	a.logger.Debug(ctx, "Transcript head: %s", head(transcript, 200))

	// Step 5: one extraction call per field
	bundle := a.extract(ctx, transcript)
	bundle.Provenance = meeting.Provenance{
		Source:          meeting.SourceTranscript,
		RunID:           logger.RunID(ctx),
		AudioPath:       asset.Path,
		TranscriptChars: len(transcript),
		FailedFields:    bundle.Provenance.FailedFields,
		CreatedAt:       a.now(),
	}

	// Step 6: persist; the in-memory bundle stands regardless
	path, err := a.store.Save(ctx, bundle)
	if err != nil {
		a.logger.Error(ctx, "Failed to save analysis record: %v", err)
		path = ""
	} else {
		a.logger.Info(ctx, "Analysis record saved: %s", path)
	}

	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Analysis completed in %s", a.now().Sub(startTime).Round(time.Millisecond))
	a.logger.Info(ctx, "========================================")

	return Result{Bundle: bundle, RecordPath: path}
}

func (a *implAnalyzer) fallback(ctx context.Context, path, reason string) meeting.Bundle {
	b := meeting.Fallback(reason)
	b.Provenance.RunID = logger.RunID(ctx)
	b.Provenance.AudioPath = path
	b.Provenance.CreatedAt = a.now()
	return b
}

func head(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
