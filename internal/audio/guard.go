package audio

import (
	"context"
	"os"
	"path/filepath"
)

// EnsureWithinLimit compresses asset by truncation when it exceeds the ceiling.
//
// The target duration is a single linear estimate, duration*limit/size,
// which assumes a constant bitrate. The output is not re-measured.
func (g *implGuard) EnsureWithinLimit(ctx context.Context, asset Asset) Asset {
	info, err := os.Stat(asset.Path)
	if err != nil {
		g.logger.Warn(ctx, "Cannot stat %s, leaving it as is: %v", asset.Path, err)
		return asset
	}
	size := info.Size()

	if size <= g.limit {
		g.logger.Debug(ctx, "Audio size %.2f MB within limit, no compression needed", mb(size))
		return asset
	}

	g.logger.Warn(ctx, "Audio size %.2f MB exceeds limit %.2f MB, compressing", mb(size), mb(g.limit))

	duration, err := g.prober.Duration(ctx, asset.Path)
	if err != nil {
		g.logger.Warn(ctx, "Could not get audio duration, using original: %v", err)
		return asset
	}
	if duration <= 0 {
		g.logger.Warn(ctx, "Audio duration %.2f is not positive, using original", duration)
		return asset
	}

	target := TargetDuration(duration, size, g.limit)

	dir, err := os.MkdirTemp(g.tempDir, "compressed-*")
	if err != nil {
		g.logger.Warn(ctx, "Create temp dir for compression: %v", err)
		return asset
	}

	ext := filepath.Ext(asset.Path)
	if ext == "" {
		ext = ".wav"
	}
	dst := filepath.Join(dir, "compressed_audio_"+g.now().Format("20060102150405")+ext)

	if err := g.trimmer.Trim(ctx, asset.Path, dst, 0, target); err != nil {
		g.logger.Warn(ctx, "Compression failed, using original: %v", err)
		return asset
	}

	out, err := Stat(dst)
	if err != nil {
		g.logger.Warn(ctx, "Compressed file missing, using original: %v", err)
		return asset
	}
	out.DurationSeconds = target

	g.logger.Info(ctx, "Compressed %.2fs -> %.2fs (%.2f MB): %s", duration, target, mb(out.SizeBytes), dst)
	return out
}

// TargetDuration is the duration that would fit limit bytes at the
// recording's average bitrate.
func TargetDuration(duration float64, size, limit int64) float64 {
	if size <= 0 {
		return duration
	}
	return duration * float64(limit) / float64(size)
}

func mb(n int64) float64 {
	return float64(n) / (1024 * 1024)
}
