package transcriber

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Transcribe uploads the file once and returns the plain-text transcript.
func (w *implWhisper) Transcribe(ctx context.Context, path string) (string, error) {
	start := time.Now()
	w.logger.Info(ctx, "Sending %s to %s (language %s)", path, w.model, w.language)

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: path,
		Language: w.language,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}

	w.logger.Info(ctx, "Transcription completed: %d characters in %s", len(resp.Text), time.Since(start).Round(time.Millisecond))
	return resp.Text, nil
}
