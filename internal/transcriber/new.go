package transcriber

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meetbot/internal/logger"
)

// Options configures the Whisper client.
type Options struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
	Timeout  time.Duration
}

type implWhisper struct {
	client   *openai.Client
	model    string
	language string
	logger   logger.Logger
}

// NewWhisper creates a Transcriber backed by the OpenAI transcription endpoint.
func NewWhisper(opts Options, log logger.Logger) Transcriber {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}

	model := opts.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &implWhisper{
		client:   openai.NewClientWithConfig(cfg),
		model:    model,
		language: opts.Language,
		logger:   log,
	}
}
