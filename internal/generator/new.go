package generator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meetbot/internal/config"
	"github.com/nguyentantai21042004/meetbot/internal/logger"
)

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Generator backed by chat completions.
func NewOpenAI(apiKey, baseURL, model string, timeout time.Duration, log logger.Logger) Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &implOpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: log,
	}
}

type implGemini struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewGemini creates a Generator backed by the Gemini API.
// baseURL is only set in tests.
func NewGemini(ctx context.Context, apiKey, baseURL, model string, timeout time.Duration, log logger.Logger) (Generator, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implGemini{
		client: client,
		model:  model,
		logger: log,
	}, nil
}

// New picks the provider named in cfg.Generation.Provider.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Generator, error) {
	log = log.With("provider", cfg.Generation.Provider)

	switch cfg.Generation.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.ChatModel, cfg.Services.RequestTimeout, log), nil
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.Gemini.APIKey, "", cfg.Gemini.Model, cfg.Services.RequestTimeout, log)
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", cfg.Generation.Provider)
	}
}
