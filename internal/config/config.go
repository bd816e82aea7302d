package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned by Validate when the selected provider has no key.
var ErrMissingAPIKey = errors.New("api key is required")

const (
	DefaultMaxAudioBytes = 20 * 1024 * 1024
	DefaultMinAudioBytes = 1000

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Audio         AudioConfig         `yaml:"audio"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Generation    GenerationConfig    `yaml:"generation"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Services      ServicesConfig      `yaml:"services"`
	Output        OutputConfig        `yaml:"output"`
	Watch         WatchConfig         `yaml:"watch"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type AudioConfig struct {
	MaxSizeBytes     int64         `yaml:"max_size_bytes"`
	MinSizeBytes     int64         `yaml:"min_size_bytes"`
	FFmpegPath       string        `yaml:"ffmpeg_path"`
	FFprobePath      string        `yaml:"ffprobe_path"`
	ProbeTimeout     time.Duration `yaml:"probe_timeout"`
	TranscodeTimeout time.Duration `yaml:"transcode_timeout"`
	TempDir          string        `yaml:"temp_dir"`
}

type TranscriptionConfig struct {
	Language string `yaml:"language"`
}

type GenerationConfig struct {
	Provider      string `yaml:"provider"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type OpenAIConfig struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	WhisperModel string `yaml:"whisper_model"`
	ChatModel    string `yaml:"chat_model"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// ServicesConfig bounds every remote call; zero means the default, never "no timeout".
type ServicesConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

type WatchConfig struct {
	Input         string        `yaml:"input"`
	MaxConcurrent int           `yaml:"max_concurrent"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a configuration with every default applied and no API keys.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation. An empty path yields the defaults
// with environment overrides applied.
func Read(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GPT_MODEL"); v != "" {
		c.OpenAI.ChatModel = v
	}
	if v := os.Getenv("WHISPER_MODEL"); v != "" {
		c.OpenAI.WhisperModel = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MAX_AUDIO_SIZE_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_AUDIO_SIZE_BYTES: %w", err)
		}
		c.Audio.MaxSizeBytes = n
	}
	return nil
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.Audio.MaxSizeBytes < 0 {
		return fmt.Errorf("audio.max_size_bytes must be positive")
	}
	if c.Audio.MinSizeBytes < 0 {
		return fmt.Errorf("audio.min_size_bytes must not be negative")
	}

	c.applyDefaults()

	switch c.Generation.Provider {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key: %w", ErrMissingAPIKey)
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("gemini.api_key: %w", ErrMissingAPIKey)
		}
		// transcription always goes through whisper
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key: %w", ErrMissingAPIKey)
		}
	default:
		return fmt.Errorf("generation.provider %q is not supported", c.Generation.Provider)
	}

	switch c.Output.Format {
	case "json", "yaml", "docx", "xlsx":
	default:
		return fmt.Errorf("output.format %q is not supported", c.Output.Format)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Audio.MaxSizeBytes == 0 {
		c.Audio.MaxSizeBytes = DefaultMaxAudioBytes
	}
	if c.Audio.MinSizeBytes == 0 {
		c.Audio.MinSizeBytes = DefaultMinAudioBytes
	}
	if c.Audio.FFmpegPath == "" {
		c.Audio.FFmpegPath = "ffmpeg"
	}
	if c.Audio.FFprobePath == "" {
		c.Audio.FFprobePath = "ffprobe"
	}
	if c.Audio.ProbeTimeout == 0 {
		c.Audio.ProbeTimeout = 10 * time.Second
	}
	if c.Audio.TranscodeTimeout == 0 {
		c.Audio.TranscodeTimeout = 60 * time.Second
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "en"
	}
	c.Generation.Provider = strings.ToLower(c.Generation.Provider)
	if c.Generation.Provider == "" {
		c.Generation.Provider = ProviderOpenAI
	}
	if c.Generation.MaxConcurrent <= 0 {
		c.Generation.MaxConcurrent = 1
	}
	if c.OpenAI.WhisperModel == "" {
		c.OpenAI.WhisperModel = "whisper-1"
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-4"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Services.RequestTimeout == 0 {
		c.Services.RequestTimeout = 2 * time.Minute
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
	if c.Watch.Input == "" {
		c.Watch.Input = "data/recordings"
	}
	if c.Watch.MaxConcurrent <= 0 {
		c.Watch.MaxConcurrent = 1
	}
	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = 500 * time.Millisecond
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
