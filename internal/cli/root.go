package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetbot/internal/app"
	"github.com/nguyentantai21042004/meetbot/internal/config"
	"github.com/nguyentantai21042004/meetbot/internal/logger"
)

const defaultConfigPath = "config.yaml"

type Dependencies struct {
	ConfigPath string
	Stdout     io.Writer

	// NewApp is swapped in tests.
	NewApp func(ctx context.Context, cfg *config.Config, log logger.Logger) (*app.App, error)
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.NewApp == nil {
		deps.NewApp = app.New
	}

	rootCmd := &cobra.Command{
		Use:           "meetbot",
		Short:         "Transcribe and summarize recorded meetings",
		Long:          "meetbot takes a meeting recording, keeps it under the transcription upload limit, transcribes it with Whisper and extracts a summary, key points, action items and sentiment.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", defaultConfigPath, "path to config.yaml")

	rootCmd.AddCommand(NewAnalyzeCmd(deps))
	rootCmd.AddCommand(NewCompressCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}

// readConfig loads the config without validating it. The default path may
// be absent; an explicitly requested one may not.
func (d *Dependencies) readConfig(cmd *cobra.Command) (*config.Config, error) {
	path := d.ConfigPath
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := config.Read(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setup loads and validates config, then builds the application.
func (d *Dependencies) setup(cmd *cobra.Command) (context.Context, *app.App, *config.Config, error) {
	cfg, err := d.readConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logger.WithRunID(cmd.Context(), uuid.NewString())

	application, err := d.NewApp(ctx, cfg, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initializing app: %w", err)
	}
	return ctx, application, cfg, nil
}
