package cli

import (
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetbot/internal/config"
	"github.com/nguyentantai21042004/meetbot/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.readConfig(cmd)
			if err != nil {
				return err
			}

			f := output.NewFormatter(deps.Stdout)
			ok := true

			for _, bin := range []string{cfg.Audio.FFmpegPath, cfg.Audio.FFprobePath} {
				if path, err := exec.LookPath(bin); err != nil {
					f.SetupCheck(bin, false, "not found, compression of oversized recordings is disabled")
					ok = false
				} else {
					f.SetupCheck(bin, true, path)
				}
			}

			if cfg.OpenAI.APIKey != "" {
				f.SetupCheck("OpenAI API key", true, "configured")
			} else {
				f.SetupCheck("OpenAI API key", false, "not set. Set OPENAI_API_KEY or openai.api_key")
				ok = false
			}

			if cfg.Generation.Provider == config.ProviderGemini {
				if cfg.Gemini.APIKey != "" {
					f.SetupCheck("Gemini API key", true, "configured")
				} else {
					f.SetupCheck("Gemini API key", false, "not set. Set GEMINI_API_KEY or gemini.api_key")
					ok = false
				}
			}

			if err := cfg.Validate(); err != nil {
				f.SetupCheck("Config", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("Config", true, "provider "+cfg.Generation.Provider+", output "+cfg.Output.Format)
			}

			if ok {
				f.Info("All prerequisites met")
			} else {
				f.Info("Some prerequisites are missing")
			}
			return nil
		},
	}
}
