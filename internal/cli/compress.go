package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetbot/internal/audio"
	"github.com/nguyentantai21042004/meetbot/internal/output"
)

func NewCompressCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "compress <audio-file>",
		Short: "Truncate a recording to fit the upload size limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, application, cfg, err := deps.setup(cmd)
			if err != nil {
				return err
			}

			asset, err := audio.Stat(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			out := application.Guard.EnsureWithinLimit(ctx, asset)

			f := output.NewFormatter(deps.Stdout)
			f.AudioPath(out.Path, out.SizeBytes)
			if out.Path == asset.Path && out.SizeBytes > cfg.Audio.MaxSizeBytes {
				f.Info("recording is still over the limit, compression was not possible")
			}
			return nil
		},
	}
}
