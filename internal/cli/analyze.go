package cli

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetbot/internal/audio"
	"github.com/nguyentantai21042004/meetbot/internal/output"
)

func NewAnalyzeCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <audio-file>",
		Short: "Transcribe a recording and extract the meeting analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, application, _, err := deps.setup(cmd)
			if err != nil {
				return err
			}

			f := output.NewFormatter(deps.Stdout)
			asset := audio.Asset{Path: args[0]}
			if stat, err := audio.Stat(args[0]); err == nil {
				asset = stat
			}
			f.AudioPath(asset.Path, asset.SizeBytes)

			res := application.Analyzer.Analyze(ctx, asset)
			f.Bundle(res.Bundle, res.RecordPath)
			f.Complete()
			return nil
		},
	}
}
