package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stampvoice/internal/artifacts"
	"stampvoice/internal/pipeline"
)

func newNarrateCommand(ctx *commandContext) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "narrate RESULT_JSON",
		Short: "Generate a voice narration from a saved analysis result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(cfg, artifacts.NewStore(outputDir), logger)
			scriptPath, audioPath, err := runner.Narrate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Voice script saved to %s\n", scriptPath)
			fmt.Fprintf(out, "Audio saved to %s\n", audioPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "output", "Directory for output artifacts")
	return cmd
}
