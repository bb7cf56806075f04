package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stampvoice/internal/artifacts"
	"stampvoice/internal/pipeline"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var tts bool
	var outputDir string

	cmd := &cobra.Command{
		Use:   "analyze IMAGE",
		Short: "Analyze a postage stamp image and save the structured result",
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
			if outputDir == "" {
				outputDir = cfg.Output.Dir
			}

			runner := pipeline.NewRunner(cfg, artifacts.NewStore(outputDir), logger)
			outcome, err := runner.Run(cmd.Context(), args[0], tts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Analysis result:")
			fmt.Fprint(out, string(outcome.ResultJSON))
			fmt.Fprintf(out, "Result saved to %s\n", outcome.ResultPath)

			if outcome.NarrationErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: voice narration failed: %v\n", outcome.NarrationErr)
				return nil
			}
			if outcome.ScriptPath != "" {
				fmt.Fprintf(out, "Voice script saved to %s\n", outcome.ScriptPath)
				fmt.Fprintf(out, "Audio saved to %s\n", outcome.AudioPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tts, "tts", false, "Generate a voice narration after analysis")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for output artifacts (default from config)")
	return cmd
}
