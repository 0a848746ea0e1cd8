package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ariel-frischer/gitmsg/internal/health"
	"github.com/ariel-frischer/gitmsg/internal/logging"
	"github.com/ariel-frischer/gitmsg/internal/ollama"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment gitmsg depends on",
	Long:  `Verify the git repository, staged changes, Ollama endpoint, and editor setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logging.Init(cfg.LogLevel)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		client := ollama.NewClient(cfg.Host, cfg.Port)
		probeTimeout := time.Duration(cfg.ProbeTimeout) * time.Second

		report := health.RunChecks(ctx, client.ListModels, probeTimeout)
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			fmt.Fprintln(cmd.OutOrStdout(), "\nSome checks failed. gitmsg may still work: a missing endpoint only disables --ai.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
