package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ariel-frischer/gitmsg/internal/config"
	"github.com/ariel-frischer/gitmsg/internal/errors"
	"github.com/ariel-frischer/gitmsg/internal/logging"
	"github.com/ariel-frischer/gitmsg/internal/ollama"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the Ollama endpoint",
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
		return listModels(ctx, cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

// listModels probes the endpoint inventory and prints name and size. An
// empty inventory is not an error; an unreachable endpoint is, because the
// listing was explicitly requested.
func listModels(ctx context.Context, cfg *config.Configuration, out io.Writer) error {
	client := ollama.NewClient(cfg.Host, cfg.Port)
	timeout := time.Duration(cfg.ProbeTimeout) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	models, err := client.ListModels(ctx, timeout)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime,
			"endpoint unreachable",
			fmt.Sprintf("Check that Ollama is running on %s:%d", cfg.Host, cfg.Port),
			"Start it with: ollama serve",
		)
	}

	if len(models) == 0 {
		fmt.Fprintln(out, "No models installed. Pull one with: ollama pull llama3.2")
		return nil
	}

	for _, m := range models {
		fmt.Fprintf(out, "%-40s %s\n", m.Name, humanSize(m.Size))
	}
	return nil
}

// humanSize renders a byte count the way model registries do (GB/MB).
func humanSize(bytes int64) string {
	const (
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
