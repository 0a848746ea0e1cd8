// Package cli defines the gitmsg command tree. The root command runs the
// whole synthesis flow: preconditions, analysis, optional remote
// generation, confirmation, and commit execution.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ariel-frischer/gitmsg/internal/config"
	"github.com/ariel-frischer/gitmsg/internal/engine"
	"github.com/ariel-frischer/gitmsg/internal/errors"
	"github.com/ariel-frischer/gitmsg/internal/git"
	"github.com/ariel-frischer/gitmsg/internal/logging"
	"github.com/ariel-frischer/gitmsg/internal/ollama"
	"github.com/ariel-frischer/gitmsg/internal/output"
	"github.com/ariel-frischer/gitmsg/internal/progress"
	"github.com/ariel-frischer/gitmsg/internal/prompt"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagVerbose    bool
	flagDetailed   bool
	flagAI         bool
	flagModel      string
	flagHost       string
	flagPort       int
	flagListModels bool
	flagYes        bool
	flagDryRun     bool
	flagHookPath   string
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "gitmsg",
	Short: "Synthesize a commit message for staged changes",
	Long: `gitmsg inspects the staged file list and diff, categorizes the changes,
and synthesizes a one-line commit message. With --ai it asks a local
Ollama endpoint first and falls back to the rule-based message whenever
the endpoint is unavailable or returns something unusable.`,
	Example: `  # Rule-based message with confirmation prompt
  gitmsg

  # Ask the local Ollama endpoint, fall back to rules
  gitmsg --ai

  # Print the message without committing
  gitmsg --dry-run

  # Write the message into a prepare-commit-msg hook file
  gitmsg --hook .git/COMMIT_EDITMSG`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "append file lists to category clauses")
	rootCmd.Flags().BoolVarP(&flagDetailed, "detailed", "d", false, "append a commit body with per-category files and evidence")
	rootCmd.Flags().BoolVar(&flagAI, "ai", false, "try remote generation via the Ollama endpoint first")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", "force an Ollama model name")
	rootCmd.Flags().StringVar(&flagHost, "host", "", "Ollama host (default from config)")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "Ollama port (default from config)")
	rootCmd.Flags().BoolVar(&flagListModels, "list-models", false, "list models available on the endpoint and exit")
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the message without committing")
	rootCmd.Flags().StringVar(&flagHookPath, "hook", "", "write the message into the given hook file instead of committing")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "project config path override")
}

// Execute runs the command tree, printing structured errors to stderr.
// Returns a non-nil error when the process should exit non-zero.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logging.Init(cfg.LogLevel)
	log.Debug().Msg("synthesis run starting")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagListModels {
		return listModels(ctx, cfg, cmd.OutOrStdout())
	}

	// Preconditions: fatal before any synthesis occurs.
	if !git.IsRepository("") {
		return errors.NewPreconditionError(
			"not a git repository",
			"Run gitmsg inside a git repository",
			"Initialize one with: git init",
		)
	}

	paths, err := git.StagedFiles("")
	if err != nil {
		return errors.NewPreconditionError(
			err.Error(),
			"Stage your changes first: git add <files>",
		)
	}

	diffText, err := git.StagedDiff(ctx)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "reading staged diff")
	}

	analysis := engine.Analyze(paths, diffText)

	opts := engine.Options{Verbose: flagVerbose}
	var spin *spinner.Spinner
	if flagAI {
		opts.Remote = newGenerator(cfg)
		spin = startSpinner(" generating message...")
	}

	msg := engine.Synthesize(ctx, analysis, diffText, opts)
	stopSpinner(spin)

	if flagAI && msg.Source == engine.SourceRule {
		output.PrintNotice(cmd.OutOrStdout(), "Remote generation unavailable, using rule-based message.")
	}

	body := ""
	if flagDetailed {
		body = engine.DetailBody(analysis)
	}

	output.PrintMessage(cmd.OutOrStdout(), msg.Text, string(msg.Source))
	output.PrintBody(cmd.OutOrStdout(), body)

	if flagHookPath != "" {
		full := msg.Text
		if body != "" {
			full += "\n\n" + body
		}
		if err := git.WriteHook(flagHookPath, full); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "writing hook file")
		}
		output.PrintSuccess(cmd.OutOrStdout(), "Message written to "+flagHookPath)
		return nil
	}

	if flagDryRun {
		return nil
	}

	text := msg.Text
	if !cfg.SkipConfirmations && !flagYes {
		edited, decision, err := prompt.Confirm(msg.Text)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "confirming message")
		}
		if decision == prompt.DecisionAbort {
			output.PrintNotice(cmd.OutOrStdout(), "Aborted, nothing committed.")
			return nil
		}
		text = edited
	}

	if err := git.Commit(ctx, text, body); err != nil {
		// Commit execution failure: repeat the message verbatim so it can
		// be applied manually.
		return errors.WrapWithMessage(err, errors.Runtime,
			"commit failed",
			fmt.Sprintf("Commit manually with: git commit -m %q", text),
		)
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Committed: "+text)
	return nil
}

// loadConfig loads the layered configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Configuration,
			"loading configuration",
			"Check the syntax of .gitmsg/config.yml",
		)
	}

	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagYes {
		cfg.SkipConfirmations = true
	}
	return cfg, nil
}

// newGenerator wires the remote generator from the effective configuration.
func newGenerator(cfg *config.Configuration) *ollama.Generator {
	gen := ollama.DefaultConfig()
	gen.Model = cfg.Model
	if len(cfg.PreferredModels) > 0 {
		gen.PreferredModels = cfg.PreferredModels
	}
	if cfg.ProbeTimeout > 0 {
		gen.ProbeTimeout = time.Duration(cfg.ProbeTimeout) * time.Second
	}
	if cfg.GenerateTimeout > 0 {
		gen.GenerateTimeout = time.Duration(cfg.GenerateTimeout) * time.Second
	}
	if cfg.MaxDiffBytes > 0 {
		gen.MaxDiffBytes = cfg.MaxDiffBytes
	}
	return ollama.NewGenerator(ollama.NewClient(cfg.Host, cfg.Port), gen)
}

// startSpinner spins while the remote generator works, TTY permitting.
func startSpinner(suffix string) *spinner.Spinner {
	caps := progress.DetectTerminalCapabilities()
	if !caps.IsTTY {
		return nil
	}
	symbols := progress.SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond)
	s.Suffix = suffix
	s.Start()
	return s
}

func stopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}
