package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/gitmsg/internal/config"
	"github.com/ariel-frischer/gitmsg/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configInitUser bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gitmsg configuration",
	Long:  `Inspect and initialize gitmsg configuration files.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ProjectConfigPath()
		if configInitUser {
			var err error
			path, err = config.UserConfigPath()
			if err != nil {
				return errors.WrapWithMessage(err, errors.Configuration, "resolving user config path")
			}
		}

		if _, err := os.Stat(path); err == nil {
			return errors.NewConfigError(
				fmt.Sprintf("config file already exists at %s", path),
				"Edit the existing file, or remove it and run 'gitmsg config init' again",
			)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "creating config directory")
		}
		if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "writing config file")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		rendered, err := yaml.Marshal(map[string]interface{}{
			"model":              cfg.Model,
			"host":               cfg.Host,
			"port":               cfg.Port,
			"preferred_models":   cfg.PreferredModels,
			"probe_timeout":      cfg.ProbeTimeout,
			"generate_timeout":   cfg.GenerateTimeout,
			"max_diff_bytes":     cfg.MaxDiffBytes,
			"skip_confirmations": cfg.SkipConfirmations,
			"log_level":          cfg.LogLevel,
		})
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "rendering configuration")
		}

		fmt.Fprint(cmd.OutOrStdout(), string(rendered))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file search paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		userPath, err := config.UserConfigPath()
		if err != nil {
			userPath = "(unavailable)"
		}
		legacyUserPath, err := config.LegacyUserConfigPath()
		if err != nil {
			legacyUserPath = "(unavailable)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "project:       %s\n", config.ProjectConfigPath())
		fmt.Fprintf(out, "user:          %s\n", userPath)
		fmt.Fprintf(out, "legacy (json): %s, %s\n", config.LegacyProjectConfigPath(), legacyUserPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitUser, "user", false, "write the user-level config instead of the project one")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
