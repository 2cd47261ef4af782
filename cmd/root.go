package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alde/aspectratio/internal/config"
)

// rootOptions holds the persistent flags and the configuration loaded for
// the running command
type rootOptions struct {
	verbose    bool
	configPath string
	cfg        *config.Config
}

// settings returns the loaded configuration, falling back to defaults when a
// command runs without the root pre-run hook (as in isolated tests)
func (o *rootOptions) settings() *config.Config {
	if o.cfg == nil {
		return config.Default()
	}
	return o.cfg
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "aspectratio",
		Short: "Compute aspect ratios, proportions and pixel metrics",
		Long: `Aspectratio computes aspect-ratio metadata for screen and image dimensions.

Given a resolution such as 1920x1080 (or explicit width and height) it reports:
- the simplified proportion (16:9) and the decimal ratio
- pixel and megapixel counts with unit suffixes
- the orientation (square, landscape, portrait)

Defaults can be set in ~/.config/aspectratio/config.toml.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			opts.cfg = cfg

			logger.Debug("configuration loaded", "path", configPathOrDefault(opts.configPath), "format", cfg.Output.Format)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/aspectratio/config.toml)")

	rootCmd.AddCommand(newRatioCmd(opts))
	rootCmd.AddCommand(newProportionCmd(opts))
	rootCmd.AddCommand(newBatchCmd(opts))
	rootCmd.AddCommand(newPresetsCmd())

	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configPathOrDefault(path string) string {
	if path == "" {
		return config.GetConfigPath()
	}
	return path
}
