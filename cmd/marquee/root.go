package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/marquee/config"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	logger     *slog.Logger
	globalOpts struct {
		verbose    bool
		configPath string
	}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Content scheduler for LED matrix displays",
	Long: `marquee schedules prioritized content onto an LED matrix display,
with transition effects and ambient background animation.

Running marquee without a subcommand launches the terminal demo.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.Load(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "marquee.toml",
		"Path to configuration file")
}

// setupLogger configures the global slog logger based on verbosity.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
