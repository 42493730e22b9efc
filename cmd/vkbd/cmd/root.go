package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vkeyboard/internal/config"
	"github.com/OpenTraceLab/vkeyboard/internal/logger"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys/kbd"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// cfg is loaded before every command except the config subcommands.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vkbd",
	Short: "On-screen virtual keyboard",
	Long: `A virtual keyboard with a text area, caps-lock and shift toggles,
light and dark themes and adjustable key size.

Examples:
  vkbd ui                          # Open the keyboard window
  vkbd ui --dark --font-size 18    # Start dark with larger keys
  vkbd layout                      # Preview the built-in US layout
  vkbd type Shift h i Space        # Press keys without a window
  vkbd config init                 # Write the default config file`,
	Version:           "0.3.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the platform config directory)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if verbose {
		c.Logging.Verbose = true
	}
	cfg = c
	console(cmd).Debug("config loaded", "path", path)
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("failed to locate config: %w", err)
	}
	return path, nil
}

// console returns a stderr logger for commands that do not open a log file.
func console(cmd *cobra.Command) *slog.Logger {
	return slog.New(logger.NewConsoleHandler(cmd.ErrOrStderr(), verbose))
}

// loadLayout returns the layout file at path, the configured file when path
// is empty, or the built-in layout.
func loadLayout(path string) (*keys.Layout, error) {
	if path == "" && cfg != nil {
		path = cfg.Layout.File
	}
	if path == "" {
		return keys.Default(), nil
	}
	l, err := kbd.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}
	return l, nil
}
