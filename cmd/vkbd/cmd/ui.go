package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vkeyboard/internal/logger"
	"github.com/OpenTraceLab/vkeyboard/internal/ui"
)

var (
	uiDark     bool
	uiFontSize float64
	uiLayout   string
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the keyboard window",
	Long: `Open the virtual keyboard window.

Click keys or type on the physical keyboard; both go through the same
dispatcher. Ctrl/Cmd with +, - and 0 resize the keys.

Examples:
  # Open with the configured settings
  vkbd ui

  # Start in dark mode with a custom layout
  vkbd ui --dark --layout ~/layouts/compact.kbd`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.Flags().BoolVar(&uiDark, "dark", false, "start with the dark theme")
	uiCmd.Flags().Float64Var(&uiFontSize, "font-size", 0, "starting key font size in points")
	uiCmd.Flags().StringVarP(&uiLayout, "layout", "l", "", "layout file to load")
}

func runUI(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("dark") {
		cfg.Appearance.Dark = uiDark
	}
	if cmd.Flags().Changed("font-size") {
		cfg.Appearance.FontSize = uiFontSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	layout, err := loadLayout(uiLayout)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Verbose:    cfg.Logging.Verbose,
		Dir:        cfg.Logging.Dir,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
		Console:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	log.Debug("launching ui", "log", log.Path())

	return ui.Run(ui.Options{Layout: layout, Config: cfg, Log: log})
}
