package ui

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/OpenTraceLab/vkeyboard/internal/config"
	"github.com/OpenTraceLab/vkeyboard/internal/logger"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

// Options seeds the window.
type Options struct {
	Layout *keys.Layout
	Config *config.Config
	Log    logger.Interface
}

// Run launches the Gio UI and blocks until the window closes. It does not
// return; the process exits with the window.
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop{}
	}
	state := NewState(opts.Layout, cfg.Appearance.Dark, cfg.Appearance.FontSize)

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Virtual Keyboard"),
			app.Size(unit.Dp(float32(cfg.Window.Width)), unit.Dp(float32(cfg.Window.Height))),
			app.MinSize(unit.Dp(float32(cfg.Window.MinWidth)), unit.Dp(float32(cfg.Window.MinHeight))),
		)
		ui := New(w, state, log)
		log.Info("window opened", "layout", state.Keyboard.Layout().Name(), "theme", state.Theme.Name(), "font_size", state.Size.FontSize())
		code := 0
		if err := ui.Run(); err != nil {
			log.Error("ui", "err", err)
			code = 1
		}
		log.Close()
		os.Exit(code)
	}()

	app.Main()
	return nil
}
