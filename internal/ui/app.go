package ui

import (
	"fmt"
	"image"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/vkeyboard/internal/logger"
	"github.com/OpenTraceLab/vkeyboard/pkg/keyboard"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

const editorHint = "Type using the virtual keyboard or your physical keyboard..."

// App drives the keyboard window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme *theme.Theme
	state   *AppState
	log     logger.Interface

	editor widget.Editor
	buf    editorBuffer

	keyClicks []widget.Clickable
	held      map[int]bool

	fileBtn  widget.Clickable
	viewBtn  widget.Clickable
	themeBtn widget.Clickable
	fileMenu *menu.DropdownMenu
	viewMenu *menu.DropdownMenu

	icons iconSet
}

type iconSet struct {
	exit, light, dark, grow, shrink, reset, keyboard *widget.Icon
}

// New returns an App rendering state into w.
func New(w *app.Window, state *AppState, log logger.Interface) *App {
	if w == nil {
		w = new(app.Window)
	}
	if state == nil {
		state = NewState(nil, false, 0)
	}
	if log == nil {
		log = logger.Nop{}
	}
	a := &App{
		window:    w,
		gvTheme:   theme.NewTheme("", nil, true),
		state:     state,
		log:       log,
		keyClicks: make([]widget.Clickable, state.Keyboard.Layout().Len()),
		held:      make(map[int]bool),
	}
	a.editor.ReadOnly = true
	a.buf = editorBuffer{ed: &a.editor}
	a.icons = loadIcons()
	a.fileMenu = a.buildFileMenu()
	a.viewMenu = a.buildViewMenu()
	state.Keyboard.OnChange(a.invalidate)

	a.applyPalette()
	a.log.Debug("ui initialized", "layout", state.Keyboard.Layout().Name(), "keys", len(a.keyClicks))
	return a
}

func loadIcons() iconSet {
	mk := func(data []byte) *widget.Icon {
		icon, err := widget.NewIcon(data)
		if err != nil {
			return nil
		}
		return icon
	}
	return iconSet{
		exit:     mk(icons.ActionExitToApp),
		light:    mk(icons.ImageWBSunny),
		dark:     mk(icons.ImageBrightness3),
		grow:     mk(icons.ContentAdd),
		shrink:   mk(icons.ContentRemove),
		reset:    mk(icons.NavigationRefresh),
		keyboard: mk(icons.HardwareKeyboard),
	}
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			a.log.Info("window closed")
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// Text returns the current contents of the text area.
func (a *App) Text() string { return a.editor.Text() }

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.handleKeys(gtx)

	pal := a.state.Theme.Palette()
	paint.FillShape(gtx.Ops, pal.Window, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutMenuBar),
		layout.Flexed(1, a.layoutEditor),
		layout.Rigid(a.layoutKeyboard),
		layout.Rigid(a.layoutStatusBar),
	)
}

// handleKeys routes physical key presses through the dispatcher. Shortcut
// plus =, + or - resizes the keys and shortcut plus 0 resets them.
func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(key.Filter{Optional: key.ModShift | key.ModCtrl | key.ModCommand | key.ModAlt | key.ModSuper})
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok {
			continue
		}
		code, known := codeForKey(ke.Name)
		if ke.State == key.Release {
			if known {
				delete(a.held, a.state.Keyboard.Layout().IndexOf(code))
				a.invalidate()
			}
			continue
		}
		if ke.Modifiers.Contain(key.ModShortcut) {
			a.handleShortcut(ke.Name)
			continue
		}
		if !known {
			a.log.Debug("unmapped key", "name", string(ke.Name))
			continue
		}
		if ke.Modifiers.Contain(key.ModAlt) || ke.Modifiers.Contain(key.ModSuper) {
			if !code.IsModifier() && code != keys.CodeWindows {
				continue
			}
		}
		idx, m := a.state.Keyboard.PressCode(code, ke.Modifiers.Contain(key.ModShift), a.buf)
		if idx >= 0 {
			a.held[idx] = true
		}
		a.record(code, m)
		a.invalidate()
	}
}

func (a *App) handleShortcut(name key.Name) {
	switch name {
	case "=", "+":
		a.increaseSize()
	case "-":
		a.decreaseSize()
	case "0":
		a.resetSize()
	}
}

// pressKey handles a click on the virtual key at index i.
func (a *App) pressKey(i int) {
	k, ok := a.state.Keyboard.Layout().Key(i)
	if !ok {
		return
	}
	m := a.state.Keyboard.Press(i, a.buf)
	switch k.Code {
	case keys.CodeCapsLock, keys.CodeShift:
		st := a.state.Keyboard.State()
		a.state.SetStatus("Caps lock %s, shift %s", onOff(st.CapsLock()), onOff(st.Shift()))
	}
	a.record(k.Code, m)
	a.invalidate()
}

func (a *App) record(code keys.Code, m keyboard.Mutation) {
	if !m.Changed() {
		return
	}
	a.log.Debug("key", "code", code.String(), "effect", m.Effect.String(), "len", a.buf.Len())
	a.state.Record(fmt.Sprintf("[%s] %s %s", time.Now().Format(time.TimeOnly), code, m.Effect))
}

func (a *App) setDark(dark bool) {
	if !a.state.Theme.SetDark(dark) {
		return
	}
	a.applyPalette()
	a.state.SetStatus("%s theme", titleCase(a.state.Theme.Name()))
	a.log.Info("theme changed", "theme", a.state.Theme.Name())
	a.invalidate()
}

func (a *App) increaseSize() { a.resize("increase", a.state.Size.Increase) }
func (a *App) decreaseSize() { a.resize("decrease", a.state.Size.Decrease) }
func (a *App) resetSize()    { a.resize("reset", a.state.Size.Reset) }

func (a *App) resize(action string, fn func() bool) {
	if !fn() {
		a.log.Debug("font size unchanged", "action", action, "size", a.state.Size.FontSize())
		return
	}
	a.state.SetStatus("Font size %.0fpt", a.state.Size.FontSize())
	a.log.Info("font size changed", "action", action, "size", a.state.Size.FontSize())
	a.invalidate()
}

func (a *App) exit() {
	a.log.Info("exit requested")
	a.window.Perform(system.ActionClose)
}

func (a *App) layoutMenuBar(gtx layout.Context) layout.Dimensions {
	th := a.gvTheme
	if a.fileBtn.Clicked(gtx) {
		a.fileMenu.ToggleVisibility(gtx)
	}
	if a.viewBtn.Clicked(gtx) {
		a.viewMenu.ToggleVisibility(gtx)
	}
	if a.themeBtn.Clicked(gtx) {
		a.setDark(!a.state.Theme.IsDark())
	}

	menuButton := func(btn *widget.Clickable, label string, drop *menu.DropdownMenu) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			b := material.Button(th.Theme, btn, label)
			b.Background = th.Bg2
			b.Color = th.Palette.Fg
			b.Inset = layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(6), Bottom: unit.Dp(6)}
			dims := b.Layout(gtx)
			drop.Layout(gtx, th)
			return dims
		})
	}

	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, th.Bg2, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(4), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					menuButton(&a.fileBtn, "File", a.fileMenu),
					layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
					menuButton(&a.viewBtn, "View", a.viewMenu),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{Size: image.Pt(gtx.Constraints.Min.X, 0)}
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						icon := a.icons.dark
						desc := "Switch to dark theme"
						if a.state.Theme.IsDark() {
							icon = a.icons.light
							desc = "Switch to light theme"
						}
						if icon == nil {
							return material.Button(th.Theme, &a.themeBtn, "Theme").Layout(gtx)
						}
						b := material.IconButton(th.Theme, &a.themeBtn, icon, desc)
						b.Size = unit.Dp(18)
						b.Inset = layout.UniformInset(unit.Dp(6))
						b.Background = th.Bg2
						b.Color = th.Palette.Fg
						return b.Layout(gtx)
					}),
				)
			})
		}),
	)
}

func (a *App) layoutEditor(gtx layout.Context) layout.Dimensions {
	pal := a.state.Theme.Palette()
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(8), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				r := gtx.Dp(unit.Dp(6))
				rect := image.Rectangle{Max: gtx.Constraints.Min}
				paint.FillShape(gtx.Ops, pal.KeyBorder, clip.UniformRRect(rect, r).Op(gtx.Ops))
				inner := rect.Inset(gtx.Dp(unit.Dp(1)))
				paint.FillShape(gtx.Ops, pal.Surface, clip.UniformRRect(inner, r).Op(gtx.Ops))
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = gtx.Constraints.Max
				return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					ed := material.Editor(a.gvTheme.Theme, &a.editor, editorHint)
					ed.Color = pal.Text
					ed.TextSize = unit.Sp(float32(a.state.Size.FontSize()))
					dims := ed.Layout(gtx)
					// A focused editor swallows text input; keep keys flowing
					// to the dispatcher instead.
					if gtx.Focused(&a.editor) {
						gtx.Execute(key.FocusCmd{})
					}
					return dims
				})
			}),
		)
	})
}

func (a *App) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	snap := a.state.Snapshot()
	th := a.gvTheme.Theme
	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(4), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.icons.keyboard == nil {
					return layout.Dimensions{}
				}
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(16))
				gtx.Constraints.Max.X = gtx.Constraints.Min.X
				return a.icons.keyboard.Layout(gtx, a.gvTheme.Palette.Fg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.Body2(th, snap.Status).Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				last := material.Body2(th, snap.LastActivity())
				last.MaxLines = 1
				last.Color = a.gvTheme.Palette.ContrastBg
				return last.Layout(gtx)
			}),
			layout.Rigid(material.Body2(th, snap.Summary()).Layout),
		)
	})
}

func (a *App) applyPalette() {
	if a.gvTheme == nil {
		return
	}
	pal := a.state.Theme.Palette()
	a.gvTheme.WithPalette(theme.Palette{
		Bg:         pal.Window,
		Fg:         pal.Text,
		ContrastBg: pal.Accent,
		ContrastFg: pal.AccentFg,
		Bg2:        pal.Surface,
	})
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
