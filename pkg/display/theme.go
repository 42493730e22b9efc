package display

import "image/color"

// Theme holds the light/dark preference. The zero value is light.
type Theme struct {
	isDark bool
}

// NewTheme returns a theme with the given initial mode.
func NewTheme(dark bool) *Theme { return &Theme{isDark: dark} }

// SetDark sets the mode and reports whether it changed.
func (t *Theme) SetDark(dark bool) bool {
	if t.isDark == dark {
		return false
	}
	t.isDark = dark
	return true
}

// IsDark reports whether the dark palette is active.
func (t *Theme) IsDark() bool { return t.isDark }

// Toggle flips the mode and returns the new value.
func (t *Theme) Toggle() bool {
	t.isDark = !t.isDark
	return t.isDark
}

// Name returns "dark" or "light".
func (t *Theme) Name() string {
	if t.isDark {
		return "dark"
	}
	return "light"
}

// Palette is the set of colors a renderer needs for one mode.
type Palette struct {
	Window    color.NRGBA
	Surface   color.NRGBA
	Text      color.NRGBA
	Accent    color.NRGBA
	AccentFg  color.NRGBA
	KeyFill   color.NRGBA
	KeyText   color.NRGBA
	KeyBorder color.NRGBA
	KeyHover  color.NRGBA
	KeyActive color.NRGBA
}

// PaletteFor returns the colors for the light or dark mode.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Palette returns the colors for the current mode.
func (t *Theme) Palette() Palette { return PaletteFor(t.isDark) }

var lightPalette = Palette{
	Window:    color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 255},
	Surface:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 255},
	Text:      color.NRGBA{R: 0x22, G: 0x25, B: 0x31, A: 255},
	Accent:    color.NRGBA{R: 80, G: 120, B: 255, A: 255},
	AccentFg:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	KeyFill:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 255},
	KeyText:   color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 255},
	KeyBorder: color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255},
	KeyHover:  color.NRGBA{R: 0xe6, G: 0xeb, B: 0xf8, A: 255},
	KeyActive: color.NRGBA{R: 0xc8, G: 0xd4, B: 0xff, A: 255},
}

var darkPalette = Palette{
	Window:    color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 255},
	Surface:   color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 255},
	Text:      color.NRGBA{R: 233, G: 236, B: 245, A: 255},
	Accent:    color.NRGBA{R: 120, G: 150, B: 255, A: 255},
	AccentFg:  color.NRGBA{R: 12, G: 16, B: 24, A: 255},
	KeyFill:   color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255},
	KeyText:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 255},
	KeyBorder: color.NRGBA{R: 0x77, G: 0x77, B: 0x77, A: 255},
	KeyHover:  color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 255},
	KeyActive: color.NRGBA{R: 0x4a, G: 0x5f, B: 0xa8, A: 255},
}
