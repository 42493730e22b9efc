// Package preview renders a keyboard layout as terminal keycaps.
package preview

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OpenTraceLab/vkeyboard/pkg/display"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

// Cell widths per width class, in terminal columns.
var capWidths = map[keys.WidthClass]int{
	keys.WidthNormal: 3,
	keys.WidthWide:   9,
	keys.WidthSpace:  20,
}

// Options controls rendering.
type Options struct {
	Dark bool
	// Labels overrides the key labels, in layout order. Nil uses the base
	// labels.
	Labels []string
}

// Render draws every row of l as bordered keycaps.
func Render(l *keys.Layout, opts Options) string {
	p := display.PaletteFor(opts.Dark)
	capStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(hex(p.KeyBorder)).
		Foreground(hex(p.KeyText)).
		Background(hex(p.KeyFill)).
		Align(lipgloss.Center).
		Bold(true)

	idx := 0
	rendered := make([]string, 0, len(l.Rows()))
	for _, row := range l.Rows() {
		caps := make([]string, 0, len(row))
		for _, k := range row {
			label := k.Label
			if idx < len(opts.Labels) {
				label = opts.Labels[idx]
			}
			idx++
			caps = append(caps, capStyle.Width(capWidths[k.Width]).Render(displayLabel(label)))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, caps...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rendered...)
}

// displayLabel makes whitespace labels visible.
func displayLabel(label string) string {
	if strings.TrimSpace(label) == "" {
		return "␣"
	}
	return label
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
