// Package display holds the two display preferences of the keyboard: the
// key label font size, stepped and clamped between MinFontSize and
// MaxFontSize, and the light/dark theme with its palettes. Neither interacts
// with keyboard state; renderers read them when they restyle.
package display
