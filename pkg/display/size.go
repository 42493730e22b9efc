package display

import "math"

// Font size bounds for key labels, in points.
const (
	BaseFontSize  = 14.0
	SizeIncrement = 2.0
	MinFontSize   = 10.0
	MaxFontSize   = 24.0
)

// Size holds the key label font size. The zero value is not usable; use
// NewSize.
type Size struct {
	fontSize float64
}

// NewSize returns a Size starting at initial, snapped to the nearest step
// and clamped to the allowed range. A zero initial value means BaseFontSize.
func NewSize(initial float64) *Size {
	if initial == 0 {
		initial = BaseFontSize
	}
	return &Size{fontSize: clamp(Snap(initial))}
}

// Snap rounds v to the nearest size reachable from MinFontSize in
// SizeIncrement steps. Halfway values round up.
func Snap(v float64) float64 {
	return MinFontSize + math.Floor((v-MinFontSize)/SizeIncrement+0.5)*SizeIncrement
}

// OnGrid reports whether v is reachable from MinFontSize in SizeIncrement
// steps.
func OnGrid(v float64) bool { return Snap(v) == v }

// FontSize returns the current size in points.
func (s *Size) FontSize() float64 { return s.fontSize }

// Increase grows the font by one step up to MaxFontSize. It reports whether
// the size changed.
func (s *Size) Increase() bool {
	if s.fontSize >= MaxFontSize {
		return false
	}
	s.fontSize = clamp(s.fontSize + SizeIncrement)
	return true
}

// Decrease shrinks the font by one step down to MinFontSize. It reports
// whether the size changed.
func (s *Size) Decrease() bool {
	if s.fontSize <= MinFontSize {
		return false
	}
	s.fontSize = clamp(s.fontSize - SizeIncrement)
	return true
}

// Reset returns to BaseFontSize and reports whether the size changed.
func (s *Size) Reset() bool {
	changed := s.fontSize != BaseFontSize
	s.fontSize = BaseFontSize
	return changed
}

// Scale returns the current size relative to BaseFontSize.
func (s *Size) Scale() float64 { return s.fontSize / BaseFontSize }

func clamp(v float64) float64 {
	if v < MinFontSize {
		return MinFontSize
	}
	if v > MaxFontSize {
		return MaxFontSize
	}
	return v
}
