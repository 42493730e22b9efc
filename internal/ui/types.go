package ui

import (
	"gioui.org/unit"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

const (
	// keyHeight is the unscaled height of one key row.
	keyHeight = unit.Dp(40)
	keyGap    = unit.Dp(2)
	keyRadius = unit.Dp(4)
)

// widthWeight is the flex weight of a key relative to a normal key.
func widthWeight(w keys.WidthClass) float32 {
	switch w {
	case keys.WidthWide:
		return 1.8
	case keys.WidthSpace:
		return 5
	default:
		return 1
	}
}

// keyVisual is the render state of one key cell.
type keyVisual int

const (
	keyIdle keyVisual = iota
	keyHovered
	keyActive
)

// latched reports whether the key at code shows a lit toggle.
func latched(code keys.Code, capsLock, shift bool) bool {
	switch code {
	case keys.CodeCapsLock:
		return capsLock
	case keys.CodeShift:
		return shift
	}
	return false
}
