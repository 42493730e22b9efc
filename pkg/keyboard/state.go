package keyboard

import (
	"strings"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

// State tracks the caps-lock and shift toggles. The zero value has both off.
// Toggles need a pointer; the accessors work on copies such as
// Controller.State.
type State struct {
	capsLock bool
	shift    bool
}

// ToggleCapsLock flips caps-lock and returns the new effective case.
func (s *State) ToggleCapsLock() bool {
	s.capsLock = !s.capsLock
	return s.EffectiveIsUpper()
}

// ToggleShift flips shift and returns the new effective case.
func (s *State) ToggleShift() bool {
	s.shift = !s.shift
	return s.EffectiveIsUpper()
}

// CapsLock reports whether caps-lock is on.
func (s State) CapsLock() bool { return s.capsLock }

// Shift reports whether shift is on.
func (s State) Shift() bool { return s.shift }

// EffectiveIsUpper reports whether letters display in uppercase. Either
// toggle alone or both together give uppercase; shift does not invert
// caps-lock.
func (s State) EffectiveIsUpper() bool {
	return s.capsLock || s.shift
}

// Relabel returns the text a key should display under the current state.
// Only single-letter labels change case.
func (s State) Relabel(k keys.Key) string {
	return relabel(k.Label, s.EffectiveIsUpper())
}

func relabel(label string, upper bool) string {
	if !keys.IsLetterLabel(label) {
		return label
	}
	if upper {
		return strings.ToUpper(label)
	}
	return strings.ToLower(label)
}
