package keyboard

import (
	"testing"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

func TestStateInitial(t *testing.T) {
	var s State
	if s.CapsLock() || s.Shift() || s.EffectiveIsUpper() {
		t.Errorf("Expected zero state, got caps=%v shift=%v", s.CapsLock(), s.Shift())
	}
}

func TestEffectiveIsUpperIsOr(t *testing.T) {
	tests := []struct {
		caps, shift, want bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, tt := range tests {
		s := State{capsLock: tt.caps, shift: tt.shift}
		if got := s.EffectiveIsUpper(); got != tt.want {
			t.Errorf("caps=%v shift=%v: EffectiveIsUpper() = %v, want %v", tt.caps, tt.shift, got, tt.want)
		}
	}
}

func TestToggleCapsLockInvolution(t *testing.T) {
	var s State
	k := keys.MustKey("q", keys.CodeQ, keys.WidthNormal)

	if upper := s.ToggleCapsLock(); !upper {
		t.Error("Expected uppercase after first toggle")
	}
	if got := s.Relabel(k); got != "Q" {
		t.Errorf("Expected 'Q', got %q", got)
	}
	if upper := s.ToggleCapsLock(); upper {
		t.Error("Expected lowercase after second toggle")
	}
	if s.CapsLock() {
		t.Error("Caps lock should be back off")
	}
	if got := s.Relabel(k); got != "q" {
		t.Errorf("Expected 'q', got %q", got)
	}
}

func TestToggleShiftIndependent(t *testing.T) {
	var s State
	s.ToggleCapsLock()
	s.ToggleShift()
	if !s.CapsLock() || !s.Shift() {
		t.Fatal("Expected both toggles on")
	}
	s.ToggleShift()
	if !s.CapsLock() || s.Shift() {
		t.Errorf("Shift toggle changed caps-lock: caps=%v shift=%v", s.CapsLock(), s.Shift())
	}
}

func TestRelabelLettersOnly(t *testing.T) {
	s := State{shift: true}
	tests := map[string]string{
		"q":         "Q",
		"Q":         "Q",
		"1":         "1",
		";":         ";",
		"Tab":       "Tab",
		"Backspace": "Backspace",
		" ":         " ",
	}
	for label, want := range tests {
		k := keys.Key{Label: label, Code: keys.CodeQ}
		if got := s.Relabel(k); got != want {
			t.Errorf("Relabel(%q) = %q, want %q", label, got, want)
		}
	}

	s = State{}
	if got := s.Relabel(keys.Key{Label: "Q", Code: keys.CodeQ}); got != "q" {
		t.Errorf("Expected lowercase without toggles, got %q", got)
	}
}

func TestRelabelAllDefaultLetters(t *testing.T) {
	for _, st := range []State{{}, {capsLock: true}, {shift: true}, {capsLock: true, shift: true}} {
		s := st
		for _, k := range keys.Default().AllKeys() {
			if !k.IsLetter() {
				continue
			}
			got := s.Relabel(k)
			upper := got >= "A" && got <= "Z"
			if upper != s.EffectiveIsUpper() {
				t.Errorf("caps=%v shift=%v: Relabel(%q) = %q", s.CapsLock(), s.Shift(), k.Label, got)
			}
		}
	}
}
