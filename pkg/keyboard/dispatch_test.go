package keyboard

import (
	"testing"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

func TestDispatchPolicy(t *testing.T) {
	tests := []struct {
		name   string
		code   keys.Code
		label  string
		buffer string
		want   string
		effect Effect
	}{
		{"backspace empty", keys.CodeBackspace, "Backspace", "", "", EffectNone},
		{"backspace", keys.CodeBackspace, "Backspace", "ab", "a", EffectDeleteLast},
		{"backspace multibyte", keys.CodeBackspace, "Backspace", "né", "n", EffectDeleteLast},
		{"enter", keys.CodeEnter, "Enter", "x", "x\n", EffectNewline},
		{"tab", keys.CodeTab, "Tab", "", "    ", EffectTab},
		{"space", keys.CodeSpace, " ", "a", "a ", EffectSpace},
		{"shift", keys.CodeShift, "Shift", "x", "x", EffectModifier},
		{"ctrl", keys.CodeControl, "Ctrl", "x", "x", EffectModifier},
		{"alt", keys.CodeAlt, "Alt", "x", "x", EffectModifier},
		{"caps", keys.CodeCapsLock, "Caps", "x", "x", EffectModifier},
		{"win", keys.CodeWindows, "Win", "x", "x", EffectNone},
		{"menu", keys.CodeContextMenu, "Menu", "x", "x", EffectNone},
		{"letter lower", keys.CodeQ, "q", "", "q", EffectInsertLabel},
		{"letter upper", keys.CodeQ, "Q", "", "Q", EffectInsertLabel},
		{"digit", keys.CodeDigit1, "1", "a", "a1", EffectInsertLabel},
		{"backslash", keys.CodeBackslash, `\`, "", `\`, EffectInsertLabel},
	}

	d := NewDispatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewTextBuffer(tt.buffer)
			m := d.Dispatch(tt.code, tt.label, buf)
			if buf.String() != tt.want {
				t.Errorf("buffer = %q, want %q", buf.String(), tt.want)
			}
			if m.Effect != tt.effect {
				t.Errorf("effect = %v, want %v", m.Effect, tt.effect)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	d := NewDispatcher()
	m := d.Resolve(keys.CodeTab, "Tab")
	if m.Text != "    " || m.Effect != EffectTab {
		t.Errorf("Unexpected mutation %+v", m)
	}
	if !m.Changed() {
		t.Error("Tab mutation should report a change")
	}
	if d.Resolve(keys.CodeWindows, "Win").Changed() {
		t.Error("Win should not change the buffer")
	}
}

func TestEffectOfDefaultsToInsert(t *testing.T) {
	d := NewDispatcher()
	for _, code := range keys.Codes() {
		e := d.EffectOf(code)
		if code.IsModifier() && e != EffectModifier {
			t.Errorf("%v: expected modifier effect, got %v", code, e)
		}
		if code.IsLetter() && e != EffectInsertLabel {
			t.Errorf("%v: expected insert effect, got %v", code, e)
		}
	}
}

func TestTextBuffer(t *testing.T) {
	b := NewTextBuffer("")
	b.DeleteLast()
	if b.Len() != 0 {
		t.Fatalf("Expected empty buffer, got %d", b.Len())
	}
	b.Append("héllo")
	if b.Len() != 5 {
		t.Errorf("Expected 5 runes, got %d", b.Len())
	}
	b.DeleteLast()
	if b.String() != "héll" {
		t.Errorf("Expected 'héll', got %q", b.String())
	}
	b.Reset()
	if b.String() != "" {
		t.Errorf("Expected empty after reset, got %q", b.String())
	}
}
