package display

import "testing"

func TestSizeIncreaseClamps(t *testing.T) {
	s := NewSize(0)
	if s.FontSize() != BaseFontSize {
		t.Fatalf("Expected base size %v, got %v", BaseFontSize, s.FontSize())
	}
	for i := 0; i < 20; i++ {
		s.Increase()
		if s.FontSize() > MaxFontSize {
			t.Fatalf("Size %v exceeded max", s.FontSize())
		}
	}
	if s.FontSize() != MaxFontSize {
		t.Errorf("Expected %v, got %v", MaxFontSize, s.FontSize())
	}
	if s.Increase() {
		t.Error("Increase at max should report no change")
	}
}

func TestSizeDecreaseClamps(t *testing.T) {
	s := NewSize(BaseFontSize)
	for i := 0; i < 20; i++ {
		s.Decrease()
		if s.FontSize() < MinFontSize {
			t.Fatalf("Size %v below min", s.FontSize())
		}
	}
	if s.FontSize() != MinFontSize {
		t.Errorf("Expected %v, got %v", MinFontSize, s.FontSize())
	}
	if s.Decrease() {
		t.Error("Decrease at min should report no change")
	}
}

func TestSizeSteps(t *testing.T) {
	s := NewSize(0)
	s.Increase()
	if s.FontSize() != 16 {
		t.Errorf("Expected 16, got %v", s.FontSize())
	}
	s.Decrease()
	s.Decrease()
	if s.FontSize() != 12 {
		t.Errorf("Expected 12, got %v", s.FontSize())
	}
}

func TestSizeReset(t *testing.T) {
	for _, start := range []float64{MinFontSize, 13, BaseFontSize, MaxFontSize} {
		s := NewSize(start)
		s.Increase()
		s.Reset()
		if s.FontSize() != BaseFontSize {
			t.Errorf("start %v: reset gave %v", start, s.FontSize())
		}
	}
	if NewSize(0).Reset() {
		t.Error("Reset at base should report no change")
	}
}

func TestNewSizeClampsInitial(t *testing.T) {
	if got := NewSize(100).FontSize(); got != MaxFontSize {
		t.Errorf("Expected %v, got %v", MaxFontSize, got)
	}
	if got := NewSize(1).FontSize(); got != MinFontSize {
		t.Errorf("Expected %v, got %v", MinFontSize, got)
	}
}

func TestNewSizeSnapsToGrid(t *testing.T) {
	tests := map[float64]float64{13: 14, 12.9: 12, 23: 24, 15.5: 16, 11: 12}
	for start, want := range tests {
		s := NewSize(start)
		if s.FontSize() != want {
			t.Errorf("NewSize(%v) = %v, want %v", start, s.FontSize(), want)
		}
	}

	// Stepping from a snapped start stays on the grid.
	s := NewSize(13)
	for s.Increase() {
		if !OnGrid(s.FontSize()) {
			t.Fatalf("Size %v left the grid", s.FontSize())
		}
	}
	if s.FontSize() != MaxFontSize {
		t.Errorf("Expected %v, got %v", MaxFontSize, s.FontSize())
	}
}

func TestOnGrid(t *testing.T) {
	for _, v := range []float64{10, 12, 14, 24} {
		if !OnGrid(v) {
			t.Errorf("%v should be on the grid", v)
		}
	}
	for _, v := range []float64{11, 13, 14.5} {
		if OnGrid(v) {
			t.Errorf("%v should be off the grid", v)
		}
	}
}

func TestTheme(t *testing.T) {
	th := NewTheme(false)
	if th.IsDark() || th.Name() != "light" {
		t.Fatalf("Expected light theme")
	}
	if !th.SetDark(true) {
		t.Error("SetDark(true) should report a change")
	}
	if th.SetDark(true) {
		t.Error("SetDark(true) twice should report no change")
	}
	if th.Palette() != PaletteFor(true) {
		t.Error("Expected dark palette")
	}
	if th.Toggle() {
		t.Error("Toggle from dark should give light")
	}
}

func TestPaletteKeyColors(t *testing.T) {
	light, dark := PaletteFor(false), PaletteFor(true)
	if light.KeyFill.R != 0xff || light.KeyBorder.R != 0xcc {
		t.Errorf("Unexpected light key colors %+v", light)
	}
	if dark.KeyFill.R != 0x55 || dark.KeyBorder.R != 0x77 || dark.Window.R != 0x2b {
		t.Errorf("Unexpected dark key colors %+v", dark)
	}
}
