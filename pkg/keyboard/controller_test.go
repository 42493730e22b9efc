package keyboard

import (
	"testing"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

func indexOf(t *testing.T, c *Controller, code keys.Code) int {
	t.Helper()
	i := c.Layout().IndexOf(code)
	if i < 0 {
		t.Fatalf("Code %v not in layout", code)
	}
	return i
}

func TestControllerInitialLabelsLowercase(t *testing.T) {
	c := NewController(nil)
	if got := c.Label(indexOf(t, c, keys.CodeQ)); got != "q" {
		t.Errorf("Expected 'q', got %q", got)
	}
	if got := c.Label(indexOf(t, c, keys.CodeTab)); got != "Tab" {
		t.Errorf("Expected 'Tab', got %q", got)
	}
	if len(c.Labels()) != c.Layout().Len() {
		t.Errorf("Expected %d labels, got %d", c.Layout().Len(), len(c.Labels()))
	}
}

func TestControllerShiftTogglesCase(t *testing.T) {
	c := NewController(keys.Default())
	buf := NewTextBuffer("")
	q := indexOf(t, c, keys.CodeQ)

	c.Press(q, buf)
	if buf.String() != "q" {
		t.Fatalf("Expected 'q', got %q", buf.String())
	}

	m := c.Press(indexOf(t, c, keys.CodeShift), buf)
	if m.Effect != EffectModifier {
		t.Errorf("Expected modifier effect for shift, got %v", m.Effect)
	}
	if !c.State().Shift() {
		t.Fatal("Shift should be on")
	}
	if c.Label(q) != "Q" {
		t.Errorf("Expected relabel to 'Q', got %q", c.Label(q))
	}

	c.Press(q, buf)
	if buf.String() != "qQ" {
		t.Errorf("Expected 'qQ', got %q", buf.String())
	}
}

func TestControllerRelabelsEveryLetter(t *testing.T) {
	c := NewController(nil)
	c.ToggleCapsLock()
	for i, k := range c.Layout().AllKeys() {
		if k.IsLetter() && c.Label(i) != string(k.Label[0]-'a'+'A') {
			t.Errorf("Key %v not relabelled: %q", k, c.Label(i))
		}
	}
	c.ToggleCapsLock()
	for i, k := range c.Layout().AllKeys() {
		if c.Label(i) != k.Label {
			t.Errorf("Key %v label %q after double toggle", k, c.Label(i))
		}
	}
}

func TestControllerOnChange(t *testing.T) {
	c := NewController(nil)
	calls := 0
	c.OnChange(func() { calls++ })

	c.ToggleShift()
	c.Press(indexOf(t, c, keys.CodeCapsLock), NewTextBuffer(""))
	c.Press(indexOf(t, c, keys.CodeA), NewTextBuffer(""))

	if calls != 2 {
		t.Errorf("Expected 2 change notifications, got %d", calls)
	}
}

func TestControllerPressCode(t *testing.T) {
	c := NewController(nil)
	buf := NewTextBuffer("")

	i, m := c.PressCode(keys.CodeA, false, buf)
	if i != indexOf(t, c, keys.CodeA) || m.Text != "a" {
		t.Errorf("PressCode(A) = %d, %+v", i, m)
	}

	_, m = c.PressCode(keys.CodeA, true, buf)
	if m.Text != "A" {
		t.Errorf("Expected held shift to uppercase, got %+v", m)
	}
	if c.State().Shift() {
		t.Error("Held shift must not toggle state")
	}

	_, m = c.PressCode(keys.CodeDigit1, true, buf)
	if m.Text != "1" {
		t.Errorf("Expected digit unchanged, got %q", m.Text)
	}

	_, m = c.PressCode(keys.CodeShift, false, buf)
	if m.Effect != EffectModifier || c.State().Shift() {
		t.Errorf("Physical shift should be a no-op, got %+v shift=%v", m, c.State().Shift())
	}

	if buf.String() != "aA1" {
		t.Errorf("Expected 'aA1', got %q", buf.String())
	}
}

func TestControllerPressCodeMissing(t *testing.T) {
	l, err := keys.NewLayout("tiny", [][]keys.Key{{keys.MustKey("a", keys.CodeA, keys.WidthNormal)}})
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(l)
	i, m := c.PressCode(keys.CodeB, false, NewTextBuffer(""))
	if i != -1 || m.Effect != EffectNone {
		t.Errorf("Expected miss, got %d %+v", i, m)
	}
	if m := c.Press(99, NewTextBuffer("")); m.Effect != EffectNone {
		t.Errorf("Expected no-op for out of range index, got %+v", m)
	}
}

func TestControllerType(t *testing.T) {
	c := NewController(nil)
	buf := NewTextBuffer("")
	c.Type(buf, keys.CodeShift, keys.CodeH, keys.CodeShift, keys.CodeI, keys.CodeSpace,
		keys.CodeX, keys.CodeBackspace, keys.CodeTab, keys.CodeEnter, keys.CodeControl)

	if want := "Hi     \n"; buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}
