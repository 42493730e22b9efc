package ui

import (
	"fmt"

	"github.com/OpenTraceLab/vkeyboard/pkg/display"
	"github.com/OpenTraceLab/vkeyboard/pkg/keyboard"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

// StateSnapshot captures what the status bar and menus render.
type StateSnapshot struct {
	LayoutName string
	CapsLock   bool
	Shift      bool
	Dark       bool
	FontSize   float64
	Status     string
	Activity   []string
}

// AppState groups the controller and display preferences the window
// renders. It is owned by the Gio event goroutine and never shared.
type AppState struct {
	Keyboard *keyboard.Controller
	Size     *display.Size
	Theme    *display.Theme

	status   string
	activity []string
	limit    int
}

// NewState returns state for layout with the given starting preferences.
func NewState(layout *keys.Layout, dark bool, fontSize float64) *AppState {
	s := &AppState{
		Keyboard: keyboard.NewController(layout),
		Size:     display.NewSize(fontSize),
		Theme:    display.NewTheme(dark),
		status:   "Ready",
		limit:    50,
	}
	return s
}

// Snapshot returns a copy of the renderable state.
func (s *AppState) Snapshot() StateSnapshot {
	st := s.Keyboard.State()
	return StateSnapshot{
		LayoutName: s.Keyboard.Layout().Name(),
		CapsLock:   st.CapsLock(),
		Shift:      st.Shift(),
		Dark:       s.Theme.IsDark(),
		FontSize:   s.Size.FontSize(),
		Status:     s.status,
		Activity:   append([]string(nil), s.activity...),
	}
}

// SetStatus updates the status message.
func (s *AppState) SetStatus(format string, args ...any) {
	s.status = fmt.Sprintf(format, args...)
}

// Record appends an activity line, dropping the oldest past the limit.
func (s *AppState) Record(line string) {
	s.activity = append(s.activity, line)
	if s.limit > 0 && len(s.activity) > s.limit {
		s.activity = append([]string(nil), s.activity[len(s.activity)-s.limit:]...)
	}
}

// LastActivity returns the newest activity line, or "".
func (snap StateSnapshot) LastActivity() string {
	if len(snap.Activity) == 0 {
		return ""
	}
	return snap.Activity[len(snap.Activity)-1]
}

// Summary is the one-line status bar text.
func (snap StateSnapshot) Summary() string {
	theme := "Light"
	if snap.Dark {
		theme = "Dark"
	}
	return fmt.Sprintf("Caps %s · Shift %s · %s theme · %.0fpt · %s layout",
		onOff(snap.CapsLock), onOff(snap.Shift), theme, snap.FontSize, snap.LayoutName)
}
