package keyboard

import (
	"strings"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

// Controller owns the keyboard state for one layout and is the command
// interface a UI calls. It is not safe for concurrent use; UIs call it from
// their event loop.
type Controller struct {
	layout     *keys.Layout
	state      State
	dispatcher *Dispatcher
	labels     []string
	listeners  []func()
}

// NewController returns a controller for layout with both toggles off.
func NewController(layout *keys.Layout) *Controller {
	if layout == nil {
		layout = keys.Default()
	}
	c := &Controller{
		layout:     layout,
		dispatcher: NewDispatcher(),
		labels:     make([]string, layout.Len()),
	}
	c.relabelAll()
	return c
}

// Layout returns the controlled layout.
func (c *Controller) Layout() *keys.Layout { return c.layout }

// State returns a copy of the toggle state.
func (c *Controller) State() State { return c.state }

// Labels returns the current display label of every key in layout order.
func (c *Controller) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Label returns the display label of the key at index i.
func (c *Controller) Label(i int) string {
	if i < 0 || i >= len(c.labels) {
		return ""
	}
	return c.labels[i]
}

// OnChange registers fn to run after every relabel.
func (c *Controller) OnChange(fn func()) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// ToggleCapsLock flips caps-lock, relabels every key and returns the new
// effective case.
func (c *Controller) ToggleCapsLock() bool {
	upper := c.state.ToggleCapsLock()
	c.relabelAll()
	return upper
}

// ToggleShift flips shift, relabels every key and returns the new effective
// case.
func (c *Controller) ToggleShift() bool {
	upper := c.state.ToggleShift()
	c.relabelAll()
	return upper
}

// Press activates the virtual key at index i. Caps and Shift keys toggle
// their state; every other key is dispatched with its displayed label.
func (c *Controller) Press(i int, buf Buffer) Mutation {
	k, ok := c.layout.Key(i)
	if !ok {
		return Mutation{Effect: EffectNone}
	}
	switch k.Code {
	case keys.CodeCapsLock:
		c.ToggleCapsLock()
	case keys.CodeShift:
		c.ToggleShift()
	}
	return c.dispatcher.Dispatch(k.Code, c.labels[i], buf)
}

// PressCode handles a physical key. Physical modifiers are momentary, so
// shiftHeld uppercases a letter for this stroke without changing the
// toggles. It returns the index of the matching virtual key, or -1 when the
// layout has no key for code.
func (c *Controller) PressCode(code keys.Code, shiftHeld bool, buf Buffer) (int, Mutation) {
	i := c.layout.IndexOf(code)
	if i < 0 {
		return -1, Mutation{Effect: EffectNone}
	}
	label := c.labels[i]
	if shiftHeld && keys.IsLetterLabel(label) {
		label = strings.ToUpper(label)
	}
	return i, c.dispatcher.Dispatch(code, label, buf)
}

// Type presses the first key for each code in order and returns the
// mutations. Codes missing from the layout are skipped.
func (c *Controller) Type(buf Buffer, codes ...keys.Code) []Mutation {
	out := make([]Mutation, 0, len(codes))
	for _, code := range codes {
		i := c.layout.IndexOf(code)
		if i < 0 {
			continue
		}
		out = append(out, c.Press(i, buf))
	}
	return out
}

func (c *Controller) relabelAll() {
	for i, k := range c.layout.AllKeys() {
		c.labels[i] = c.state.Relabel(k)
	}
	for _, fn := range c.listeners {
		fn()
	}
}
