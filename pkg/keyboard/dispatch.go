package keyboard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

// TabWidth is the number of spaces the Tab key inserts.
const TabWidth = 4

// Effect is the kind of buffer change a key activation causes.
type Effect int

const (
	// EffectNone leaves the buffer alone: multi-character labels such as
	// "Win" or "Menu", and backspace on an empty buffer.
	EffectNone Effect = iota
	// EffectInsertLabel appends the key's label when it is one character.
	EffectInsertLabel
	EffectDeleteLast
	EffectNewline
	EffectTab
	EffectSpace
	// EffectModifier has no buffer effect; the key only signals state.
	EffectModifier
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectInsertLabel:
		return "insert"
	case EffectDeleteLast:
		return "delete-last"
	case EffectNewline:
		return "newline"
	case EffectTab:
		return "tab"
	case EffectSpace:
		return "space"
	case EffectModifier:
		return "modifier"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// defaultEffects maps codes to effect categories. Codes not listed insert
// their label.
var defaultEffects = map[keys.Code]Effect{
	keys.CodeBackspace: EffectDeleteLast,
	keys.CodeEnter:     EffectNewline,
	keys.CodeTab:       EffectTab,
	keys.CodeSpace:     EffectSpace,
	keys.CodeShift:     EffectModifier,
	keys.CodeControl:   EffectModifier,
	keys.CodeAlt:       EffectModifier,
	keys.CodeCapsLock:  EffectModifier,
}

// Mutation describes what a dispatch did, or would do, to a buffer.
type Mutation struct {
	Effect Effect
	// Text is what gets appended, empty for deletes and no-ops.
	Text string
}

// Changed reports whether the mutation alters the buffer.
func (m Mutation) Changed() bool {
	return m.Effect == EffectDeleteLast || m.Text != ""
}

// Dispatcher turns key activations into buffer mutations.
type Dispatcher struct {
	effects map[keys.Code]Effect
}

// NewDispatcher returns a dispatcher using the standard effect table.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{effects: defaultEffects}
}

// EffectOf returns the effect category for code.
func (d *Dispatcher) EffectOf(code keys.Code) Effect {
	if e, ok := d.effects[code]; ok {
		return e
	}
	return EffectInsertLabel
}

// Resolve computes the mutation for a key activation without touching any
// buffer. label is the text currently displayed on the key.
func (d *Dispatcher) Resolve(code keys.Code, label string) Mutation {
	switch e := d.EffectOf(code); e {
	case EffectDeleteLast:
		return Mutation{Effect: e}
	case EffectNewline:
		return Mutation{Effect: e, Text: "\n"}
	case EffectTab:
		return Mutation{Effect: e, Text: strings.Repeat(" ", TabWidth)}
	case EffectSpace:
		return Mutation{Effect: e, Text: " "}
	case EffectModifier:
		return Mutation{Effect: e}
	default:
		if utf8.RuneCountInString(label) != 1 {
			return Mutation{Effect: EffectNone}
		}
		return Mutation{Effect: EffectInsertLabel, Text: label}
	}
}

// Dispatch resolves the activation and applies it to buf. Backspace on an
// empty buffer is reported as EffectNone.
func (d *Dispatcher) Dispatch(code keys.Code, label string, buf Buffer) Mutation {
	m := d.Resolve(code, label)
	return m.Apply(buf)
}

// Apply performs the mutation on buf and returns what actually happened.
func (m Mutation) Apply(buf Buffer) Mutation {
	switch {
	case m.Effect == EffectDeleteLast:
		if buf.Len() == 0 {
			return Mutation{Effect: EffectNone}
		}
		buf.DeleteLast()
	case m.Text != "":
		buf.Append(m.Text)
	}
	return m
}
