package keys

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a physical or virtual key independent of its display label.
type Code int

const (
	CodeUnknown Code = iota

	// Number row
	CodeBackquote
	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9
	CodeMinus
	CodeEquals
	CodeBackspace

	// Letters
	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	// Punctuation and editing keys
	CodeTab
	CodeOpenBracket
	CodeCloseBracket
	CodeBackslash
	CodeCapsLock
	CodeSemicolon
	CodeQuote
	CodeEnter
	CodeShift
	CodeComma
	CodePeriod
	CodeSlash

	// Bottom row
	CodeControl
	CodeWindows
	CodeAlt
	CodeSpace
	CodeContextMenu

	codeCount
)

var (
	// ErrUnknownCode is returned when a key code name or value is not recognized.
	ErrUnknownCode = errors.New("unknown key code")
	// ErrUnknownWidth is returned for an unrecognized width class.
	ErrUnknownWidth = errors.New("unknown width class")
	// ErrEmptyLabel is returned when a key is declared without a label.
	ErrEmptyLabel = errors.New("empty key label")
)

var codeNames = [codeCount]string{
	CodeUnknown:      "Unknown",
	CodeBackquote:    "Backquote",
	CodeDigit0:       "Digit0",
	CodeDigit1:       "Digit1",
	CodeDigit2:       "Digit2",
	CodeDigit3:       "Digit3",
	CodeDigit4:       "Digit4",
	CodeDigit5:       "Digit5",
	CodeDigit6:       "Digit6",
	CodeDigit7:       "Digit7",
	CodeDigit8:       "Digit8",
	CodeDigit9:       "Digit9",
	CodeMinus:        "Minus",
	CodeEquals:       "Equals",
	CodeBackspace:    "Backspace",
	CodeA:            "A",
	CodeB:            "B",
	CodeC:            "C",
	CodeD:            "D",
	CodeE:            "E",
	CodeF:            "F",
	CodeG:            "G",
	CodeH:            "H",
	CodeI:            "I",
	CodeJ:            "J",
	CodeK:            "K",
	CodeL:            "L",
	CodeM:            "M",
	CodeN:            "N",
	CodeO:            "O",
	CodeP:            "P",
	CodeQ:            "Q",
	CodeR:            "R",
	CodeS:            "S",
	CodeT:            "T",
	CodeU:            "U",
	CodeV:            "V",
	CodeW:            "W",
	CodeX:            "X",
	CodeY:            "Y",
	CodeZ:            "Z",
	CodeTab:          "Tab",
	CodeOpenBracket:  "OpenBracket",
	CodeCloseBracket: "CloseBracket",
	CodeBackslash:    "Backslash",
	CodeCapsLock:     "CapsLock",
	CodeSemicolon:    "Semicolon",
	CodeQuote:        "Quote",
	CodeEnter:        "Enter",
	CodeShift:        "Shift",
	CodeComma:        "Comma",
	CodePeriod:       "Period",
	CodeSlash:        "Slash",
	CodeControl:      "Control",
	CodeWindows:      "Windows",
	CodeAlt:          "Alt",
	CodeSpace:        "Space",
	CodeContextMenu:  "ContextMenu",
}

// Aliases accepted by ParseCode in addition to the canonical names.
var codeAliases = map[string]Code{
	"caps":  CodeCapsLock,
	"ctrl":  CodeControl,
	"win":   CodeWindows,
	"super": CodeWindows,
	"menu":  CodeContextMenu,
	"bksp":  CodeBackspace,
	"ret":   CodeEnter,
}

var codesByName = func() map[string]Code {
	m := make(map[string]Code, len(codeNames)+len(codeAliases))
	for c := CodeUnknown + 1; c < codeCount; c++ {
		m[strings.ToLower(codeNames[c])] = c
	}
	for alias, c := range codeAliases {
		m[alias] = c
	}
	return m
}()

// String returns the canonical name of the code.
func (c Code) String() string {
	if c < 0 || c >= codeCount {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return codeNames[c]
}

// Valid reports whether c names a real key.
func (c Code) Valid() bool {
	return c > CodeUnknown && c < codeCount
}

// IsLetter reports whether c is one of the alphabetic keys A-Z.
func (c Code) IsLetter() bool {
	return c >= CodeA && c <= CodeZ
}

// IsModifier reports whether c is a modifier key that only signals state.
func (c Code) IsModifier() bool {
	switch c {
	case CodeShift, CodeControl, CodeAlt, CodeCapsLock:
		return true
	}
	return false
}

// ParseCode resolves a code name, ignoring case. Single digits are accepted
// as shorthand for the digit keys.
func ParseCode(name string) (Code, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 && n[0] >= '0' && n[0] <= '9' {
		return CodeDigit0 + Code(n[0]-'0'), nil
	}
	if c, ok := codesByName[n]; ok {
		return c, nil
	}
	return CodeUnknown, fmt.Errorf("%w: %q", ErrUnknownCode, name)
}

// Codes returns every valid code in declaration order.
func Codes() []Code {
	out := make([]Code, 0, codeCount-1)
	for c := CodeUnknown + 1; c < codeCount; c++ {
		out = append(out, c)
	}
	return out
}
