package keys

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WidthClass is a rendering hint for how much room a key takes in its row.
type WidthClass int

const (
	WidthNormal WidthClass = iota
	WidthWide
	WidthSpace
)

// String returns the lowercase name used in layout files.
func (w WidthClass) String() string {
	switch w {
	case WidthNormal:
		return "normal"
	case WidthWide:
		return "wide"
	case WidthSpace:
		return "space"
	default:
		return fmt.Sprintf("WidthClass(%d)", int(w))
	}
}

// Valid reports whether w is a known width class.
func (w WidthClass) Valid() bool {
	return w >= WidthNormal && w <= WidthSpace
}

// ParseWidthClass resolves a width class name, ignoring case. The empty
// string means WidthNormal.
func ParseWidthClass(name string) (WidthClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return WidthNormal, nil
	case "wide":
		return WidthWide, nil
	case "space":
		return WidthSpace, nil
	}
	return WidthNormal, fmt.Errorf("%w: %q", ErrUnknownWidth, name)
}

// Key is one key of a layout. Keys are values and never change once built.
type Key struct {
	Label string
	Code  Code
	Width WidthClass
}

// NewKey validates and builds a Key. Single letter labels are normalized to
// lowercase so that the displayed case is derived from keyboard state only.
func NewKey(label string, code Code, width WidthClass) (Key, error) {
	if label == "" {
		return Key{}, fmt.Errorf("%w (code %s)", ErrEmptyLabel, code)
	}
	if !code.Valid() {
		return Key{}, fmt.Errorf("key %q: %w: %d", label, ErrUnknownCode, int(code))
	}
	if !width.Valid() {
		return Key{}, fmt.Errorf("key %q: %w: %d", label, ErrUnknownWidth, int(width))
	}
	if IsLetterLabel(label) {
		label = strings.ToLower(label)
	}
	return Key{Label: label, Code: code, Width: width}, nil
}

// MustKey is like NewKey but panics on invalid input. It is meant for static
// tables.
func MustKey(label string, code Code, width WidthClass) Key {
	k, err := NewKey(label, code, width)
	if err != nil {
		panic(err)
	}
	return k
}

// IsLetterLabel reports whether label is exactly one alphabetic character.
func IsLetterLabel(label string) bool {
	r, size := utf8.DecodeRuneInString(label)
	return size > 0 && size == len(label) && unicode.IsLetter(r)
}

// IsLetter reports whether the key's label is a single alphabetic character.
func (k Key) IsLetter() bool {
	return IsLetterLabel(k.Label)
}

func (k Key) String() string {
	return fmt.Sprintf("%s(%q)", k.Code, k.Label)
}
