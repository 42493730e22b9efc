package keys

import (
	"errors"
	"fmt"
)

// DefaultLayoutName is the name of the built-in layout.
const DefaultLayoutName = "US"

// Layout is an ordered set of key rows.
type Layout struct {
	name string
	rows [][]Key
	all  []Key
}

// NewLayout builds a layout from rows of keys. Rows are copied.
func NewLayout(name string, rows [][]Key) (*Layout, error) {
	if len(rows) == 0 {
		return nil, errors.New("layout has no rows")
	}
	l := &Layout{name: name, rows: make([][]Key, len(rows))}
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("layout row %d is empty", i+1)
		}
		for _, k := range row {
			if !k.Code.Valid() {
				return nil, fmt.Errorf("layout row %d: key %q: %w", i+1, k.Label, ErrUnknownCode)
			}
		}
		l.rows[i] = append([]Key(nil), row...)
		l.all = append(l.all, row...)
	}
	return l, nil
}

// Name returns the layout name.
func (l *Layout) Name() string { return l.name }

// Rows returns a copy of the layout rows.
func (l *Layout) Rows() [][]Key {
	out := make([][]Key, len(l.rows))
	for i, row := range l.rows {
		out[i] = append([]Key(nil), row...)
	}
	return out
}

// RowLens returns the number of keys in each row.
func (l *Layout) RowLens() []int {
	out := make([]int, len(l.rows))
	for i, row := range l.rows {
		out[i] = len(row)
	}
	return out
}

// AllKeys returns every key in row order.
func (l *Layout) AllKeys() []Key {
	return append([]Key(nil), l.all...)
}

// Len returns the total number of keys.
func (l *Layout) Len() int { return len(l.all) }

// Key returns the key at flat index i.
func (l *Layout) Key(i int) (Key, bool) {
	if i < 0 || i >= len(l.all) {
		return Key{}, false
	}
	return l.all[i], true
}

// IndexOf returns the flat index of the first key with the given code, or -1.
func (l *Layout) IndexOf(code Code) int {
	for i, k := range l.all {
		if k.Code == code {
			return i
		}
	}
	return -1
}

// Default returns the built-in US layout: numbers, three letter rows and the
// modifier row.
func Default() *Layout {
	w := WidthWide
	n := WidthNormal
	rows := [][]Key{
		{
			MustKey("`", CodeBackquote, n),
			MustKey("1", CodeDigit1, n),
			MustKey("2", CodeDigit2, n),
			MustKey("3", CodeDigit3, n),
			MustKey("4", CodeDigit4, n),
			MustKey("5", CodeDigit5, n),
			MustKey("6", CodeDigit6, n),
			MustKey("7", CodeDigit7, n),
			MustKey("8", CodeDigit8, n),
			MustKey("9", CodeDigit9, n),
			MustKey("0", CodeDigit0, n),
			MustKey("-", CodeMinus, n),
			MustKey("=", CodeEquals, n),
			MustKey("Backspace", CodeBackspace, w),
		},
		{
			MustKey("Tab", CodeTab, w),
			MustKey("q", CodeQ, n),
			MustKey("w", CodeW, n),
			MustKey("e", CodeE, n),
			MustKey("r", CodeR, n),
			MustKey("t", CodeT, n),
			MustKey("y", CodeY, n),
			MustKey("u", CodeU, n),
			MustKey("i", CodeI, n),
			MustKey("o", CodeO, n),
			MustKey("p", CodeP, n),
			MustKey("[", CodeOpenBracket, n),
			MustKey("]", CodeCloseBracket, n),
			MustKey(`\`, CodeBackslash, n),
		},
		{
			MustKey("Caps", CodeCapsLock, w),
			MustKey("a", CodeA, n),
			MustKey("s", CodeS, n),
			MustKey("d", CodeD, n),
			MustKey("f", CodeF, n),
			MustKey("g", CodeG, n),
			MustKey("h", CodeH, n),
			MustKey("j", CodeJ, n),
			MustKey("k", CodeK, n),
			MustKey("l", CodeL, n),
			MustKey(";", CodeSemicolon, n),
			MustKey("'", CodeQuote, n),
			MustKey("Enter", CodeEnter, w),
		},
		{
			MustKey("Shift", CodeShift, w),
			MustKey("z", CodeZ, n),
			MustKey("x", CodeX, n),
			MustKey("c", CodeC, n),
			MustKey("v", CodeV, n),
			MustKey("b", CodeB, n),
			MustKey("n", CodeN, n),
			MustKey("m", CodeM, n),
			MustKey(",", CodeComma, n),
			MustKey(".", CodePeriod, n),
			MustKey("/", CodeSlash, n),
			MustKey("Shift", CodeShift, w),
		},
		{
			MustKey("Ctrl", CodeControl, w),
			MustKey("Win", CodeWindows, w),
			MustKey("Alt", CodeAlt, w),
			MustKey(" ", CodeSpace, WidthSpace),
			MustKey("Alt", CodeAlt, w),
			MustKey("Win", CodeWindows, w),
			MustKey("Menu", CodeContextMenu, w),
			MustKey("Ctrl", CodeControl, w),
		},
	}
	l, err := NewLayout(DefaultLayoutName, rows)
	if err != nil {
		panic(err)
	}
	return l
}
