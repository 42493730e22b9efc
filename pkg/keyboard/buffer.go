package keyboard

// Buffer is the text sink a dispatcher writes into. The owner of the buffer
// decides how text is stored; the dispatcher only appends and deletes from
// the end.
type Buffer interface {
	// Len returns the number of characters in the buffer.
	Len() int
	// Append adds s at the end of the buffer.
	Append(s string)
	// DeleteLast removes the final character. Callers check Len first.
	DeleteLast()
}

// TextBuffer is an in-memory Buffer counting characters as runes.
type TextBuffer struct {
	runes []rune
}

// NewTextBuffer returns a buffer holding s.
func NewTextBuffer(s string) *TextBuffer {
	return &TextBuffer{runes: []rune(s)}
}

func (b *TextBuffer) Len() int { return len(b.runes) }

func (b *TextBuffer) Append(s string) {
	b.runes = append(b.runes, []rune(s)...)
}

func (b *TextBuffer) DeleteLast() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

func (b *TextBuffer) String() string { return string(b.runes) }

// Reset empties the buffer.
func (b *TextBuffer) Reset() { b.runes = b.runes[:0] }
