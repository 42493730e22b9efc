package ui

import "gioui.org/widget"

// editorBuffer lets the dispatcher edit a Gio editor. Edits always happen at
// the end of the text regardless of where the caret was.
type editorBuffer struct {
	ed *widget.Editor
}

func (b editorBuffer) Len() int { return b.ed.Len() }

func (b editorBuffer) Append(s string) {
	n := b.ed.Len()
	b.ed.SetCaret(n, n)
	b.ed.Insert(s)
}

// DeleteLast removes the final rune by selecting it and inserting nothing.
func (b editorBuffer) DeleteLast() {
	n := b.ed.Len()
	if n == 0 {
		return
	}
	b.ed.SetCaret(n, n-1)
	b.ed.Insert("")
}
