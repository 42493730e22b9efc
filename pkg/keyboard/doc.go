// Package keyboard holds the behavior of the virtual keyboard: the
// caps-lock and shift toggles, the mapping from key activations to text
// buffer edits, and a Controller tying both to a keys.Layout.
//
// Everything here is synchronous and owned by a single caller. A UI binds
// its own events and calls Controller.Press, Controller.PressCode or the
// toggles; the package never blocks and never returns errors. Backspace on
// an empty buffer, modifier keys and keys with long labels are no-ops.
//
// Letters are uppercase whenever caps-lock or shift is on, including when
// both are on.
package keyboard
