// Package keys describes keyboard layouts as plain data.
//
// A Layout is an ordered list of rows, each row an ordered list of Key values.
// A Key pairs a display label with a Code, the symbolic identity used by the
// dispatcher, and a WidthClass that only matters to renderers. Letter keys
// carry a lowercase base label; the displayed case is decided elsewhere from
// caps-lock and shift state.
//
// Invalid codes, widths and empty labels are rejected when a Key is built, so
// a Layout never holds a key the dispatcher cannot classify.
package keys
