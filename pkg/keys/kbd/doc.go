// Package kbd parses keyboard layout files.
//
// A layout file is a sequence of row blocks, each listing keys as a quoted
// label, a code name and an optional width class in brackets:
//
//	# comment
//	layout "US"
//	row {
//		"`" Backquote  "1" Digit1  "Backspace" Backspace [wide]
//	}
//
// Code names are those accepted by keys.ParseCode. Width classes are normal,
// wide and space; normal is the default.
package kbd
