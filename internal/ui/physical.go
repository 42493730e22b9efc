package ui

import (
	"gioui.org/io/key"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

// physicalKeys maps Gio key names to layout codes. Letters and digits are
// filled in by init.
var physicalKeys = map[key.Name]keys.Code{
	"`":                    keys.CodeBackquote,
	"-":                    keys.CodeMinus,
	"=":                    keys.CodeEquals,
	"[":                    keys.CodeOpenBracket,
	"]":                    keys.CodeCloseBracket,
	"\\":                   keys.CodeBackslash,
	";":                    keys.CodeSemicolon,
	"'":                    keys.CodeQuote,
	",":                    keys.CodeComma,
	".":                    keys.CodePeriod,
	"/":                    keys.CodeSlash,
	key.NameDeleteBackward: keys.CodeBackspace,
	key.NameReturn:         keys.CodeEnter,
	key.NameEnter:          keys.CodeEnter,
	key.NameTab:            keys.CodeTab,
	key.NameSpace:          keys.CodeSpace,
	key.NameShift:          keys.CodeShift,
	key.NameCtrl:           keys.CodeControl,
	key.NameAlt:            keys.CodeAlt,
	key.NameSuper:          keys.CodeWindows,
	key.NameCommand:        keys.CodeWindows,
}

func init() {
	for r := 'A'; r <= 'Z'; r++ {
		physicalKeys[key.Name(string(r))] = keys.CodeA + keys.Code(r-'A')
	}
	for r := '0'; r <= '9'; r++ {
		physicalKeys[key.Name(string(r))] = keys.CodeDigit0 + keys.Code(r-'0')
	}
}

// codeForKey returns the layout code for a Gio key name.
func codeForKey(name key.Name) (keys.Code, bool) {
	c, ok := physicalKeys[name]
	return c, ok
}
