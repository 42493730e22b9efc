package kbd

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the tokens of a keyboard layout file.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords, before Ident
	{Name: "KwLayout", Pattern: `\blayout\b`},
	{Name: "KwRow", Pattern: `\brow\b`},

	// Labels are double-quoted with backslash escapes
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},

	// Code names and width classes
	{Name: "Ident", Pattern: `[a-zA-Z0-9][a-zA-Z0-9_]*`},
})
