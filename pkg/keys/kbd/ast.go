package kbd

import "github.com/alecthomas/participle/v2/lexer"

// File is a parsed layout file.
// Example:
//
//	layout "US"
//	row { "`" Backquote "1" Digit1 "Backspace" Backspace [wide] }
type File struct {
	Pos  lexer.Position
	Name *string `( KwLayout @String )?`
	Rows []*Row  `@@*`
}

// Row is one row block.
type Row struct {
	Pos  lexer.Position
	Keys []*KeyDecl `KwRow LBrace @@* RBrace`
}

// KeyDecl declares one key: its label, code name and optional width class.
type KeyDecl struct {
	Pos   lexer.Position
	Label string `@String`
	Code  string `@Ident`
	Width string `( LBracket @Ident RBracket )?`
}

// LayoutName returns the declared name, or fallback when the file has none.
func (f *File) LayoutName(fallback string) string {
	if f.Name == nil || *f.Name == "" {
		return fallback
	}
	return *f.Name
}
