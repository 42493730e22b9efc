package kbd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

// Parser reads layout files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new layout parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a layout file from a reader
func (p *Parser) Parse(filename string, r io.Reader) (*File, error) {
	f, err := p.parser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a layout file from a string
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses a layout file from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}

// Build converts a parsed file into a validated layout. Unknown code names
// and width classes are reported with their source position.
func Build(f *File, fallbackName string) (*keys.Layout, error) {
	rows := make([][]keys.Key, 0, len(f.Rows))
	for _, row := range f.Rows {
		out := make([]keys.Key, 0, len(row.Keys))
		for _, decl := range row.Keys {
			k, err := decl.key()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Pos, err)
			}
			out = append(out, k)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("%s: empty row", row.Pos)
		}
		rows = append(rows, out)
	}
	return keys.NewLayout(f.LayoutName(fallbackName), rows)
}

func (d *KeyDecl) key() (keys.Key, error) {
	code, err := keys.ParseCode(d.Code)
	if err != nil {
		return keys.Key{}, err
	}
	width, err := keys.ParseWidthClass(d.Width)
	if err != nil {
		return keys.Key{}, err
	}
	return keys.NewKey(d.Label, code, width)
}

// Load parses and builds the layout file at path. The file name without
// extension is used when the file does not declare a layout name.
func Load(path string) (*keys.Layout, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Build(f, base)
}

// LoadString parses and builds a layout from source text.
func LoadString(src string) (*keys.Layout, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseString(src)
	if err != nil {
		return nil, err
	}
	return Build(f, "custom")
}

// Format renders a layout back into layout file syntax.
func Format(l *keys.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "layout %q\n", l.Name())
	for _, row := range l.Rows() {
		b.WriteString("row {\n")
		for _, k := range row {
			fmt.Fprintf(&b, "\t%q %s", k.Label, k.Code)
			if k.Width != keys.WidthNormal {
				fmt.Fprintf(&b, " [%s]", k.Width)
			}
			b.WriteString("\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
