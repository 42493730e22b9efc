package kbd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

func TestParseSimpleRow(t *testing.T) {
	input := `
	layout "Mini"
	row { "a" A "Enter" Enter [wide] }
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	f, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if f.LayoutName("x") != "Mini" {
		t.Errorf("Expected layout name 'Mini', got '%s'", f.LayoutName("x"))
	}
	if len(f.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(f.Rows))
	}
	if len(f.Rows[0].Keys) != 2 {
		t.Fatalf("Expected 2 keys, got %d", len(f.Rows[0].Keys))
	}

	enter := f.Rows[0].Keys[1]
	if enter.Label != "Enter" || enter.Code != "Enter" || enter.Width != "wide" {
		t.Errorf("Unexpected key decl: %+v", enter)
	}
}

func TestParseEscapedLabel(t *testing.T) {
	l, err := LoadString(`row { "\\" Backslash "\"" Quote }`)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	keysList := l.AllKeys()
	if keysList[0].Label != `\` {
		t.Errorf("Expected backslash label, got %q", keysList[0].Label)
	}
	if keysList[1].Label != `"` {
		t.Errorf("Expected quote label, got %q", keysList[1].Label)
	}
	if l.Name() != "custom" {
		t.Errorf("Expected fallback name 'custom', got %q", l.Name())
	}
}

func TestLoadMatchesDefault(t *testing.T) {
	l, err := Load(filepath.Join("testdata", "us.kbd"))
	if err != nil {
		t.Fatalf("Failed to load us.kbd: %v", err)
	}

	want := keys.Default()
	if l.Name() != want.Name() {
		t.Errorf("Expected name %q, got %q", want.Name(), l.Name())
	}

	gotRows, wantRows := l.Rows(), want.Rows()
	if len(gotRows) != len(wantRows) {
		t.Fatalf("Expected %d rows, got %d", len(wantRows), len(gotRows))
	}
	for i := range wantRows {
		if len(gotRows[i]) != len(wantRows[i]) {
			t.Fatalf("Row %d: expected %d keys, got %d", i+1, len(wantRows[i]), len(gotRows[i]))
		}
		for j := range wantRows[i] {
			if gotRows[i][j] != wantRows[i][j] {
				t.Errorf("Row %d key %d: expected %v, got %v", i+1, j+1, wantRows[i][j], gotRows[i][j])
			}
		}
	}
}

func TestUnknownCodeFailsWithPosition(t *testing.T) {
	_, err := LoadString("row {\n  \"a\" A\n  \"?\" Hyper\n}")
	if err == nil {
		t.Fatal("Expected error for unknown code")
	}
	if !errors.Is(err, keys.ErrUnknownCode) {
		t.Errorf("Expected ErrUnknownCode, got %v", err)
	}
	if !strings.Contains(err.Error(), ":3:") {
		t.Errorf("Expected line 3 in error, got %v", err)
	}
}

func TestUnknownWidthFails(t *testing.T) {
	_, err := LoadString(`row { "a" A [huge] }`)
	if !errors.Is(err, keys.ErrUnknownWidth) {
		t.Errorf("Expected ErrUnknownWidth, got %v", err)
	}
}

func TestEmptyRowFails(t *testing.T) {
	if _, err := LoadString(`row { }`); err == nil {
		t.Error("Expected error for empty row")
	}
	if _, err := LoadString(`# nothing here`); err == nil {
		t.Error("Expected error for file without rows")
	}
}

func TestSyntaxError(t *testing.T) {
	if _, err := LoadString(`row { "a" }`); err == nil {
		t.Error("Expected syntax error for key without code")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	src := Format(keys.Default())
	l, err := LoadString(src)
	if err != nil {
		t.Fatalf("Failed to reparse formatted layout: %v\n%s", err, src)
	}
	if l.Len() != keys.Default().Len() {
		t.Errorf("Expected %d keys, got %d", keys.Default().Len(), l.Len())
	}
	if l.Name() != keys.DefaultLayoutName {
		t.Errorf("Expected name %q, got %q", keys.DefaultLayoutName, l.Name())
	}
}
