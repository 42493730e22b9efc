package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vkeyboard/internal/preview"
	"github.com/OpenTraceLab/vkeyboard/pkg/keyboard"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys/kbd"
)

var (
	layoutFile   string
	layoutJSON   bool
	layoutSource bool
	layoutCaps   bool
	layoutShift  bool
	layoutDark   bool
)

// LayoutInfo is the JSON form of a layout.
type LayoutInfo struct {
	Name     string      `json:"name"`
	KeyCount int         `json:"key_count"`
	CapsLock bool        `json:"caps_lock"`
	Shift    bool        `json:"shift"`
	Rows     [][]KeyInfo `json:"rows"`
}

// KeyInfo describes one key.
type KeyInfo struct {
	Index   int    `json:"index"`
	Label   string `json:"label"`
	Display string `json:"display"`
	Code    string `json:"code"`
	Width   string `json:"width"`
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show a keyboard layout",
	Long: `Show a keyboard layout as terminal keycaps, JSON or layout file source.

Labels follow the requested caps-lock and shift state, so the preview shows
what the window would display.

Examples:
  # Preview the built-in layout
  vkbd layout

  # Preview with caps-lock on in the dark palette
  vkbd layout --caps --dark

  # Export the built-in layout as an editable layout file
  vkbd layout --source > us.kbd

  # Validate and inspect a custom layout
  vkbd layout --layout compact.kbd --json`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "layout file to load")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "output as JSON (for programmatic access)")
	layoutCmd.Flags().BoolVar(&layoutSource, "source", false, "output layout file source")
	layoutCmd.Flags().BoolVar(&layoutCaps, "caps", false, "show labels with caps-lock on")
	layoutCmd.Flags().BoolVar(&layoutShift, "shift", false, "show labels with shift on")
	layoutCmd.Flags().BoolVar(&layoutDark, "dark", false, "use the dark palette")

	layoutCmd.MarkFlagsMutuallyExclusive("json", "source")
}

func runLayout(cmd *cobra.Command, args []string) error {
	l, err := loadLayout(layoutFile)
	if err != nil {
		return err
	}
	console(cmd).Debug("layout loaded", "name", l.Name(), "keys", l.Len())

	ctrl := keyboard.NewController(l)
	if layoutCaps {
		ctrl.ToggleCapsLock()
	}
	if layoutShift {
		ctrl.ToggleShift()
	}

	out := cmd.OutOrStdout()
	switch {
	case layoutSource:
		fmt.Fprint(out, kbd.Format(l))
		return nil
	case layoutJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(buildLayoutInfo(ctrl))
	}

	fmt.Fprintf(out, "Layout: %s (%d keys)\n", l.Name(), l.Len())
	fmt.Fprintln(out, preview.Render(l, preview.Options{Dark: layoutDark, Labels: ctrl.Labels()}))
	return nil
}

func buildLayoutInfo(ctrl *keyboard.Controller) *LayoutInfo {
	l := ctrl.Layout()
	st := ctrl.State()
	info := &LayoutInfo{
		Name:     l.Name(),
		KeyCount: l.Len(),
		CapsLock: st.CapsLock(),
		Shift:    st.Shift(),
	}
	idx := 0
	for _, row := range l.Rows() {
		keyRow := make([]KeyInfo, len(row))
		for j, k := range row {
			keyRow[j] = keyInfo(idx, k, ctrl.Label(idx))
			idx++
		}
		info.Rows = append(info.Rows, keyRow)
	}
	return info
}

func keyInfo(idx int, k keys.Key, display string) KeyInfo {
	return KeyInfo{
		Index:   idx,
		Label:   k.Label,
		Display: display,
		Code:    k.Code.String(),
		Width:   k.Width.String(),
	}
}
