package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vkeyboard/pkg/keyboard"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

var (
	typeLayout string
	typeQuote  bool
)

var typeCmd = &cobra.Command{
	Use:   "type KEY...",
	Short: "Press keys and print the resulting text",
	Long: `Press virtual keys by name and print the text they produce.

Key names are layout codes such as A, Digit1, Space, Enter, Tab, Backspace,
CapsLock and Shift; single letters and digits work too. Caps and Shift
toggle exactly as clicking them in the window would.

Examples:
  vkbd type h i
  vkbd type Shift h Shift i Enter --quote
  vkbd type CapsLock a b c Backspace`,
	Args: cobra.MinimumNArgs(1),
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)

	typeCmd.Flags().StringVarP(&typeLayout, "layout", "l", "", "layout file to load")
	typeCmd.Flags().BoolVarP(&typeQuote, "quote", "q", false, "print the text as a quoted Go string")
}

func runType(cmd *cobra.Command, args []string) error {
	l, err := loadLayout(typeLayout)
	if err != nil {
		return err
	}

	codes := make([]keys.Code, 0, len(args))
	for _, arg := range args {
		code, err := keys.ParseCode(arg)
		if err != nil {
			return err
		}
		if l.IndexOf(code) < 0 {
			return fmt.Errorf("layout %s has no %s key", l.Name(), code)
		}
		codes = append(codes, code)
	}

	log := console(cmd)
	ctrl := keyboard.NewController(l)
	buf := keyboard.NewTextBuffer("")
	for i, m := range ctrl.Type(buf, codes...) {
		log.Debug("pressed", "key", codes[i].String(), "effect", m.Effect.String(), "text", m.Text)
	}

	out := cmd.OutOrStdout()
	if typeQuote {
		fmt.Fprintf(out, "%q\n", buf.String())
	} else {
		fmt.Fprintln(out, buf.String())
	}
	return nil
}
