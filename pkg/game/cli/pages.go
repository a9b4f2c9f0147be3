package cli

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"bitsycart/pkg/engine/dialog"
)

func newPagesCmd(factory HostFactory) *cobra.Command {
	var opts HostOptions
	cmd := &cobra.Command{
		Use:   "pages <cart.toml> <dialogue>",
		Short: "Print the page layout of a dialogue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if factory == nil {
				return fmt.Errorf("no window host available")
			}
			host := factory(loggerFromContext(cmd.Context()), opts)
			g, err := loadGame(cmd.Context(), args[0], host)
			if err != nil {
				return err
			}
			if err := g.ShowDialogue(args[1]); err != nil {
				return err
			}
			return dumpPages(cmd.OutOrStdout(), g.Dialog)
		},
	}
	addHostFlags(cmd, &opts)
	return cmd
}

var (
	colorHeader = color.Style{color.FgCyan, color.OpBold}
	colorSubtle = color.Style{color.FgGray}
)

// dumpPages writes one line per word: its offset, text and effect.
func dumpPages(w io.Writer, d *dialog.Dialog) error {
	pages := d.Pages()
	for i, page := range pages {
		if _, err := fmt.Fprintln(w, colorHeader.Sprintf("page %d/%d", i+1, len(pages))); err != nil {
			return err
		}
		for _, word := range page.Words {
			at := fmt.Sprintf("(%d,%d)", word.Point.X, word.Point.Y)
			if _, err := fmt.Fprintf(w, "  %-9s %-16s %s\n", at, wordLabel(word), colorSubtle.Sprint(word.Effect)); err != nil {
				return err
			}
		}
	}
	return nil
}

func wordLabel(w dialog.Word) string {
	switch w.Kind {
	case dialog.WordSprite:
		return "[sprite " + w.Text + "]"
	case dialog.WordTile:
		return "[tile " + w.Text + "]"
	case dialog.WordItem:
		return "[item " + w.Text + "]"
	}
	return w.Text
}
