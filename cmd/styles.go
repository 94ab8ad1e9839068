package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alantheprice/promptkit/pkg/console"
	"github.com/alantheprice/promptkit/pkg/ui"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Show the style table and glyph sets",
	Long: `Prints a sample of every style name accepted in choice and config
styles, grouped into colours, highlights and modes, followed by the
glyphs the current configuration draws.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadUIConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		colours, highlights, modes := groupStyles(console.StyleNames())
		printStyleGroup(out, "colours", colours, cfg.Plain)
		printStyleGroup(out, "highlights", highlights, cfg.Plain)
		printStyleGroup(out, "modes", modes, cfg.Plain)

		fmt.Fprintln(out)
		fmt.Fprintln(out, "glyphs:")
		for _, name := range ui.GlyphNames() {
			fmt.Fprintf(out, "  %-12s %s\n", name, cfg.Glyph(name))
		}
		return nil
	},
}

// groupStyles splits style names into foreground colours, their "on-"
// highlights and the remaining modes, each sorted.
func groupStyles(names []string) (colours, highlights, modes []string) {
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	for _, name := range names {
		switch {
		case strings.HasPrefix(name, "on-"):
			highlights = append(highlights, name)
		case known["on-"+name]:
			colours = append(colours, name)
		default:
			modes = append(modes, name)
		}
	}
	slices.Sort(colours)
	slices.Sort(highlights)
	slices.Sort(modes)
	return colours, highlights, modes
}

func printStyleGroup(out io.Writer, title string, names []string, plain bool) {
	fmt.Fprintf(out, "%s:\n", title)
	for _, name := range names {
		sample := strings.Repeat("/", 10)
		if !plain {
			sample = console.StyleFormat(sample, name)
		}
		fmt.Fprintf(out, "  %-12s %s\n", name, sample)
	}
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
