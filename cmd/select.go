package cmd

import (
	"github.com/alantheprice/promptkit/pkg/ui"
	"github.com/spf13/cobra"
)

var (
	selectSkip bool
	selectQuit bool
)

var selectCmd = &cobra.Command{
	Use:   "select [choices...]",
	Short: "Pick one of the given choices",
	Long: `Draws a single-select prompt and prints the chosen value.

Move with the arrow keys or j/k, commit with enter and cancel with
escape or ctrl-c. Without arguments a demo list with mnemonics is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cursor, unregister := terminalCursor()
		defer unregister()

		opts, err := selectorOptions(cursor)
		if err != nil {
			return err
		}
		if selectSkip {
			opts = append(opts, ui.WithSkip())
		}
		if selectQuit {
			opts = append(opts, ui.WithQuit())
		}

		value, err := ui.SelectOne(choicesFromArgs(args), opts...)
		if err != nil {
			return err
		}
		if value != nil {
			printValue(cmd, value)
		}
		return nil
	},
}

var manyCmd = &cobra.Command{
	Use:   "many [choices...]",
	Short: "Pick any number of the given choices",
	Long: `Draws a multi-select prompt and prints the chosen values, one per line,
in list order. Toggle rows with space and commit with enter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cursor, unregister := terminalCursor()
		defer unregister()

		opts, err := selectorOptions(cursor)
		if err != nil {
			return err
		}

		values, err := ui.SelectMany(choicesFromArgs(args), opts...)
		if err != nil {
			return err
		}
		for _, value := range values {
			printValue(cmd, value)
		}
		return nil
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Answer a yes/no question",
	Long: `Draws a yes/no prompt. Exits 0 on yes and 1 on no, so it can gate
shell scripts:

  promptkit approve --header "Deploy?" && ./deploy.sh`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cursor, unregister := terminalCursor()
		defer unregister()

		opts, err := selectorOptions(cursor)
		if err != nil {
			return err
		}

		approved, err := ui.SelectApproval(opts...)
		if err != nil {
			return err
		}
		printValue(cmd, approved)
		if !approved {
			return ui.ErrQuit
		}
		return nil
	},
}

// choicesFromArgs turns positional arguments into plain choices, falling
// back to the demo list.
func choicesFromArgs(args []string) []ui.Displayable {
	if len(args) > 0 {
		return ui.PlainChoices(args...)
	}
	return demoChoices()
}

func demoChoices() []ui.Displayable {
	choices := ui.PlainChoices(1, 2, 3, 4)
	return append(choices,
		ui.MustChoice(5, "five", "f", "red", "bold"),
		ui.MustChoice(6, "six", "[x]", "yellow", "italic"),
	)
}

func init() {
	selectCmd.Flags().BoolVar(&selectSkip, "skip", false, "Append a [s]kip row")
	selectCmd.Flags().BoolVar(&selectQuit, "quit", false, "Append a [q]uit row")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(manyCmd)
	rootCmd.AddCommand(approveCmd)
}
