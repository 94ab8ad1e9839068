package cmd

import (
	"fmt"
	"strconv"

	"github.com/alantheprice/promptkit/pkg/console"
	"github.com/spf13/cobra"
)

var (
	keysCount int
	keysRaw   bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the names of pressed keys",
	Long: `Reads --count keypresses and prints each one, either by name (up, f5,
ctrl-a) or, with --raw, as the quoted bytes the terminal sent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		decoder := console.NewStdinKeyDecoder()
		if !decoder.IsTerminal() {
			fmt.Fprintln(cmd.ErrOrStderr(), "stdin is not a terminal; reading bytes as sent")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Press %d keys\n", keysCount)
		for i := 0; i < keysCount; i++ {
			key, err := decoder.ReadKey(keysRaw)
			if err != nil {
				return fmt.Errorf("failed to read key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeKey(key, keysRaw))
		}
		return nil
	},
}

func describeKey(key console.Key, raw bool) string {
	if raw {
		return strconv.Quote(string(key))
	}
	if key.IsEscapeSequence() {
		return "unknown " + strconv.Quote(string(key))
	}
	return string(key)
}

func init() {
	keysCmd.Flags().IntVar(&keysCount, "count", 5, "Number of keys to read")
	keysCmd.Flags().BoolVar(&keysRaw, "raw", false, "Print raw sequences instead of key names")

	rootCmd.AddCommand(keysCmd)
}
