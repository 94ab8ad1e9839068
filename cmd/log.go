package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alantheprice/promptkit/pkg/ui"
	"github.com/alantheprice/promptkit/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	logLines int
	logPage  int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the diagnostic log",
	Long: `Displays the last --lines entries of the promptkit log file, a page at
a time. After each page a yes/no prompt asks whether to continue.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := utils.LogFilePath()
		lines, err := tailLines(path, logLines)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "Log file not found at %s. No log entries yet.\n", path)
			return nil
		}
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Log file is empty.")
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Displaying last %d lines of %s:\n", len(lines), path)
		fmt.Fprintln(out, strings.Repeat("=", 80))
		return pageLines(out, lines, logPage, askMore)
	},
}

// tailLines returns at most the last n lines of the file at path.
func tailLines(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	return lines, nil
}

// pageLines writes lines in chunks of size, calling more between chunks.
// A false answer or a cancelled prompt stops paging.
func pageLines(out io.Writer, lines []string, size int, more func() (bool, error)) error {
	if size <= 0 {
		size = len(lines)
	}
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		for _, line := range lines[start:end] {
			fmt.Fprintln(out, line)
		}
		if end == len(lines) {
			break
		}
		ok, err := more()
		if ui.IsSignal(err) || (err == nil && !ok) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(out, strings.Repeat("=", 80))
	return nil
}

func askMore() (bool, error) {
	cursor, unregister := terminalCursor()
	defer unregister()

	opts, err := selectorOptions(cursor)
	if err != nil {
		return false, err
	}
	return ui.SelectApproval(append(opts, ui.WithHeader("Show more"))...)
}

func init() {
	logCmd.Flags().IntVar(&logLines, "lines", 1000, "Number of trailing lines to show (0 shows all)")
	logCmd.Flags().IntVar(&logPage, "page", 50, "Lines per page")
	rootCmd.AddCommand(logCmd)
}
