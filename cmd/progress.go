package cmd

import (
	"fmt"
	"time"

	"github.com/alantheprice/promptkit/pkg/ui"
	"github.com/alantheprice/promptkit/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	progressTotal int
	progressWidth int
	progressDelay time.Duration
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Run a demo progress bar",
	Long: `Processes --total dummy items, sleeping --delay on each, while drawing a
progress bar. The bar width follows the terminal unless --width is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if progressTotal <= 0 {
			return fmt.Errorf("%w: --total must be positive", ui.ErrUsage)
		}

		cfg, err := loadUIConfig()
		if err != nil {
			return err
		}
		cursor, unregister := terminalCursor()
		defer unregister()

		bar := ui.NewProgress(
			ui.WithWidth(progressWidth),
			ui.WithProgressHeader(header),
			ui.WithProgressConfig(cfg),
			ui.WithProgressCursor(cursor),
			ui.WithProgressLogger(utils.GetLogger()),
		)

		items := make([]int, progressTotal)
		return ui.ProcessSlice(bar, items, func(int) error {
			time.Sleep(progressDelay)
			return nil
		})
	},
}

func init() {
	progressCmd.Flags().IntVar(&progressTotal, "total", 100, "Number of items to process")
	progressCmd.Flags().IntVar(&progressWidth, "width", 0, "Line width in cells (0 uses the terminal width)")
	progressCmd.Flags().DurationVar(&progressDelay, "delay", 20*time.Millisecond, "Time spent on each item")

	rootCmd.AddCommand(progressCmd)
}
