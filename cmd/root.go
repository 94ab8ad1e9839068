package cmd

import (
	"errors"
	"fmt"

	"github.com/alantheprice/promptkit/pkg/configuration"
	"github.com/alantheprice/promptkit/pkg/console"
	"github.com/alantheprice/promptkit/pkg/ui"
	"github.com/alantheprice/promptkit/pkg/utils"
	"github.com/spf13/cobra"
)

// Exit codes for the user-driven outcomes.
const (
	ExitCancelled = 130
	ExitQuit      = 1
)

var (
	configPath string
	asciiMode  bool
	eraseMode  bool
	header     string
)

// cleanup restores the cursor if the process is terminated mid-prompt.
var cleanup = console.NewCleanupHandler()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "promptkit",
	Short: "Terminal selection prompts and progress bars",
	Long: `promptkit draws single and multiple choice prompts and progress bars
directly in the terminal, redrawing only the cells that change.

Available commands:
  select   - pick one of the given choices
  many     - pick any number of the given choices
  approve  - answer a yes/no question
  progress - run a demo progress bar
  keys     - print the names of pressed keys
  styles   - show the style table and glyph sets`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	cleanup.Install()
	defer cleanup.Stop()
	defer cleanup.EnsureCleanup()

	return rootCmd.Execute()
}

// ExitCode maps an Execute error onto the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, ui.ErrSkipped):
		return 0
	case errors.Is(err, ui.ErrCancelled):
		return ExitCancelled
	case errors.Is(err, ui.ErrQuit):
		return ExitQuit
	default:
		return 1
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.promptkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&asciiMode, "ascii", false, "Draw with ASCII glyphs only")
	rootCmd.PersistentFlags().BoolVar(&eraseMode, "erase", false, "Clear the screen around the prompt")
	rootCmd.PersistentFlags().StringVar(&header, "header", "", "Header drawn above the prompt")
}

// loadUIConfig resolves the prompt appearance from the config file, the
// global flags and the environment.
func loadUIConfig() (ui.Config, error) {
	config, err := loadConfig()
	if err != nil {
		return ui.Config{}, err
	}

	config.ASCII = config.ASCII || asciiMode
	config.EraseScreen = config.EraseScreen || eraseMode

	cfg, err := config.Apply(ui.DefaultConfig())
	if err != nil {
		return ui.Config{}, err
	}
	return configuration.ApplyEnvironment(cfg), nil
}

// loadConfig reads --config, or the default config file.
func loadConfig() (*configuration.Config, error) {
	if configPath != "" {
		return configuration.LoadFrom(configPath)
	}
	return configuration.Load()
}

// terminalCursor returns a stdout cursor whose visibility is restored by
// the cleanup handler. The returned func unregisters it.
func terminalCursor() (*console.Cursor, func()) {
	cursor := console.NewTerminalCursor()
	unregister := cleanup.Register(cursor.Show)
	return cursor, unregister
}

// selectorOptions builds the options shared by the prompt commands.
func selectorOptions(cursor *console.Cursor) ([]ui.SelectorOption, error) {
	cfg, err := loadUIConfig()
	if err != nil {
		return nil, err
	}
	return []ui.SelectorOption{
		ui.WithConfig(cfg),
		ui.WithHeader(header),
		ui.WithCursor(cursor),
		ui.WithKeyReader(console.NewStdinKeyDecoder()),
		ui.WithLogger(utils.GetLogger()),
	}, nil
}

func printValue(cmd *cobra.Command, value any) {
	fmt.Fprintln(cmd.OutOrStdout(), value)
}
