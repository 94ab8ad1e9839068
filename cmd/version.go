package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the promptkit version, the Go runtime it was built with and,
when available, the build date and git commit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo(cmd.OutOrStdout())
	},
}

// These variables are set at build time using -ldflags
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = ""
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("promptkit version {{.Version}}\n")
}

func printVersionInfo(out io.Writer) {
	fmt.Fprintf(out, "promptkit version %s\n", version)
	if buildDate != "unknown" {
		fmt.Fprintf(out, "Build date: %s\n", buildDate)
	}
	if gitCommit != "" {
		fmt.Fprintf(out, "Git commit: %s\n", gitCommit)
	}
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(out, "Module: %s\n", info.Main.Path)
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			fmt.Fprintf(out, "Module version: %s\n", info.Main.Version)
		}
	}
	fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
