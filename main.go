package main

import (
	"os"

	"github.com/alantheprice/promptkit/cmd"
	"github.com/alantheprice/promptkit/pkg/ui"
	"github.com/alantheprice/promptkit/pkg/utils"
)

func main() {
	logger := utils.GetLogger()

	err := cmd.Execute()
	if err != nil && cmd.ExitCode(err) != 0 {
		logger.Logf("Application error: %v", err)
		if !ui.IsSignal(err) {
			os.Stderr.WriteString("Error: " + err.Error() + "\n")
		}
	}

	if closeErr := logger.Close(); closeErr != nil {
		os.Stderr.WriteString("Error closing logger: " + closeErr.Error() + "\n")
	}
	os.Exit(cmd.ExitCode(err))
}
