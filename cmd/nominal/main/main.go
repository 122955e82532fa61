package main

import (
	"fmt"
	"os"

	"github.com/vivienm/nominal/cmd/nominal"
	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/style"
	"github.com/vivienm/nominal/pkg/ui"
)

func main() {
	rootCmd := nominal.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		theme := style.NewTheme(style.NewRenderer(os.Stderr, ui.DetectFormat(os.Stderr) == ui.FormatTerminal))

		if errors.IsErrorCode(err, errors.ErrNotConfirmed) {
			fmt.Fprintln(os.Stderr, theme.Muted.Render(nominal.MsgAborted))
			os.Exit(1)
		}

		// Print the error in red
		fmt.Fprintln(os.Stderr, theme.Error.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(nominal.ExitCode(err))
	}
}
