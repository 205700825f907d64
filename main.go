// Package main is the entry point for the newsctl CLI
package main

import (
	"errors"
	"os"

	"github.com/mcnews-project/newsctl/cmd"
	"github.com/mcnews-project/newsctl/internal/output"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		var cliErr *output.CLIError
		if errors.As(err, &cliErr) {
			p := output.NewPrinterWithOptions(output.PrinterOptions{
				ColorMode:    output.ColorAuto,
				ConfigColors: true,
			})
			p.FormatError(cliErr)
			os.Exit(cliErr.ExitCode)
		}
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
