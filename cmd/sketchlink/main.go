package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sketchlink/internal/cli"
	"github.com/arthur-debert/sketchlink/pkg/display"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, display.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
