package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/templates/cmd/templates"
	"github.com/arthur-debert/templates/pkg/style"
)

func main() {
	rootCmd := templates.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.NewRenderer(os.Stderr).RenderError(err))
		os.Exit(1)
	}
}
