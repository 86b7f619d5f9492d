package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/templates/cmd/templates"
	"github.com/arthur-debert/templates/internal/version"
)

func main() {
	rootCmd := templates.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TEMPLATES",
		Section: "1",
		Source:  "templates " + version.Version,
		Manual:  "templates manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
