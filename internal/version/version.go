package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/templates/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/templates/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/templates/internal/version.Date={{.Date}}
)

// Info returns the multi-line build description printed by --version
func Info(name string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n", name, Version, Commit, Date)
}
