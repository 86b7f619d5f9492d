// Package style renders command results for the terminal. Output to a TTY is
// styled with lipgloss; anything else gets plain text that is safe to pipe.
package style
