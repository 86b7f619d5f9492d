// Package clipboard pipes text into an external clipboard program such as
// xclip, wl-copy or pbcopy.
package clipboard

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/kballard/go-shellquote"
)

// Writer receives content destined for the clipboard
type Writer interface {
	Write(content string) error
}

// Command runs a clipboard program and writes content to its stdin.
type Command struct {
	Name string
	Args []string
}

// NewCommand splits a configured command line such as
// "xclip -selection clipboard" into program and arguments.
func NewCommand(commandLine string) (*Command, error) {
	words, err := shellquote.Split(commandLine)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrClipboard, "cannot parse clipboard command %q", commandLine).
			WithDetail("command", commandLine)
	}
	if len(words) == 0 {
		return nil, errors.New(errors.ErrClipboard, "clipboard command is empty")
	}
	return &Command{Name: words[0], Args: words[1:]}, nil
}

// Write runs the program with content on stdin and waits for it to exit.
func (c *Command) Write(content string) error {
	logger := logging.GetLogger("clipboard").With().
		Str("program", c.Name).
		Strs("args", c.Args).
		Logger()

	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(content)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrClipboard, "clipboard program %s failed", c.Name).
			WithDetail("command", c.Name).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}

	logger.Debug().Int("bytes", len(content)).Msg("Content sent to clipboard")
	return nil
}
