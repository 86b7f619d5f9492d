package templates

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// stdinIsTerminal gates interactive prompts; tests replace it
var stdinIsTerminal = func() bool {
	return isTerminal(os.Stdin)
}

// promptTemplatesPath asks for the templates folder; tests replace it
var promptTemplatesPath = func(defaultPath string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: MsgPromptPath,
		Help:    MsgPromptPathHelp,
		Default: defaultPath,
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", fmt.Errorf("cancelled")
		}
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
