package variables

import (
	"strings"

	"github.com/arthur-debert/templates/pkg/filesystem"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/types"
)

// ParseBindings parses the content of a var file.
// Lines are split on "\n" only; surrounding whitespace (including a trailing
// '\r') is trimmed from both key and value. Lines that do not split into
// exactly two fields on '=' and lines with an empty key are skipped.
func ParseBindings(content string) []types.VariableBinding {
	logger := logging.GetLogger("variables.parser")

	var bindings []types.VariableBinding
	for n, line := range strings.Split(content, "\n") {
		fields := strings.Split(line, "=")
		if len(fields) != 2 {
			if strings.TrimSpace(line) != "" {
				logger.Trace().Int("line", n+1).Int("fields", len(fields)).Msg("Skipping malformed binding line")
			}
			continue
		}

		key := strings.TrimSpace(fields[0])
		if key == "" {
			logger.Trace().Int("line", n+1).Msg("Skipping binding with empty key")
			continue
		}

		bindings = append(bindings, types.VariableBinding{
			Key:   key,
			Value: strings.TrimSpace(fields[1]),
		})
	}

	return bindings
}

// ListBindings parses a var file for display. It shares ParseBindings' rules.
func ListBindings(content string) []types.VariableBinding {
	return ParseBindings(content)
}

// Substitute replaces every {{key}} occurrence in target with its value,
// one binding at a time in the given order. It returns the new content and
// the number of bindings that replaced at least one occurrence.
// With duplicate keys the first binding wins: it consumes every occurrence
// and later bindings for the same key find nothing to replace.
func Substitute(target string, bindings []types.VariableBinding) (string, int) {
	applied := 0
	for _, binding := range bindings {
		placeholder := binding.Placeholder()
		if !strings.Contains(target, placeholder) {
			continue
		}
		target = strings.ReplaceAll(target, placeholder, binding.Value)
		applied++
	}
	return target, applied
}

// LoadBindings reads and parses the var file at path.
// An unreadable or non-UTF-8 file is a hard error.
func LoadBindings(fsys types.FS, path string) ([]types.VariableBinding, error) {
	content, err := filesystem.ReadText(fsys, path)
	if err != nil {
		return nil, err
	}
	return ParseBindings(content), nil
}
