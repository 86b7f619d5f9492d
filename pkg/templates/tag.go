package templates

import (
	"strings"

	"github.com/arthur-debert/templates/pkg/errors"
)

// ParseTag splits an entry name of the form "[tag]displayName".
// The tag is the text strictly between the first '[' and the first ']'.
// Names missing either bracket, or whose first ']' comes before the first
// '[', fail with ErrMalformedTemplateName.
func ParseTag(name string) (tag string, displayName string, err error) {
	open := strings.IndexByte(name, '[')
	closing := strings.IndexByte(name, ']')

	if open < 0 || closing < 0 {
		return "", "", errors.Newf(errors.ErrMalformedTemplateName,
			"template name %q must look like [page]filename", name).
			WithDetail("name", name)
	}
	if closing < open {
		return "", "", errors.Newf(errors.ErrMalformedTemplateName,
			"template name %q closes its tag before opening it", name).
			WithDetail("name", name)
	}

	return name[open+1 : closing], name[closing+1:], nil
}
