package filesystem

import (
	"unicode/utf8"

	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/types"
)

// ReadText reads a whole file as UTF-8 text.
// Any read failure is reported as ErrFileNotFound; bytes that are not
// valid UTF-8 are reported as ErrInvalidEncoding.
func ReadText(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileNotFound, "cannot read file %s", path).
			WithDetail("path", path)
	}
	if !utf8.Valid(data) {
		return "", errors.Newf(errors.ErrInvalidEncoding, "file %s is not valid UTF-8", path).
			WithDetail("path", path)
	}
	return string(data), nil
}
