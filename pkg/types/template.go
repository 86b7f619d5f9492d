package types

// TemplateEntry is a tagged file found while scanning a project directory.
// Entries are transient: they live only as long as the scan result holding them.
type TemplateEntry struct {
	// Tag is the text between the first '[' and the first ']' of the file name
	Tag string

	// DisplayName is the file name with the bracketed tag removed
	DisplayName string

	// Path is the location of the file on disk
	Path string
}

// FindTemplatesResult holds the outcome of a multi-page resolution.
// Pages without any match are reported in NotFound rather than as an error.
type FindTemplatesResult struct {
	Matches  []TemplateEntry
	NotFound []string
}

// HasMissing reports whether any requested page went unmatched
func (r *FindTemplatesResult) HasMissing() bool {
	return len(r.NotFound) > 0
}
