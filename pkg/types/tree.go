package types

// TreeNode is a single entry in the templates tree.
type TreeNode struct {
	// Name is the raw file or directory name
	Name string

	// Path is the location of the entry on disk
	Path string

	// IsDir is true for project directories
	IsDir bool

	// Tagged is true when Name carries a valid page tag; Tag and
	// DisplayName are only meaningful then
	Tagged      bool
	Tag         string
	DisplayName string

	// IsVariables marks a second-level entry named exactly "var"
	IsVariables bool

	// Bindings holds the parsed content of a var file
	Bindings []VariableBinding

	// Children holds the immediate entries of a directory (one level only)
	Children []TreeNode
}

// TreeReport is the nested listing of a templates root.
type TreeReport struct {
	Root    string
	Entries []TreeNode
}

// TemplateCount returns the number of tagged files across the whole report
func (r *TreeReport) TemplateCount() int {
	count := 0
	for _, entry := range r.Entries {
		if entry.Tagged {
			count++
		}
		for _, child := range entry.Children {
			if child.Tagged {
				count++
			}
		}
	}
	return count
}
