package types

// ShowResult holds a resolved template and its content
type ShowResult struct {
	Template TemplateEntry
	Content  string
}

// CopiedTemplate records one template written out by the use command
type CopiedTemplate struct {
	Template    TemplateEntry
	Destination string

	// Skipped is set when the destination existed and force was off
	Skipped bool
}

// UseResult is the outcome of copying several pages into a destination
type UseResult struct {
	Project     string
	Destination string
	Copied      []CopiedTemplate
	NotFound    []string
	DryRun      bool
}

// CopiedCount returns how many templates were (or would be) written
func (r *UseResult) CopiedCount() int {
	count := 0
	for _, c := range r.Copied {
		if !c.Skipped {
			count++
		}
	}
	return count
}

// VariablesResult lists the bindings of one project's var file
type VariablesResult struct {
	Path     string
	Bindings []VariableBinding
}

// ApplyResult is the outcome of substituting bindings into a file
type ApplyResult struct {
	Path          string
	VariablesPath string
	Bindings      int
	Applied       int
	Content       string
	DryRun        bool
}
