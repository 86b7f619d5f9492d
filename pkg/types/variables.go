package types

// VariableBinding is one KEY=VALUE line of a project's var file.
type VariableBinding struct {
	Key   string
	Value string
}

// Placeholder returns the literal text replaced by this binding
func (b VariableBinding) Placeholder() string {
	return "{{" + b.Key + "}}"
}
