// Package types defines the core types and interfaces used throughout templates.
// This includes the FS abstraction the scanners read through, as well as
// data structures like TemplateEntry, VariableBinding and TreeReport.
package types
