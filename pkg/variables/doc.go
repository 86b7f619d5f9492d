// Package variables implements flat {{KEY}} substitution driven by a
// line-oriented KEY=VALUE bindings file.
//
// Parsing is tolerant: a line contributes a binding only when it contains
// exactly one '='; anything else is skipped without error. Substitution is
// literal and sequential in file order, so a later binding for the same key
// sees the output of earlier ones, and values are never re-expanded.
//
// There is no escaping of literal "{{...}}" text and no case folding.
package variables
