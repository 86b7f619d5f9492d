// Package paths provides path handling for templates.
//
// It handles:
//
//   - Home directory expansion of configured paths
//   - Project scope joins under the templates root
//   - Location of a project's var file
//   - Folder and file existence checks used before any scan
//
// The template core never resolves paths from the environment itself; the
// command layer calls into this package and hands resolved paths down.
package paths
