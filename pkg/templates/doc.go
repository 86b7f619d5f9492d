// Package templates locates tagged template files inside a templates root.
//
// A template file is named "[<tag>]<displayName>", for example
// "[readme]CONTRIBUTING.md". The tag selects which page the file serves;
// the display name is what the file is called once copied out.
//
// The package provides three scanners over a types.FS:
//
//   - ParseTag extracts tag and display name from a single entry name
//   - FindTemplate / FindTemplates resolve pages inside one project directory
//   - ListTemplates walks the root and one level below it, attaching the
//     bindings of every project var file
//
// Directory listing order is whatever the filesystem returns. When two
// files carry the same tag, which one FindTemplate returns is unspecified.
package templates
