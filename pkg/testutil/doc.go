// Package testutil provides utilities for testing templates components.
//
// Core packages (templates, variables) are tested against an in-memory
// afero filesystem from NewTestFS; command and CLI tests use real temp
// directories with CreateFile/CreateDir.
//
// Usage guidelines:
//   - Directory listings are unordered: sort before comparing
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
