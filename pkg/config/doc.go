// Package config handles the templates configuration file.
// It loads the JSON document (creating it with defaults on first use),
// layers TEMPLATES_CLI_* environment overrides on top, and saves updates
// made by the set command.
package config
