// Package cli defines the Cobra command tree for the workscheck CLI. The root
// command runs every check; subcommands run a single check or inspect the
// settings. Commands resolve settings, delegate to internal/validate and map
// the outcome to an error so main can set the exit code.
package cli
