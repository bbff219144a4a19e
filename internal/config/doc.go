// Package config resolves workscheck settings. Values come from, in order of
// precedence: command-line overrides, WORKSCHECK_* environment variables, the
// optional project config file (.workscheck.yaml in the working directory)
// and built-in defaults.
package config
