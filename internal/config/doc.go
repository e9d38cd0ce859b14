// Package config resolves the scaffold settings from built-in defaults, the
// project manifest (dashgen.yaml), DASHGEN_* environment variables, and
// command-line flags, in increasing order of precedence.
package config
