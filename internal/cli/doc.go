// Package cli defines the Cobra command tree for the dashgen CLI. Each file
// registers one top-level command (generate, plan, verify, config, version)
// with the root command. Commands resolve configuration, then delegate to the
// layout and scaffold packages and only handle flags and output.
package cli
