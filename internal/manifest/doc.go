// Package manifest handles the dashgen.yaml scaffold manifest: the file that
// records a project's root, service list, library list, and ecosystem. It
// parses the YAML, validates it against the embedded JSON Schema, and gates
// the manifest version with a semver constraint.
package manifest
