package layout

import (
	"fmt"
	"strings"
	"unicode"
)

// Name kinds reported in InvalidNameError.
const (
	KindRoot    = "root"
	KindService = "service"
	KindLibrary = "library"
)

// maxNameLen matches the common NAME_MAX of POSIX filesystems.
const maxNameLen = 255

// Domain file suffixes produced for every service.
const (
	SuffixRouter  = "router"
	SuffixService = "service"
	SuffixSchemas = "schemas"
)

// DomainSuffixes lists the per-service domain files in creation order.
var DomainSuffixes = []string{SuffixRouter, SuffixService, SuffixSchemas}

// InvalidNameError reports a service, library, or root name that would
// produce a malformed path.
type InvalidNameError struct {
	Kind   string
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Kind, e.Name, e.Reason)
}

// DomainFileName returns the domain module name for a service, e.g.
// DomainFileName("auth", "router", Python) → "auth_router.py".
func DomainFileName(service, suffix string, eco Ecosystem) string {
	return service + "_" + suffix + eco.ModuleExt
}

// ValidateName checks that a service or library name is a single, plain
// path segment.
func ValidateName(kind, name string) error {
	reason := nameProblem(name)
	if reason == "" {
		return nil
	}
	return &InvalidNameError{Kind: kind, Name: name, Reason: reason}
}

// ValidateLibrary checks a library name against the ecosystem. Libraries
// share libs/ with the package initializer, so a library may not take its
// name.
func ValidateLibrary(name string, eco Ecosystem) error {
	if err := ValidateName(KindLibrary, name); err != nil {
		return err
	}
	if name == eco.InitFile {
		return &InvalidNameError{Kind: KindLibrary, Name: name, Reason: "collides with the libs package initializer"}
	}
	return nil
}

// ValidateRoot checks the root directory. Unlike service and library names
// the root may contain separators (e.g., "out/project-dash").
func ValidateRoot(root string) error {
	switch {
	case strings.TrimSpace(root) == "":
		return &InvalidNameError{Kind: KindRoot, Name: root, Reason: "must not be empty"}
	case strings.ContainsRune(root, 0):
		return &InvalidNameError{Kind: KindRoot, Name: root, Reason: "must not contain NUL bytes"}
	}
	for _, r := range root {
		if unicode.IsControl(r) {
			return &InvalidNameError{Kind: KindRoot, Name: root, Reason: "must not contain control characters"}
		}
	}
	return nil
}

func nameProblem(name string) string {
	switch {
	case name == "":
		return "must not be empty"
	case strings.TrimSpace(name) != name:
		return "must not have leading or trailing whitespace"
	case name == "." || name == "..":
		return "must not be a relative path element"
	case len(name) > maxNameLen:
		return fmt.Sprintf("must be at most %d bytes", maxNameLen)
	case strings.ContainsAny(name, `/\`):
		return "must not contain path separators"
	case strings.ContainsRune(name, 0):
		return "must not contain NUL bytes"
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "must not contain control characters"
		}
	}
	return ""
}
