package layout

import (
	"fmt"
	"sort"
	"strings"
)

// Ecosystem resolves the language-specific file names of a scaffold.
type Ecosystem struct {
	Name              string // e.g., "python"
	ModuleExt         string // Extension for source modules, e.g., ".py"
	InitFile          string // Package initializer, e.g., "__init__.py"
	Entrypoint        string // Application entrypoint, e.g., "main.py"
	RouterFile        string // Versioned router module, e.g., "router.py"
	Requirements      string // Dependency manifest, e.g., "requirements.txt"
	PackageDescriptor string // Library packaging descriptor, e.g., "setup.py"
}

// Python is the profile used by the Project Dash FastAPI services.
var Python = Ecosystem{
	Name:              "python",
	ModuleExt:         ".py",
	InitFile:          "__init__.py",
	Entrypoint:        "main.py",
	RouterFile:        "router.py",
	Requirements:      "requirements.txt",
	PackageDescriptor: "setup.py",
}

var ecosystems = map[string]Ecosystem{
	Python.Name: Python,
}

// DefaultEcosystem is the profile name used when none is configured.
const DefaultEcosystem = "python"

// LookupEcosystem returns the registered profile with the given name.
func LookupEcosystem(name string) (Ecosystem, error) {
	eco, ok := ecosystems[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Ecosystem{}, fmt.Errorf("unknown ecosystem %q (available: %s)", name, strings.Join(EcosystemNames(), ", "))
	}
	return eco, nil
}

// EcosystemNames returns the registered profile names in sorted order.
func EcosystemNames() []string {
	names := make([]string, 0, len(ecosystems))
	for name := range ecosystems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
