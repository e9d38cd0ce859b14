// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	ManifestName string `yaml:"manifest_name"`
	GoModule     string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "dashgen",
			DisplayName:  "Dash Scaffold",
			Description:  "Scaffold generator for the Project Dash service monorepo",
			EnvPrefix:    "DASHGEN",
			ManifestName: "dashgen",
			GoModule:     "github.com/Dash-ajou/dashgen",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "dashgen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "DASHGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ManifestName returns the scaffold manifest base name without extension
// (e.g., "dashgen" for dashgen.yaml).
func ManifestName() string { load(); return defaults.ManifestName }

// ManifestFile returns the scaffold manifest file name (e.g., "dashgen.yaml").
func ManifestFile() string { return ManifestName() + ".yaml" }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("root") → "DASHGEN_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
