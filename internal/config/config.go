package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Dash-ajou/dashgen/internal/branding"
	"github.com/Dash-ajou/dashgen/internal/layout"
	"github.com/Dash-ajou/dashgen/internal/manifest"
)

// Setting keys. Each key doubles as the flag name and, upper-cased behind
// the env prefix, as the environment variable (e.g., DASHGEN_SERVICES).
const (
	KeyRoot      = "root"
	KeyServices  = "services"
	KeyLibs      = "libs"
	KeyEcosystem = "ecosystem"
)

// Defaults for Project Dash.
var (
	DefaultRoot     = "project-dash"
	DefaultServices = []string{"auth", "coupon", "partner", "vendor"}
	DefaultLibs     = []string{"common", "core_schemas"}
)

// Config is the effective scaffold configuration.
type Config struct {
	Root      string   `mapstructure:"root" yaml:"root" json:"root" validate:"rootpath"`
	Services  []string `mapstructure:"services" yaml:"services" json:"services" validate:"unique,dive,segment"`
	Libs      []string `mapstructure:"libs" yaml:"libs" json:"libs" validate:"unique,dive,segment"`
	Ecosystem string   `mapstructure:"ecosystem" yaml:"ecosystem" json:"ecosystem" validate:"ecosystem"`

	// Manifest is the manifest file that contributed values, or empty.
	Manifest string `mapstructure:"-" yaml:"-" json:"-"`
}

// Options controls where Load looks for values.
type Options struct {
	File  string         // Explicit manifest path; must exist when set
	Dir   string         // Directory searched for the manifest when File is empty
	Flags *pflag.FlagSet // Flags layered over everything else; may be nil
}

// Load resolves and validates the configuration.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyRoot, DefaultRoot)
	v.SetDefault(KeyServices, DefaultServices)
	v.SetDefault(KeyLibs, DefaultLibs)
	v.SetDefault(KeyEcosystem, layout.DefaultEcosystem)

	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	path, err := manifestPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(m.Settings()); err != nil {
			return nil, fmt.Errorf("merging manifest %s: %w", path, err)
		}
	}

	if opts.Flags != nil {
		for _, key := range []string{KeyRoot, KeyServices, KeyLibs, KeyEcosystem} {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", key, err)
				}
			}
		}
	}

	cfg := &Config{
		Root:      v.GetString(KeyRoot),
		Services:  stringList(v, KeyServices),
		Libs:      stringList(v, KeyLibs),
		Ecosystem: strings.ToLower(strings.TrimSpace(v.GetString(KeyEcosystem))),
		Manifest:  path,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Plan returns the project layout for the configuration.
func (c *Config) Plan() (*layout.Layout, error) {
	eco, err := layout.LookupEcosystem(c.Ecosystem)
	if err != nil {
		return nil, err
	}
	return layout.Plan(c.Root, c.Services, c.Libs, eco)
}

// ToManifest returns a manifest recording the configuration.
func (c *Config) ToManifest() *manifest.Manifest {
	return manifest.New(c.Root, c.Services, c.Libs, c.Ecosystem)
}

// manifestPath returns the manifest to read, or "" when there is none.
func manifestPath(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.File, err)
		}
		return opts.File, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, branding.ManifestFile())
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("checking for %s: %w", path, err)
	}
}

// stringList reads a list setting. Environment and flag values arrive as a
// single comma-separated string.
func stringList(v *viper.Viper, key string) []string {
	if s, ok := v.Get(key).(string); ok {
		return SplitList(s)
	}
	return v.GetStringSlice(key)
}

// SplitList splits a comma-separated list, trimming spaces and dropping
// empty items.
func SplitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
