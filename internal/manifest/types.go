package manifest

// Manifest is the content of dashgen.yaml. Nil slices and empty strings
// mean "not set"; an explicit empty list (services: []) is kept as a
// non-nil empty slice.
type Manifest struct {
	Version   string   `yaml:"version" json:"version"`
	Root      string   `yaml:"root,omitempty" json:"root,omitempty"`
	Services  []string `yaml:"services" json:"services,omitempty"`
	Libs      []string `yaml:"libs" json:"libs,omitempty"`
	Ecosystem string   `yaml:"ecosystem,omitempty" json:"ecosystem,omitempty"`
}

// New returns a manifest at the current version.
func New(root string, services, libs []string, ecosystem string) *Manifest {
	return &Manifest{
		Version:   CurrentVersion,
		Root:      root,
		Services:  append([]string{}, services...),
		Libs:      append([]string{}, libs...),
		Ecosystem: ecosystem,
	}
}

// Settings returns the keys the manifest sets, for merging into layered
// configuration.
func (m *Manifest) Settings() map[string]any {
	s := make(map[string]any)
	if m.Root != "" {
		s["root"] = m.Root
	}
	if m.Services != nil {
		s["services"] = append([]string{}, m.Services...)
	}
	if m.Libs != nil {
		s["libs"] = append([]string{}, m.Libs...)
	}
	if m.Ecosystem != "" {
		s["ecosystem"] = m.Ecosystem
	}
	return s
}
