package layout

import (
	"path"
	"sort"
)

// Top-level directory names.
const (
	ServicesDir = "services"
	LibsDir     = "libs"
)

// Root-level placeholder files.
var rootFiles = []string{".gitignore", "docker-compose.yml", "README.md"}

// Kind distinguishes directories from files.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Scope identifies which part of the project produced an entry.
type Scope string

const (
	ScopeProject Scope = "project"
	ScopeService Scope = "service"
	ScopeLibrary Scope = "library"
)

// Entry is a single directory or file in the skeleton.
type Entry struct {
	Path  string // Slash-separated, relative to the root; "." is the root itself
	Kind  Kind
	Scope Scope
	Owner string // Service or library name; empty for project entries
}

// Group is a contiguous run of entries produced by the same owner.
type Group struct {
	Scope   Scope
	Name    string
	Entries []Entry
}

// Layout is the ordered skeleton of a project.
type Layout struct {
	Root      string
	Ecosystem Ecosystem
	Services  []string
	Libs      []string
	Groups    []Group
}

// Plan validates the inputs and returns the layout they describe. All names
// are checked before anything is returned, so callers never act on a
// partially valid plan.
func Plan(root string, services, libs []string, eco Ecosystem) (*Layout, error) {
	if err := ValidateRoot(root); err != nil {
		return nil, err
	}
	if err := validateList(KindService, services); err != nil {
		return nil, err
	}
	if err := validateList(KindLibrary, libs); err != nil {
		return nil, err
	}
	for _, lib := range libs {
		if err := ValidateLibrary(lib, eco); err != nil {
			return nil, err
		}
	}

	l := &Layout{
		Root:      root,
		Ecosystem: eco,
		Services:  append([]string(nil), services...),
		Libs:      append([]string(nil), libs...),
	}

	l.Groups = append(l.Groups, projectGroup())
	for _, s := range services {
		l.Groups = append(l.Groups, serviceGroup(s, eco))
	}
	l.Groups = append(l.Groups, libsIndexGroup(eco))
	for _, lib := range libs {
		l.Groups = append(l.Groups, libraryGroup(lib, eco))
	}

	return l, nil
}

func validateList(kind string, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if err := ValidateName(kind, name); err != nil {
			return err
		}
		if seen[name] {
			return &InvalidNameError{Kind: kind, Name: name, Reason: "listed more than once"}
		}
		seen[name] = true
	}
	return nil
}

func projectGroup() Group {
	g := Group{Scope: ScopeProject}
	add := func(p string, k Kind) {
		g.Entries = append(g.Entries, Entry{Path: p, Kind: k, Scope: ScopeProject})
	}
	add(".", KindDir)
	for _, f := range rootFiles {
		add(f, KindFile)
	}
	add(ServicesDir, KindDir)
	return g
}

// serviceGroup lists a service subtree. Directories precede the files they hold.
func serviceGroup(name string, eco Ecosystem) Group {
	base := path.Join(ServicesDir, name)
	g := Group{Scope: ScopeService, Name: name}
	add := func(p string, k Kind) {
		g.Entries = append(g.Entries, Entry{Path: path.Join(base, p), Kind: k, Scope: ScopeService, Owner: name})
	}

	add(".", KindDir)
	packages := []string{"app", "app/api", "app/api/v1", "app/domain", "app/core", "app/db", "tests"}
	for _, dir := range packages {
		add(dir, KindDir)
	}
	for _, dir := range packages {
		add(path.Join(dir, eco.InitFile), KindFile)
	}

	add(path.Join("app", eco.Entrypoint), KindFile)
	add(path.Join("app/api/v1", eco.RouterFile), KindFile)
	add(".env.example", KindFile)
	add("Dockerfile", KindFile)
	add(eco.Requirements, KindFile)

	for _, suffix := range DomainSuffixes {
		add(path.Join("app/domain", DomainFileName(name, suffix, eco)), KindFile)
	}
	return g
}

func libsIndexGroup(eco Ecosystem) Group {
	return Group{
		Scope: ScopeProject,
		Entries: []Entry{
			{Path: LibsDir, Kind: KindDir, Scope: ScopeProject},
			{Path: path.Join(LibsDir, eco.InitFile), Kind: KindFile, Scope: ScopeProject},
		},
	}
}

func libraryGroup(name string, eco Ecosystem) Group {
	base := path.Join(LibsDir, name)
	return Group{
		Scope: ScopeLibrary,
		Name:  name,
		Entries: []Entry{
			{Path: base, Kind: KindDir, Scope: ScopeLibrary, Owner: name},
			{Path: path.Join(base, eco.InitFile), Kind: KindFile, Scope: ScopeLibrary, Owner: name},
			{Path: path.Join(base, eco.PackageDescriptor), Kind: KindFile, Scope: ScopeLibrary, Owner: name},
		},
	}
}

// Entries returns every entry in creation order.
func (l *Layout) Entries() []Entry {
	var all []Entry
	for _, g := range l.Groups {
		all = append(all, g.Entries...)
	}
	return all
}

// Paths returns the root-relative paths of all entries except the root
// itself, in creation order.
func (l *Layout) Paths() []string {
	var paths []string
	for _, e := range l.Entries() {
		if e.Path == "." {
			continue
		}
		paths = append(paths, e.Path)
	}
	return paths
}

// SortedPaths returns Paths in lexical order.
func (l *Layout) SortedPaths() []string {
	paths := l.Paths()
	sort.Strings(paths)
	return paths
}

// Count returns the number of directories and files in the layout,
// the root included.
func (l *Layout) Count() (dirs, files int) {
	for _, e := range l.Entries() {
		if e.Kind == KindDir {
			dirs++
		} else {
			files++
		}
	}
	return dirs, files
}
