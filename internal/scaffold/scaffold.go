package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Dash-ajou/dashgen/internal/layout"
	"github.com/Dash-ajou/dashgen/internal/ui"
)

// Permissions for created entries.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Options configures a Generator. Zero values fall back to the OS
// filesystem, discarded output, and a no-op logger.
type Options struct {
	Fs      afero.Fs
	Printer *ui.Printer
	Logger  *zap.Logger
	Verbose bool // print a line for every path, not only per service/library
}

// Generator creates and checks project skeletons.
type Generator struct {
	fs      afero.Fs
	out     *ui.Printer
	log     *zap.Logger
	verbose bool
}

// Result holds the outcome of a Generate run. On failure it still lists
// everything that was created or skipped before the halt.
type Result struct {
	Root    string
	Created []string
	Skipped []string
	Failure *OpError
}

// Complete reports whether the run finished without a failure.
func (r *Result) Complete() bool { return r.Failure == nil }

// New returns a Generator.
func New(opts Options) *Generator {
	g := &Generator{
		fs:      opts.Fs,
		out:     opts.Printer,
		log:     opts.Logger,
		verbose: opts.Verbose,
	}
	if g.fs == nil {
		g.fs = afero.NewOsFs()
	}
	if g.out == nil {
		g.out = ui.NewPrinter(io.Discard, false)
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	return g
}

// Generate materializes l. Entries are processed in layout order; the first
// failure stops the run and is returned both as the error and in
// Result.Failure. Nothing created before the failure is removed.
func (g *Generator) Generate(ctx context.Context, l *layout.Layout) (*Result, error) {
	res := &Result{Root: l.Root}
	g.log.Debug("scaffold started",
		zap.String("root", l.Root),
		zap.Strings("services", l.Services),
		zap.Strings("libs", l.Libs))

	for _, group := range l.Groups {
		for _, e := range group.Entries {
			if err := ctx.Err(); err != nil {
				g.log.Warn("scaffold interrupted", zap.String("next", e.Path))
				return res, fmt.Errorf("scaffold interrupted before %s: %w", e.Path, err)
			}

			created, err := g.ensure(l.Root, e)
			if err != nil {
				fields := []zap.Field{zap.String("path", e.Path), zap.Error(err)}
				var opErr *OpError
				if errors.As(err, &opErr) {
					res.Failure = opErr
					fields = append(fields, zap.String("op", opErr.Op))
				}
				g.log.Error("scaffold halted", fields...)
				return res, err
			}
			if created {
				res.Created = append(res.Created, e.Path)
			} else {
				res.Skipped = append(res.Skipped, e.Path)
			}
		}

		switch group.Scope {
		case layout.ScopeService:
			g.out.Step("Scaffolded service: %s", group.Name)
			g.log.Info("service scaffolded", zap.String("service", group.Name))
		case layout.ScopeLibrary:
			g.out.Step("Scaffolded library: %s", group.Name)
			g.log.Info("library scaffolded", zap.String("lib", group.Name))
		}
	}

	g.out.Println("")
	g.out.Heading("Project skeleton ready at %s", l.Root)
	g.out.Println("  %d created, %d already present", len(res.Created), len(res.Skipped))
	return res, nil
}

// ensure creates a single entry if it is missing. It returns false when the
// entry already existed with the right type.
func (g *Generator) ensure(root string, e layout.Entry) (bool, error) {
	full := resolve(root, e.Path)

	info, err := g.fs.Stat(full)
	switch {
	case err == nil:
		if (e.Kind == layout.KindDir) != info.IsDir() {
			return false, &OpError{Op: opFor(e.Kind), Path: full,
				Err: fmt.Errorf("%w: expected %s", ErrKindConflict, e.Kind)}
		}
		if g.verbose {
			g.out.Skip("%s already exists", display(root, e.Path))
		}
		g.log.Debug("skipped existing", zap.String("path", full), zap.Stringer("kind", e.Kind))
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, &OpError{Op: OpStat, Path: full, Err: err}
	}

	if e.Kind == layout.KindDir {
		if err := g.fs.MkdirAll(full, DirPerm); err != nil {
			return false, &OpError{Op: OpMkdir, Path: full, Err: err}
		}
	} else {
		f, err := g.fs.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
		if err != nil {
			return false, &OpError{Op: OpCreate, Path: full, Err: err}
		}
		if err := f.Close(); err != nil {
			return false, &OpError{Op: OpCreate, Path: full, Err: err}
		}
	}

	if g.verbose {
		g.out.OK("Created %s", display(root, e.Path))
	}
	g.log.Debug("created", zap.String("path", full), zap.Stringer("kind", e.Kind))
	return true, nil
}

func opFor(k layout.Kind) string {
	if k == layout.KindDir {
		return OpMkdir
	}
	return OpCreate
}

// resolve joins a slash-separated layout path onto the root.
func resolve(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// display renders an entry path for progress output.
func display(root, rel string) string {
	if rel == "." {
		return root
	}
	return filepath.ToSlash(filepath.Join(root, filepath.FromSlash(rel)))
}
