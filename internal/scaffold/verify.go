package scaffold

import (
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"github.com/Dash-ajou/dashgen/internal/layout"
)

// Status is the verification outcome for a single entry.
type Status int

const (
	StatusOK Status = iota
	StatusMissing
	StatusWrongKind
	StatusNotEmpty
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusWrongKind:
		return "wrong type"
	case StatusNotEmpty:
		return "not empty"
	default:
		return "unknown"
	}
}

// Finding is the verification result for one layout entry.
type Finding struct {
	Entry  layout.Entry
	Status Status
	Size   int64 // File size, set for StatusNotEmpty
}

// Report collects the findings of a Verify run in layout order.
type Report struct {
	Root     string
	Findings []Finding
}

// Problems returns every finding that is not StatusOK.
func (r *Report) Problems() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Status != StatusOK {
			out = append(out, f)
		}
	}
	return out
}

// Healthy reports whether the tree matches the layout exactly.
func (r *Report) Healthy() bool { return len(r.Problems()) == 0 }

// Incomplete reports whether any entry is missing or has the wrong type.
// Non-empty files alone do not make a tree incomplete.
func (r *Report) Incomplete() bool {
	return r.Count(StatusMissing)+r.Count(StatusWrongKind) > 0
}

// Count returns the number of findings with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, f := range r.Findings {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Verify checks an existing tree against l without modifying it. Missing,
// mistyped, and non-empty entries are reported as findings; the error return
// is reserved for stat failures other than "does not exist".
func (g *Generator) Verify(l *layout.Layout) (*Report, error) {
	rep := &Report{Root: l.Root}

	for _, e := range l.Entries() {
		full := resolve(l.Root, e.Path)
		shown := display(l.Root, e.Path)

		info, err := g.fs.Stat(full)
		if errors.Is(err, fs.ErrNotExist) {
			rep.Findings = append(rep.Findings, Finding{Entry: e, Status: StatusMissing})
			g.out.Miss("%s does not exist", shown)
			continue
		}
		if err != nil {
			return rep, &OpError{Op: OpStat, Path: full, Err: err}
		}

		switch {
		case (e.Kind == layout.KindDir) != info.IsDir():
			rep.Findings = append(rep.Findings, Finding{Entry: e, Status: StatusWrongKind})
			g.out.Fail("%s exists but is not a %s", shown, e.Kind)
		case e.Kind == layout.KindFile && info.Size() > 0:
			rep.Findings = append(rep.Findings, Finding{Entry: e, Status: StatusNotEmpty, Size: info.Size()})
			g.out.Warn("%s is not empty (%d bytes)", shown, info.Size())
		default:
			rep.Findings = append(rep.Findings, Finding{Entry: e, Status: StatusOK})
			if g.verbose {
				g.out.OK("%s", shown)
			}
		}
	}

	g.log.Debug("verify finished",
		zap.String("root", l.Root),
		zap.Int("entries", len(rep.Findings)),
		zap.Int("problems", len(rep.Problems())))
	return rep, nil
}
