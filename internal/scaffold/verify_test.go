package scaffold

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dash-ajou/dashgen/internal/ui"
)

func TestVerifyFreshTree(t *testing.T) {
	memFs := afero.NewMemMapFs()
	l := mustPlan(t, "root", []string{"auth", "coupon"}, []string{"common"})
	g := New(Options{Fs: memFs})

	_, err := g.Generate(context.Background(), l)
	require.NoError(t, err)

	rep, err := g.Verify(l)
	require.NoError(t, err)
	assert.True(t, rep.Healthy())
	assert.False(t, rep.Incomplete())
	assert.Len(t, rep.Findings, len(l.Entries()))
	assert.Equal(t, len(l.Entries()), rep.Count(StatusOK))
}

func TestVerifyEmptyTarget(t *testing.T) {
	var out bytes.Buffer
	g := New(Options{Fs: afero.NewMemMapFs(), Printer: ui.NewPrinter(&out, false)})
	l := mustPlan(t, "root", []string{"auth"}, nil)

	rep, err := g.Verify(l)
	require.NoError(t, err)
	assert.True(t, rep.Incomplete())
	assert.Equal(t, len(l.Entries()), rep.Count(StatusMissing))
	assert.Contains(t, out.String(), "[MISS] root does not exist")
}

func TestVerifyFindsProblems(t *testing.T) {
	memFs := afero.NewMemMapFs()
	l := mustPlan(t, "root", []string{"auth"}, []string{"common"})
	var out bytes.Buffer
	g := New(Options{Fs: memFs, Printer: ui.NewPrinter(&out, false)})

	_, err := g.Generate(context.Background(), l)
	require.NoError(t, err)
	out.Reset()

	router := filepath.Join("root", "services", "auth", "app", "domain", "auth_router.py")
	require.NoError(t, memFs.Remove(router))

	main := filepath.Join("root", "services", "auth", "app", "main.py")
	require.NoError(t, afero.WriteFile(memFs, main, []byte("app = FastAPI()\n"), 0644))

	setup := filepath.Join("root", "libs", "common", "setup.py")
	require.NoError(t, memFs.Remove(setup))
	require.NoError(t, memFs.Mkdir(setup, 0755))

	rep, err := g.Verify(l)
	require.NoError(t, err)
	assert.False(t, rep.Healthy())
	assert.True(t, rep.Incomplete())
	assert.Equal(t, 1, rep.Count(StatusMissing))
	assert.Equal(t, 1, rep.Count(StatusNotEmpty))
	assert.Equal(t, 1, rep.Count(StatusWrongKind))
	require.Len(t, rep.Problems(), 3)

	for _, f := range rep.Problems() {
		switch f.Status {
		case StatusMissing:
			assert.Equal(t, "services/auth/app/domain/auth_router.py", f.Entry.Path)
		case StatusNotEmpty:
			assert.Equal(t, "services/auth/app/main.py", f.Entry.Path)
			assert.EqualValues(t, len("app = FastAPI()\n"), f.Size)
		case StatusWrongKind:
			assert.Equal(t, "libs/common/setup.py", f.Entry.Path)
		}
	}

	output := out.String()
	assert.Contains(t, output, "[MISS] root/services/auth/app/domain/auth_router.py does not exist")
	assert.Contains(t, output, "[WARN] root/services/auth/app/main.py is not empty (16 bytes)")
	assert.Contains(t, output, "[FAIL] root/libs/common/setup.py exists but is not a file")
}

func TestVerifyNonEmptyIsNotIncomplete(t *testing.T) {
	memFs := afero.NewMemMapFs()
	l := mustPlan(t, "root", nil, nil)
	g := New(Options{Fs: memFs})

	_, err := g.Generate(context.Background(), l)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(memFs, filepath.Join("root", "README.md"), []byte("hi"), 0644))

	rep, err := g.Verify(l)
	require.NoError(t, err)
	assert.False(t, rep.Healthy())
	assert.False(t, rep.Incomplete())
}

func TestVerifyThenRepair(t *testing.T) {
	memFs := afero.NewMemMapFs()
	l := mustPlan(t, "root", []string{"auth"}, nil)
	g := New(Options{Fs: memFs})

	_, err := g.Generate(context.Background(), l)
	require.NoError(t, err)
	require.NoError(t, memFs.RemoveAll(filepath.Join("root", "services", "auth", "tests")))

	rep, err := g.Verify(l)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Count(StatusMissing))

	res, err := g.Generate(context.Background(), l)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"services/auth/tests", "services/auth/tests/__init__.py"}, res.Created)

	rep, err = g.Verify(l)
	require.NoError(t, err)
	assert.True(t, rep.Healthy())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "missing", StatusMissing.String())
	assert.Equal(t, "not empty", StatusNotEmpty.String())
	assert.Equal(t, "wrong type", StatusWrongKind.String())
}
