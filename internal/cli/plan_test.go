package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTree(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "plan", "--root", "p", "--services", "auth", "--libs", "common")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "p (12 directories, 21 files)", lines[0])
	assert.Contains(t, lines, "  .gitignore")
	assert.Contains(t, lines, "  services/")
	assert.Contains(t, lines, "    auth/")
	assert.Contains(t, lines, "          auth_router.py")
	assert.Contains(t, lines, "      setup.py")
	assert.NoDirExists(t, filepath.Join(dir, "p"), "plan must not touch the filesystem")
}

func TestPlanJSON(t *testing.T) {
	out, err := execute(t, t.TempDir(), "plan", "--json", "--root", "p", "--services", "auth,coupon", "--libs", "")
	require.NoError(t, err)

	var got planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "p", got.Root)
	assert.Equal(t, "python", got.Ecosystem)
	assert.Equal(t, []string{"auth", "coupon"}, got.Services)
	assert.Empty(t, got.Libs)
	assert.Equal(t, got.Directories+got.Files, len(got.Entries))

	require.NotEmpty(t, got.Entries)
	assert.Equal(t, planEntry{Path: ".", Kind: "dir", Scope: "project"}, got.Entries[0])
	assert.Contains(t, got.Entries, planEntry{
		Path: "services/coupon/app/domain/coupon_service.py", Kind: "file", Scope: "service", Owner: "coupon",
	})
}

func TestPlanInvalidEcosystem(t *testing.T) {
	_, err := execute(t, t.TempDir(), "plan", "--ecosystem", "node")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ecosystem")
}

func TestPlanSorted(t *testing.T) {
	out, err := execute(t, t.TempDir(), "plan", "--sorted", "--root", "p", "--services", "auth", "--libs", "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, ".gitignore", lines[0])
	assert.Equal(t, "services/auth/tests/__init__.py", lines[len(lines)-1])
	assert.IsNonDecreasing(t, lines)
}
