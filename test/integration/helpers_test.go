//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Dash-ajou/dashgen/internal/branding"
	"github.com/Dash-ajou/dashgen/internal/config"
	"github.com/Dash-ajou/dashgen/internal/layout"
)

// setupTestEnv returns an empty project directory and clears the DASHGEN_*
// variables so the host environment cannot leak into the run.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.KeyRoot, config.KeyServices, config.KeyLibs, config.KeyEcosystem} {
		t.Setenv(branding.EnvVar(key), "")
	}
	return t.TempDir()
}

// planFrom resolves configuration from dir and returns the layout.
func planFrom(t *testing.T, dir string) (*config.Config, *layout.Layout) {
	t.Helper()
	cfg, err := config.Load(config.Options{Dir: dir})
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	// Relative roots resolve against the project directory.
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(dir, cfg.Root)
	}
	l, err := cfg.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	return cfg, l
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, but it is a directory", path)
	}
}

// assertFileNotExists fails the test if the path exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected path NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertEmptyFile fails if the file is missing or has content.
func assertEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("stat %s: %v", path, err)
		return
	}
	if info.Size() != 0 {
		t.Errorf("expected %s to be empty, has %d bytes", path, info.Size())
	}
}
