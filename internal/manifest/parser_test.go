package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_Valid(t *testing.T) {
	m, err := Load(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Version != "1" {
		t.Errorf("Version = %q, want %q", m.Version, "1")
	}
	if m.Root != "project-dash" {
		t.Errorf("Root = %q, want %q", m.Root, "project-dash")
	}
	if !reflect.DeepEqual(m.Services, []string{"auth", "coupon"}) {
		t.Errorf("Services = %v", m.Services)
	}
	if !reflect.DeepEqual(m.Libs, []string{"common"}) {
		t.Errorf("Libs = %v", m.Libs)
	}
	if m.Ecosystem != "python" {
		t.Errorf("Ecosystem = %q", m.Ecosystem)
	}
}

func TestLoad_Settings(t *testing.T) {
	m, err := Load(testPath("valid-minimal.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s := m.Settings(); len(s) != 0 {
		t.Errorf("minimal manifest should set nothing, got %v", s)
	}

	m, err = Load(testPath("valid-empty-lists.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	s := m.Settings()
	if s["root"] != "bare" {
		t.Errorf("root = %v", s["root"])
	}
	services, ok := s["services"].([]string)
	if !ok || len(services) != 0 {
		t.Errorf("explicit empty services should be kept, got %#v", s["services"])
	}
	if _, ok := s["ecosystem"]; ok {
		t.Error("ecosystem was not set and should be absent")
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(testPath("invalid-name.yaml"))
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidError, got %v", err)
	}
	if invalid.Path != testPath("invalid-name.yaml") {
		t.Errorf("Path = %q", invalid.Path)
	}
	if len(invalid.Issues) == 0 {
		t.Error("expected issues")
	}
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	_, err := Load(testPath("unsupported-version.yaml"))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(testPath("nonexistent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	if _, err := Load(testPath("malformed.yaml")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashgen.yaml")
	want := New("project-dash", []string{"auth", "coupon"}, []string{"common"}, "python")

	if err := Write(path, want); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestWrite_EmptyListsStayLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashgen.yaml")
	if err := Write(path, New("bare", nil, nil, "")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Services == nil || len(got.Services) != 0 {
		t.Errorf("Services = %#v, want empty list", got.Services)
	}
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashgen.yaml")
	if err := os.WriteFile(path, []byte("# hand written\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Write(path, New("x", nil, nil, ""))
	if !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "# hand written\n" {
		t.Errorf("existing manifest was modified: %q", data)
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1", true},
		{"v1", true},
		{"1.2", true},
		{"v1.0.3", true},
		{"0.9", false},
		{"2", false},
		{"not-a-version", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.ok && err != nil {
				t.Errorf("CheckVersion(%q) = %v, want nil", tt.version, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("CheckVersion(%q) = nil, want error", tt.version)
			}
		})
	}
}
