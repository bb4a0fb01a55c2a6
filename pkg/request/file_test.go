package request

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSave_CreatesParentDirectories(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "restbook-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "api", "users", "create.restbook.yaml")
	r := New()
	r.Name = "create"
	r.URL = "https://api.example.com/users"

	if err := r.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if r.Path != path {
		t.Errorf("Path = %q, want %q", r.Path, path)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != "create" {
		t.Errorf("Name = %q, want %q", loaded.Name, "create")
	}
	if loaded.Path != path {
		t.Errorf("loaded Path = %q, want %q", loaded.Path, path)
	}
}

func TestSave_OverwritesExistingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "restbook-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "ping.restbook.yaml")

	first := New()
	first.URL = "https://example.com/v1/ping"
	if err := first.Save(path); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := New()
	second.URL = "https://example.com/v2/ping"
	if err := second.Save(path); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.URL != "https://example.com/v2/ping" {
		t.Errorf("URL = %q, want the overwritten value", loaded.URL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "restbook-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	_, err = Load(filepath.Join(tmpDir, "absent.restbook.yaml"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrMalformedDocument) {
		t.Errorf("a read failure is not a malformed document: %v", err)
	}
}
