package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Path == "" {
		t.Error("expected a default storage path")
	}
	if cfg.Display.DateFormat != "Jan 02" {
		t.Errorf("expected default date format, got %q", cfg.Display.DateFormat)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &Config{
		Storage: StorageConfig{Path: "/tmp/custom.db"},
		Display: DisplayConfig{Theme: "default", DateFormat: "2006-01-02"},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Storage.Path != want.Storage.Path {
		t.Errorf("storage path: got %q, want %q", got.Storage.Path, want.Storage.Path)
	}
	if got.Display.DateFormat != want.Display.DateFormat {
		t.Errorf("date format: got %q, want %q", got.Display.DateFormat, want.Display.DateFormat)
	}
}
