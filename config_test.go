package iup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfigMissingFile(t *testing.T) {
	cfg, err := readConfig(filepath.Join(t.TempDir(), "iup.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LibraryDir != "" || len(cfg.Globals) != 0 {
		t.Fatalf("missing file yielded non-zero config: %+v", cfg)
	}
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iup.toml")
	content := `library_dir = "/opt/iup"

[globals]
LANGUAGE = "ENGLISH"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := readConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LibraryDir != "/opt/iup" {
		t.Errorf("LibraryDir = %q, want %q", cfg.LibraryDir, "/opt/iup")
	}
	if got := cfg.Globals["LANGUAGE"]; got != "ENGLISH" {
		t.Errorf("Globals[LANGUAGE] = %q, want %q", got, "ENGLISH")
	}
}

func TestReadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iup.toml")
	if err := os.WriteFile(path, []byte("library_dir = [not toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := readConfig(path)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !errors.Is(err, ErrIO) {
		t.Fatalf("error %v, want ErrIO", err)
	}
}
