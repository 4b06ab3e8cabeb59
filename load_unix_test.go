//go:build darwin || linux

package iup

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLibraryDir(t *testing.T) {
	want := filepath.Join("/home/user/app", "iup", "linux")
	if got := libraryDir("/home/user/app"); got != want {
		t.Fatalf("libraryDir = %q, want %q", got, want)
	}
}

func TestLoadLibraryMissingFile(t *testing.T) {
	_, err := loadLibrary(filepath.Join(t.TempDir(), coreLibName))
	if err == nil {
		t.Fatal("expected error for missing library file")
	}
	if !errors.Is(err, ErrLibraryLoad) {
		t.Fatalf("error %v, want ErrLibraryLoad", err)
	}
}
