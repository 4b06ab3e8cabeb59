package iup

import (
	"fmt"
	"path/filepath"
	"syscall"
)

const (
	coreLibName = "iup.dll"
	imLibName   = "iupim.dll"
)

// libraryDir returns the directory holding the native library files for an
// executable located in exeDir.
func libraryDir(exeDir string) string {
	return filepath.Join(exeDir, "iup", "windows")
}

// loaderPathEnv is the environment variable the dynamic loader consults when
// resolving a library's own dependencies.
func loaderPathEnv() string {
	return "PATH"
}

func loadLibrary(path string) (uintptr, error) {
	handle, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrLibraryLoad, path, err)
	}
	return uintptr(handle), nil
}

func loadSymbol(lib uintptr, name string) (uintptr, error) {
	ptr, err := syscall.GetProcAddress(syscall.Handle(lib), name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, name, err)
	}
	return ptr, nil
}
