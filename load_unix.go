//go:build darwin || linux

package iup

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

const (
	coreLibName = "libiup.so"
	imLibName   = "libiupim.so"
)

// libraryDir returns the directory holding the native library files for an
// executable located in exeDir.
func libraryDir(exeDir string) string {
	return filepath.Join(exeDir, "iup", "linux")
}

// loaderPathEnv is the environment variable the dynamic loader consults when
// resolving a library's own dependencies.
func loaderPathEnv() string {
	if runtime.GOOS == "darwin" {
		return "DYLD_LIBRARY_PATH"
	}
	return "LD_LIBRARY_PATH"
}

func loadLibrary(path string) (uintptr, error) {
	h, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrLibraryLoad, path, err)
	}
	if h == 0 {
		return 0, fmt.Errorf("%w: %s: nil handle", ErrLibraryLoad, path)
	}
	return h, nil
}

func loadSymbol(lib uintptr, name string) (uintptr, error) {
	ptr, err := purego.Dlsym(lib, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, name, err)
	}
	return ptr, nil
}
