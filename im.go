package iup

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

// Im is the facade over the auxiliary image-handling library. It is
// independent of the core facade but its library links against the core
// library by soname, so it can only load once the loader search path is in
// place (EnsureLibraryPath).
type Im struct {
	pLoadImage uintptr
}

type imFacadeState struct {
	once sync.Once
	im   *Im
	err  error
}

var globalIm = &imFacadeState{}

// openImLibrary loads the auxiliary library. A variable for the same reason
// as openCoreLibrary.
var openImLibrary = func() (library, error) {
	if err := EnsureLibraryPath(); err != nil {
		return nil, err
	}
	dir, err := nativeLibraryDir()
	if err != nil {
		return nil, err
	}
	env := loaderPathEnv()
	var h uintptr
	err = withEnv(env, prependPath(dir, os.Getenv(env)), func() error {
		var lerr error
		h, lerr = loadLibrary(filepath.Join(dir, imLibName))
		return lerr
	})
	if err != nil {
		return nil, err
	}
	return nativeLibrary{handle: h}, nil
}

// OpenIm loads the image library on first call and returns the
// process-wide image facade.
func OpenIm() (*Im, error) {
	s := globalIm
	s.once.Do(func() {
		lib, err := openImLibrary()
		if err != nil {
			s.err = err
			return
		}
		s.im, s.err = newIm(lib)
	})
	return s.im, s.err
}

func newIm(lib library) (*Im, error) {
	p, err := lib.symbol("IupLoadImage")
	if err != nil {
		return nil, err
	}
	return &Im{pLoadImage: p}, nil
}

// LoadImage loads the image file at name and returns its handle, or the nil
// handle on failure.
func (m *Im) LoadImage(name string) Ihandle {
	nb, np, err := cString(name)
	if err != nil {
		return 0
	}
	r, _, _ := purego.SyscallN(m.pLoadImage, uintptr(np))
	runtime.KeepAlive(nb)
	return Ihandle(r)
}

// withEnv sets key to value around fn and restores the previous state
// afterwards.
func withEnv(key, value string, fn func() error) error {
	prev, had := os.LookupEnv(key)
	os.Setenv(key, value)
	defer func() {
		if had {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	}()
	return fn()
}
