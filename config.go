package iup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional iup.toml file read from the executable's directory.
// It lets a deployment relocate the native libraries and set global native
// attributes without recompiling:
//
//	library_dir = "/opt/iup"
//
//	[globals]
//	LANGUAGE = "ENGLISH"
type Config struct {
	// LibraryDir overrides the default <exe_dir>/iup/<os> library directory.
	LibraryDir string `toml:"library_dir"`

	// Globals are applied via the native global-attribute setter right
	// after initialization.
	Globals map[string]string `toml:"globals"`
}

var (
	configOnce   sync.Once
	configLoaded Config
	configErr    error
)

// loadConfig reads iup.toml next to the running executable, once per
// process. A missing file is not an error.
func loadConfig() (Config, error) {
	configOnce.Do(func() {
		exe, err := os.Executable()
		if err != nil {
			configErr = fmt.Errorf("%w: cannot determine executable path: %v", ErrIO, err)
			return
		}
		configLoaded, configErr = readConfig(filepath.Join(filepath.Dir(exe), "iup.toml"))
	})
	return configLoaded, configErr
}

func readConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return cfg, nil
}
