package iup

// EnsureLibraryPath is a no-op on Windows: the loader consults PATH every
// time a library is opened, so no relaunch is needed. It exists so
// applications can call it unconditionally.
func EnsureLibraryPath() error {
	return nil
}
