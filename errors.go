package iup

import "errors"

// The closed set of failure kinds this package produces. Every returned
// error wraps exactly one of these, so callers can classify failures with
// errors.Is while the message carries the failing symbol, path or detail.
var (
	// ErrLibraryLoad means a native library file is missing or failed
	// platform validation (wrong architecture, unresolved dependency).
	ErrLibraryLoad = errors.New("iup: cannot load native library")

	// ErrSymbolNotFound means a required exported name is absent from a
	// loaded library.
	ErrSymbolNotFound = errors.New("iup: symbol not found")

	// ErrInitFailed means the native initialization entry point returned
	// its failure code.
	ErrInitFailed = errors.New("iup: native initialization failed")

	// ErrIO covers OS and process failures outside the native library:
	// undeterminable executable path, relaunch spawn failure, unreadable
	// config file.
	ErrIO = errors.New("iup: i/o failure")

	// ErrTextEncoding means text could not be converted to or from the
	// native string representation. After a successful Open this is always
	// recoverable: methods report absence instead of failing.
	ErrTextEncoding = errors.New("iup: text encoding failed")
)
