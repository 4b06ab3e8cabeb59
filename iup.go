// Package iup binds the native IUP GUI toolkit at run time. The shared
// libraries are located next to the running executable, opened exactly once,
// and a fixed table of exported functions is resolved eagerly into a typed
// facade. No GUI behavior lives here: the native library is authoritative
// and this layer only marshals values across the boundary.
package iup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unicode/utf8"

	"github.com/ebitengine/purego"
)

// init locks the OS thread: the native library is not thread-safe and every
// call must come from the thread that initialized it and drives the event
// loop.
func init() {
	runtime.LockOSThread()
}

// library is the capability the symbol binder needs from a loaded shared
// library. The production implementation is the OS loader; tests substitute
// an in-memory stub exposing fabricated symbols.
type library interface {
	symbol(name string) (uintptr, error)
}

// nativeLibrary resolves symbols from a handle returned by the OS loader.
// The handle is never closed: closing it would invalidate every resolved
// function pointer for the remainder of the process.
type nativeLibrary struct {
	handle uintptr
}

func (l nativeLibrary) symbol(name string) (uintptr, error) {
	return loadSymbol(l.handle, name)
}

// nativeLibraryDir resolves the directory holding the native library files:
// the IUP_PATH environment variable, then the iup.toml override, then the
// OS-specific subdirectory next to the executable.
func nativeLibraryDir() (string, error) {
	if p := os.Getenv("IUP_PATH"); p != "" {
		return p, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.LibraryDir != "" {
		return cfg.LibraryDir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: cannot determine executable path: %v", ErrIO, err)
	}
	return libraryDir(filepath.Dir(exe)), nil
}

// prependPath puts dir in front of an existing search-path value.
func prependPath(dir, existing string) string {
	if existing == "" {
		return dir
	}
	return dir + string(os.PathListSeparator) + existing
}

// openCoreLibrary loads the core native library. It is a variable so tests
// can substitute a stub library without touching the OS loader.
var openCoreLibrary = func() (library, error) {
	if err := EnsureLibraryPath(); err != nil {
		return nil, err
	}
	dir, err := nativeLibraryDir()
	if err != nil {
		return nil, err
	}
	h, err := loadLibrary(filepath.Join(dir, coreLibName))
	if err != nil {
		return nil, err
	}
	return nativeLibrary{handle: h}, nil
}

// facadeState holds the process-wide facade. All callers observe either
// "not yet constructed" or "fully constructed": the Once guarantees the
// native initialization runs at most once even under concurrent first
// access.
type facadeState struct {
	once sync.Once
	iup  *Iup
	err  error
}

var global = &facadeState{}

// Open initializes the native library on first call and returns the
// process-wide facade. Every later call returns the same *Iup (or the same
// error). The returned facade is valid until Close.
func Open() (*Iup, error) {
	s := global
	s.once.Do(func() {
		lib, err := openCoreLibrary()
		if err != nil {
			s.err = err
			return
		}
		x, err := newIup(lib)
		if err != nil {
			s.err = err
			return
		}
		cfg, err := loadConfig()
		if err != nil {
			s.err = err
			return
		}
		for name, value := range cfg.Globals {
			x.SetGlobal(name, value)
		}
		s.iup = x
	})
	return s.iup, s.err
}

// Iup is the typed facade over the resolved native function table. A value
// exists only if every required symbol resolved and the native
// initialization entry point reported success. The function pointers are
// immutable after construction.
type Iup struct {
	lib       library
	closeOnce sync.Once

	pAppend             uintptr
	pButton             uintptr
	pClose              uintptr
	pDialog             uintptr
	pGetAttribute       uintptr
	pGetDialogChild     uintptr
	pGetGlobal          uintptr
	pGetInt             uintptr
	pHbox               uintptr
	pLabel              uintptr
	pMainLoop           uintptr
	pMessage            uintptr
	pSetAttribute       uintptr
	pSetAttributeHandle uintptr
	pSetCallback        uintptr
	pSetFocus           uintptr
	pSetGlobal          uintptr
	pSetHandle          uintptr
	pSetInt             uintptr
	pShow               uintptr
	pShowXY             uintptr
	pTimer              uintptr
	pVbox               uintptr
	pVersion            uintptr
	pVersionShow        uintptr
}

// newIup opens the native library through the given symbol source and
// resolves the full function table. The declared argument layouts below are
// the binding contract with iup.h: a mismatch is not detectable at
// resolution time, so the table is kept manually verified against the
// header.
func newIup(lib library) (*Iup, error) {
	pOpen, err := lib.symbol("IupOpen")
	if err != nil {
		return nil, err
	}
	// int IupOpen(int *argc, char ***argv) — called with no arguments.
	if r, _, _ := purego.SyscallN(pOpen, 0, 0); int32(r) != NoError {
		return nil, fmt.Errorf("%w: IupOpen returned %d", ErrInitFailed, int32(r))
	}

	x := &Iup{lib: lib}
	x.pSetGlobal, err = lib.symbol("IupSetGlobal")
	if err != nil {
		return nil, err
	}
	x.SetGlobal(utf8Mode, Yes)

	symbols := []struct {
		ptr  *uintptr
		name string
	}{
		{&x.pAppend, "IupAppend"},
		{&x.pButton, "IupButton"},
		{&x.pClose, "IupClose"},
		{&x.pDialog, "IupDialog"},
		{&x.pGetAttribute, "IupGetAttribute"},
		{&x.pGetDialogChild, "IupGetDialogChild"},
		{&x.pGetGlobal, "IupGetGlobal"},
		{&x.pGetInt, "IupGetInt"},
		{&x.pHbox, "IupHbox"},
		{&x.pLabel, "IupLabel"},
		{&x.pMainLoop, "IupMainLoop"},
		{&x.pMessage, "IupMessage"},
		{&x.pSetAttribute, "IupSetAttribute"},
		{&x.pSetAttributeHandle, "IupSetAttributeHandle"},
		{&x.pSetCallback, "IupSetCallback"},
		{&x.pSetFocus, "IupSetFocus"},
		{&x.pSetHandle, "IupSetHandle"},
		{&x.pSetInt, "IupSetInt"},
		{&x.pShow, "IupShow"},
		{&x.pShowXY, "IupShowXY"},
		{&x.pTimer, "IupTimer"},
		{&x.pVbox, "IupVbox"},
		{&x.pVersion, "IupVersion"},
		{&x.pVersionShow, "IupVersionShow"},
	}
	for _, s := range symbols {
		ptr, err := lib.symbol(s.name)
		if err != nil {
			return nil, err
		}
		*s.ptr = ptr
	}
	return x, nil
}

// Append attaches child to the container ih.
func (x *Iup) Append(ih, child Ihandle) Ihandle {
	r, _, _ := purego.SyscallN(x.pAppend, uintptr(ih), uintptr(child))
	return Ihandle(r)
}

// Button creates a button with the given title and action name.
func (x *Iup) Button(title, action string) Ihandle {
	tb, tp, err := cString(title)
	if err != nil {
		return 0
	}
	ab, ap, err := cString(action)
	if err != nil {
		return 0
	}
	r, _, _ := purego.SyscallN(x.pButton, uintptr(tp), uintptr(ap))
	runtime.KeepAlive(tb)
	runtime.KeepAlive(ab)
	return Ihandle(r)
}

// Close calls the native teardown entry point. It runs at most once: later
// calls are no-ops. No other method may be called after Close (native
// library contract, not detectable here).
func (x *Iup) Close() {
	x.closeOnce.Do(func() {
		purego.SyscallN(x.pClose)
	})
}

// Dialog creates a dialog with the given content.
func (x *Iup) Dialog(child Ihandle) Ihandle {
	r, _, _ := purego.SyscallN(x.pDialog, uintptr(child))
	return Ihandle(r)
}

// GetAttribute returns the named attribute of ih. ok is false when the
// native library has no value or the value is not valid text.
func (x *Iup) GetAttribute(ih Ihandle, name string) (string, bool) {
	nb, np, err := cString(name)
	if err != nil {
		return "", false
	}
	r, _, _ := purego.SyscallN(x.pGetAttribute, uintptr(ih), uintptr(np))
	runtime.KeepAlive(nb)
	if r == 0 {
		return "", false
	}
	s := goString(r)
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}

// GetAttributeHandle returns the named attribute of ih as a native handle.
func (x *Iup) GetAttributeHandle(ih Ihandle, name string) Ihandle {
	nb, np, err := cString(name)
	if err != nil {
		return 0
	}
	r, _, _ := purego.SyscallN(x.pGetAttribute, uintptr(ih), uintptr(np))
	runtime.KeepAlive(nb)
	return Ihandle(r)
}

// GetDialogChild finds the child of ih's dialog with the given NAME.
func (x *Iup) GetDialogChild(ih Ihandle, name string) Ihandle {
	nb, np, err := cString(name)
	if err != nil {
		return 0
	}
	r, _, _ := purego.SyscallN(x.pGetDialogChild, uintptr(ih), uintptr(np))
	runtime.KeepAlive(nb)
	return Ihandle(r)
}

// GetGlobal returns a global native attribute, or "" when unset or not
// valid text.
func (x *Iup) GetGlobal(name string) string {
	nb, np, err := cString(name)
	if err != nil {
		return ""
	}
	r, _, _ := purego.SyscallN(x.pGetGlobal, uintptr(np))
	runtime.KeepAlive(nb)
	if r == 0 {
		return ""
	}
	s := goString(r)
	if !utf8.ValidString(s) {
		return ""
	}
	return s
}

// GetInt returns the named attribute of ih as an integer.
func (x *Iup) GetInt(ih Ihandle, name string) int32 {
	nb, np, err := cString(name)
	if err != nil {
		return 0
	}
	r, _, _ := purego.SyscallN(x.pGetInt, uintptr(ih), uintptr(np))
	runtime.KeepAlive(nb)
	return int32(r)
}

// Hbox creates an empty horizontal box.
func (x *Iup) Hbox() Ihandle {
	// The native constructor is variadic, terminated by a NULL child.
	r, _, _ := purego.SyscallN(x.pHbox, 0)
	return Ihandle(r)
}

// Label creates a label with the given title.
func (x *Iup) Label(title string) Ihandle {
	tb, tp, err := cString(title)
	if err != nil {
		return 0
	}
	r, _, _ := purego.SyscallN(x.pLabel, uintptr(tp))
	runtime.KeepAlive(tb)
	return Ihandle(r)
}

// MainLoop runs the native event loop. It blocks the calling thread until
// the native library signals completion and must be called at most once.
func (x *Iup) MainLoop() {
	purego.SyscallN(x.pMainLoop)
}

// Message shows a modal message box.
func (x *Iup) Message(title, message string) {
	tb, tp, err := cString(title)
	if err != nil {
		return
	}
	mb, mp, err := cString(message)
	if err != nil {
		return
	}
	purego.SyscallN(x.pMessage, uintptr(tp), uintptr(mp))
	runtime.KeepAlive(tb)
	runtime.KeepAlive(mb)
}

// SetAttribute sets the named attribute of ih.
func (x *Iup) SetAttribute(ih Ihandle, name, value string) {
	nb, np, err := cString(name)
	if err != nil {
		return
	}
	vb, vp, err := cString(value)
	if err != nil {
		return
	}
	purego.SyscallN(x.pSetAttribute, uintptr(ih), uintptr(np), uintptr(vp))
	runtime.KeepAlive(nb)
	runtime.KeepAlive(vb)
}

// SetAttributeHandle associates named with the given attribute of ih
// directly, without a global handle name.
func (x *Iup) SetAttributeHandle(ih Ihandle, name string, named Ihandle) {
	nb, np, err := cString(name)
	if err != nil {
		return
	}
	purego.SyscallN(x.pSetAttributeHandle, uintptr(ih), uintptr(np), uintptr(named))
	runtime.KeepAlive(nb)
}

// SetHandleAttribute stores the handle value itself as the named attribute
// of ih.
func (x *Iup) SetHandleAttribute(ih Ihandle, name string, value Ihandle) {
	nb, np, err := cString(name)
	if err != nil {
		return
	}
	purego.SyscallN(x.pSetAttribute, uintptr(ih), uintptr(np), uintptr(value))
	runtime.KeepAlive(nb)
}

// SetCallback registers cb for the named event of ih and returns the
// previously registered native callback pointer. Each distinct cb allocates
// a native trampoline that lives for the rest of the process.
func (x *Iup) SetCallback(ih Ihandle, name string, cb Icallback) uintptr {
	nb, np, err := cString(name)
	if err != nil {
		return 0
	}
	fn := purego.NewCallback(func(h uintptr) uintptr {
		return uintptr(cb(Ihandle(h)))
	})
	r, _, _ := purego.SyscallN(x.pSetCallback, uintptr(ih), uintptr(np), fn)
	runtime.KeepAlive(nb)
	return r
}

// SetFocus gives keyboard focus to ih.
func (x *Iup) SetFocus(ih Ihandle) Ihandle {
	r, _, _ := purego.SyscallN(x.pSetFocus, uintptr(ih))
	return Ihandle(r)
}

// SetGlobal sets a global native attribute.
func (x *Iup) SetGlobal(name, value string) {
	nb, np, err := cString(name)
	if err != nil {
		return
	}
	vb, vp, err := cString(value)
	if err != nil {
		return
	}
	purego.SyscallN(x.pSetGlobal, uintptr(np), uintptr(vp))
	runtime.KeepAlive(nb)
	runtime.KeepAlive(vb)
}

// SetHandle associates a global name with ih.
func (x *Iup) SetHandle(name string, ih Ihandle) Ihandle {
	nb, np, err := cString(name)
	if err != nil {
		return 0
	}
	r, _, _ := purego.SyscallN(x.pSetHandle, uintptr(np), uintptr(ih))
	runtime.KeepAlive(nb)
	return Ihandle(r)
}

// SetInt sets the named attribute of ih to an integer value.
func (x *Iup) SetInt(ih Ihandle, name string, value int32) {
	nb, np, err := cString(name)
	if err != nil {
		return
	}
	purego.SyscallN(x.pSetInt, uintptr(ih), uintptr(np), uintptr(value))
	runtime.KeepAlive(nb)
}

// Show maps and shows ih, reporting whether the native call succeeded.
func (x *Iup) Show(ih Ihandle) bool {
	r, _, _ := purego.SyscallN(x.pShow, uintptr(ih))
	return int32(r) == NoError
}

// ShowXY shows ih at the given position. Both coordinates also accept the
// positioning values (Center, MousePos, ...).
func (x *Iup) ShowXY(ih Ihandle, px, py int32) bool {
	r, _, _ := purego.SyscallN(x.pShowXY, uintptr(ih), uintptr(px), uintptr(py))
	return int32(r) == NoError
}

// Timer creates a timer. Configure it with the Time and Run attributes and
// an ActionCB callback.
func (x *Iup) Timer() Ihandle {
	r, _, _ := purego.SyscallN(x.pTimer)
	return Ihandle(r)
}

// Vbox creates an empty vertical box.
func (x *Iup) Vbox() Ihandle {
	r, _, _ := purego.SyscallN(x.pVbox, 0)
	return Ihandle(r)
}

// Version returns the native library version, or "0.0" when it cannot be
// read.
func (x *Iup) Version() string {
	r, _, _ := purego.SyscallN(x.pVersion)
	if r == 0 {
		return "0.0"
	}
	s := goString(r)
	if !utf8.ValidString(s) || s == "" {
		return "0.0"
	}
	return s
}

// VersionShow opens the native version dialog.
func (x *Iup) VersionShow() {
	purego.SyscallN(x.pVersionShow)
}
