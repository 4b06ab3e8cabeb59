//go:build darwin || linux

package iup

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// relaunchGuardEnv marks a process that has already been re-executed with
// the loader search path in place, so the relaunch happens at most once.
const relaunchGuardEnv = "IUP_RELAUNCHED"

// EnsureLibraryPath makes sure the dynamic loader can resolve the native
// libraries' own dependencies. The loader reads its search-path variable
// once, before this process ran any Go code, so mutating it in-process has
// no effect: the only reliable fix is to re-execute the process with the
// variable already set.
//
// When the recursion guard is absent, EnsureLibraryPath prepends the native
// library directory to the search path, re-runs the current executable with
// identical arguments and inherited stdio, waits for it, and exits with the
// child's exit code — it does not return. When the guard is present (the
// relaunched process) it returns nil immediately.
//
// Open calls EnsureLibraryPath itself. Applications that perform side
// effects before their first Open should call it at the top of main so
// those side effects are not repeated in the relaunched process.
func EnsureLibraryPath() error {
	if os.Getenv(relaunchGuardEnv) == "1" {
		return nil
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("%w: cannot determine executable path: %v", ErrIO, err)
	}
	dir, err := nativeLibraryDir()
	if err != nil {
		return err
	}

	env := loaderPathEnv()
	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		env+"="+prependPath(dir, os.Getenv(env)),
		relaunchGuardEnv+"=1",
	)

	err = cmd.Run()
	if err == nil {
		os.Exit(0)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && unix.WaitStatus(ws).Signaled() {
			return fmt.Errorf("%w: relaunched process terminated by signal %d",
				ErrIO, unix.WaitStatus(ws).Signal())
		}
		os.Exit(exitErr.ExitCode())
	}
	return fmt.Errorf("%w: failed to re-execute %s: %v", ErrIO, exe, err)
}
