//go:build darwin || linux

package iup

import (
	"runtime"
	"testing"
)

// A relaunched process inherits the guard variable, so a second invocation
// must not spawn another child.
func TestEnsureLibraryPathGuardIsNoOp(t *testing.T) {
	t.Setenv(relaunchGuardEnv, "1")
	if err := EnsureLibraryPath(); err != nil {
		t.Fatal(err)
	}
	// Still a no-op on repeated invocation.
	if err := EnsureLibraryPath(); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderPathEnv(t *testing.T) {
	want := "LD_LIBRARY_PATH"
	if runtime.GOOS == "darwin" {
		want = "DYLD_LIBRARY_PATH"
	}
	if got := loaderPathEnv(); got != want {
		t.Fatalf("loaderPathEnv() = %q, want %q", got, want)
	}
}

func TestNativeLibraryDirEnvOverride(t *testing.T) {
	t.Setenv("IUP_PATH", "/opt/iup")
	dir, err := nativeLibraryDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/opt/iup" {
		t.Fatalf("nativeLibraryDir() = %q, want %q", dir, "/opt/iup")
	}
}
