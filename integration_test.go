//go:build integration

package iup_test

import (
	"testing"

	"github.com/crgimenes/iup"
)

// Requires the native libraries under <exe_dir>/iup/<os> or IUP_PATH.
func TestOpenRealLibrary(t *testing.T) {
	x, err := iup.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer x.Close()

	if v := x.Version(); v == "" || v == "0.0" {
		t.Fatalf("Version() = %q, want a real version", v)
	}
	if sys := x.GetGlobal(iup.System); sys == "" {
		t.Error("GetGlobal(System) is empty")
	}
}
