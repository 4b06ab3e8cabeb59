package iup

import (
	"errors"
	"runtime"
	"testing"
)

func TestCStringRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"a",
		"hello",
		"TITLE",
		"héllo wörld",
		"日本語のテキスト",
		"tab\tand\nnewline",
	}
	for _, want := range tests {
		t.Run(want, func(t *testing.T) {
			b, p, err := cString(want)
			if err != nil {
				t.Fatal(err)
			}
			got := goString(uintptr(p))
			runtime.KeepAlive(b)
			if got != want {
				t.Errorf("round trip = %q, want %q", got, want)
			}
		})
	}
}

func TestCStringEmbeddedNUL(t *testing.T) {
	_, _, err := cString("bad\x00string")
	if err == nil {
		t.Fatal("expected error for embedded NUL")
	}
	if !errors.Is(err, ErrTextEncoding) {
		t.Fatalf("error %v, want ErrTextEncoding", err)
	}
}

func TestGoStringNil(t *testing.T) {
	if got := goString(0); got != "" {
		t.Fatalf("goString(0) = %q, want \"\"", got)
	}
}
