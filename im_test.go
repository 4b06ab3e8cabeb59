package iup

import (
	"errors"
	"os"
	"testing"
)

func TestNewImResolvesLoadImage(t *testing.T) {
	s := newStubNative()
	m, err := newIm(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.LoadImage("icon.png"); got != 42 {
		t.Fatalf("LoadImage = %d, want 42", got)
	}
	if got := m.LoadImage("bad\x00name"); got != 0 {
		t.Fatalf("LoadImage with embedded NUL = %d, want 0", got)
	}
}

func TestNewImMissingSymbol(t *testing.T) {
	s := newStubNative()
	s.missing = "IupLoadImage"
	if _, err := newIm(s); !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("error %v, want ErrSymbolNotFound", err)
	}
}

func TestWithEnvRestores(t *testing.T) {
	t.Setenv("IUP_TEST_ENV", "before")
	err := withEnv("IUP_TEST_ENV", "during", func() error {
		if got := os.Getenv("IUP_TEST_ENV"); got != "during" {
			t.Fatalf("inside withEnv = %q, want %q", got, "during")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("IUP_TEST_ENV"); got != "before" {
		t.Fatalf("after withEnv = %q, want %q", got, "before")
	}
}
