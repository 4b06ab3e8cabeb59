package iup

import "testing"

func TestRunDialogNilBuild(t *testing.T) {
	if err := RunDialog(nil, DialogOptions{}); err == nil {
		t.Fatal("expected error for nil build function")
	}
}

func TestRunDialogLifecycle(t *testing.T) {
	s := newStubNative()
	withStubOpen(t, s)

	built := false
	err := RunDialog(func(x *Iup) Ihandle {
		built = true
		vbox := x.Vbox()
		x.Append(vbox, x.Label("hello"))
		return vbox
	}, DialogOptions{Title: "Test", Width: 320, Height: 200})
	if err != nil {
		t.Fatal(err)
	}
	if !built {
		t.Fatal("build function not called")
	}
	if n := s.openCalls.Load(); n != 1 {
		t.Fatalf("IupOpen called %d times, want 1", n)
	}
	if n := s.closeCalls.Load(); n != 1 {
		t.Fatalf("IupClose called %d times, want 1", n)
	}
}

func TestRunDialogShowFailure(t *testing.T) {
	s := newStubNative()
	s.showCode.Store(Error)
	withStubOpen(t, s)

	err := RunDialog(func(x *Iup) Ihandle {
		return x.Vbox()
	}, DialogOptions{Title: "Broken"})
	if err == nil {
		t.Fatal("expected error when the dialog cannot be shown")
	}
	// The native library is still shut down on the failure path.
	if n := s.closeCalls.Load(); n != 1 {
		t.Fatalf("IupClose called %d times, want 1", n)
	}
}
