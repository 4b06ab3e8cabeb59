package iup

import "fmt"

// DialogOptions configures RunDialog.
type DialogOptions struct {
	// Title is the dialog title.
	Title string

	// Width and Height set the initial dialog size in pixels. Zero leaves
	// the size to the native layout.
	Width  int
	Height int

	// Position places the dialog; both coordinates accept the positioning
	// values. Defaults to Center/Center.
	PosX int32
	PosY int32
}

// RunDialog opens the native library, builds the dialog content with build,
// shows it and runs the event loop until the dialog is closed. It is the
// whole lifecycle of a simple single-dialog application: when the user
// closes the dialog, the native library is shut down and RunDialog returns.
func RunDialog(build func(x *Iup) Ihandle, opts DialogOptions) error {
	if build == nil {
		return fmt.Errorf("iup: RunDialog build function must not be nil")
	}
	if opts.Title == "" {
		opts.Title = "App"
	}
	if opts.PosX == 0 {
		opts.PosX = Center
	}
	if opts.PosY == 0 {
		opts.PosY = Center
	}

	x, err := Open()
	if err != nil {
		return err
	}

	dlg := x.Dialog(build(x))
	x.SetAttribute(dlg, Title, opts.Title)
	if opts.Width > 0 && opts.Height > 0 {
		x.SetAttribute(dlg, "RASTERSIZE", fmt.Sprintf("%dx%d", opts.Width, opts.Height))
	}

	if !x.ShowXY(dlg, opts.PosX, opts.PosY) {
		x.Close()
		return fmt.Errorf("iup: failed to show dialog %q", opts.Title)
	}
	x.MainLoop()
	x.Close()
	return nil
}
