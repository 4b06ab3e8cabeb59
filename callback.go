package iup

import "errors"

var errBadCallback = errors.New(
	"iup: callback must be func(Ihandle) int32, func(Ihandle), func() int32 or func()")

// wrapCallback validates a user-supplied callback shape and normalizes it
// to an Icallback. Void forms return Default.
func wrapCallback(f any) (Icallback, error) {
	switch fn := f.(type) {
	case Icallback:
		return fn, nil
	case func(Ihandle) int32:
		return fn, nil
	case func(Ihandle):
		return func(ih Ihandle) int32 {
			fn(ih)
			return Default
		}, nil
	case func() int32:
		return func(Ihandle) int32 {
			return fn()
		}, nil
	case func():
		return func(Ihandle) int32 {
			fn()
			return Default
		}, nil
	}
	return nil, errBadCallback
}

// SetCallbackFunc registers f for the named event of ih, accepting any of
// the shapes handled by wrapCallback.
func (x *Iup) SetCallbackFunc(ih Ihandle, name string, f any) error {
	cb, err := wrapCallback(f)
	if err != nil {
		return err
	}
	x.SetCallback(ih, name, cb)
	return nil
}
