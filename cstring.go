package iup

import (
	"fmt"
	"strings"
	"unsafe"
)

// cString converts s to a NUL-terminated byte slice and returns the slice
// together with a pointer to its first byte. The slice must be kept alive
// (runtime.KeepAlive) across the native call that uses the pointer.
// A string with an embedded NUL cannot be represented and yields
// ErrTextEncoding.
func cString(s string) ([]byte, unsafe.Pointer, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, nil, fmt.Errorf("%w: string contains embedded NUL", ErrTextEncoding)
	}
	b := append([]byte(s), 0)
	return b, unsafe.Pointer(&b[0]), nil
}

// goString copies the NUL-terminated native string at c. A nil pointer
// yields the empty string.
func goString(c uintptr) string {
	// We take the address and then dereference it to trick go vet from
	// reporting a possible misuse of unsafe.Pointer.
	ptr := *(*unsafe.Pointer)(unsafe.Pointer(&c))
	if ptr == nil {
		return ""
	}
	var length int
	for {
		if *(*byte)(unsafe.Add(ptr, uintptr(length))) == '\x00' {
			break
		}
		length++
	}
	return string(unsafe.Slice((*byte)(ptr), length))
}
