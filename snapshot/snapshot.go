// Package snapshot copies the raw memory image of an enclosing record,
// fields untouched, array pointers included verbatim.
//
// This is a same-process persistence/caching optimization, not a wire
// format: a pointer inside the image is only meaningful when the image is
// reinterpreted in the address space that produced it, and only while the
// original block owners are still live. For a portable encoding use the
// seqcodec package instead; the two modes never substitute for each other.
//
// A record restored with Load aliases the same element blocks as the
// original. It is a borrowed view, not a second owner: releasing through
// both the original and the restored copy violates the exactly-once
// release contract.
package snapshot

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Bytes returns a copy of the raw memory image of *src.
func Bytes[S any](src *S) []byte {
	n := int(unsafe.Sizeof(*src))
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(src)), n))
	return out
}

// Load reinterprets a snapshot taken by Bytes in the same process. The
// only runtime check is the image length; everything else is the caller's
// contract.
func Load[S any](data []byte) (S, error) {
	var dst S
	n := int(unsafe.Sizeof(dst))
	if len(data) != n {
		return dst, fmt.Errorf("snapshot: image is %d bytes, %T needs %d", len(data), dst, n)
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&dst)), n), data)
	return dst, nil
}

// Packed reports whether S lays out with no inter-field padding, the
// precondition for byte-exact snapshotting: padding bytes have undefined
// content and would make images of equal records differ.
func Packed[S any]() bool {
	var z S
	return packed(reflect.TypeOf(z))
}

func packed(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		var off uintptr
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Offset != off || !packed(f.Type) {
				return false
			}
			off += f.Type.Size()
		}
		return off == t.Size()
	case reflect.Array:
		return packed(t.Elem())
	default:
		return true
	}
}
