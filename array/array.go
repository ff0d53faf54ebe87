// Package array provides a fixed-length, heap-owned homogeneous container
// with an exact pointer+size memory image.
//
// An Array owns one contiguous block of size elements. The element type T
// must be plain data: fixed width, safely duplicable by byte copy, owning
// no resources of its own. The container never grows or shrinks and is not
// safe for concurrent use.
//
// Ownership is exclusive. Adopting constructors (FromSlice, FromPointer)
// and releasing conversions (ToSlice, ToPointer) transfer the whole block;
// the source must not be touched afterwards. Using an array after it has
// been transferred or released produces undefined behavior, so caution
// must be taken that exactly one live owner exists per block.
package array

import (
	"cmp"
	"fmt"
	"strings"
	"unsafe"
)

// Array is a packed {pointer, size} view over an owned element block.
// The zero value is a valid empty array.
type Array[T any] struct {
	pointer unsafe.Pointer // first element of the block, nil when empty or released
	size    int            // element count, fixed at construction
}

func sizeOf[T any]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

// New allocates a block of size elements. Elements start as zero values of
// T; there is no uninitialized-read window. New is a building block for
// the adopting constructors and the codecs, which are the usual entry
// points.
func New[T any](size int) Array[T] {
	if size <= 0 {
		return Array[T]{}
	}
	block := make([]T, size)
	return Array[T]{pointer: unsafe.Pointer(unsafe.SliceData(block)), size: size}
}

// FromSlice adopts the backing array of s without copying. The caller must
// drop s and every alias of it; writing through a retained alias violates
// the exclusive-ownership contract.
func FromSlice[T any](s []T) Array[T] {
	if len(s) == 0 {
		return Array[T]{}
	}
	return Array[T]{pointer: unsafe.Pointer(unsafe.SliceData(s)), size: len(s)}
}

// FromPointer adopts a fixed block of size elements starting at ptr. The
// caller transfers ownership of the whole block.
func FromPointer[T any](ptr *T, size int) Array[T] {
	if ptr == nil || size <= 0 {
		return Array[T]{}
	}
	return Array[T]{pointer: unsafe.Pointer(ptr), size: size}
}

// ToSlice hands the block to a growable slice representation and renders
// the array permanently inert. The returned slice is the sole owner.
func (a *Array[T]) ToSlice() []T {
	s := unsafe.Slice((*T)(a.pointer), a.size)
	a.pointer, a.size = nil, 0
	return s
}

// ToPointer hands the block back as a fixed buffer and renders the array
// permanently inert.
func (a *Array[T]) ToPointer() (*T, int) {
	ptr, size := (*T)(a.pointer), a.size
	a.pointer, a.size = nil, 0
	return ptr, size
}

// Len returns the element count.
func (a *Array[T]) Len() int {
	return a.size
}

// Get returns the element at index i, or (nil, false) when i is out of
// range. This is the safe counterpart of At.
func (a *Array[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= a.size {
		return nil, false
	}
	return a.At(i), true
}

// At returns the element at index i without a bounds check. The caller
// must guarantee 0 <= i < Len(); violating that is undefined behavior,
// not a reported error.
func (a *Array[T]) At(i int) *T {
	return (*T)(unsafe.Add(a.pointer, uintptr(i)*sizeOf[T]()))
}

// Ptr returns the address of element i for callers that already hold a
// validated index. Same contract as At.
func (a *Array[T]) Ptr(i int) unsafe.Pointer {
	return unsafe.Add(a.pointer, uintptr(i)*sizeOf[T]())
}

// Set stores v at index i without a bounds check. Same contract as At.
func (a *Array[T]) Set(i int, v T) {
	*a.At(i) = v
}

// block aliases the owned storage as a slice. Internal only; the slice
// must not escape a single operation.
func (a *Array[T]) block() []T {
	return unsafe.Slice((*T)(a.pointer), a.size)
}

// Clone allocates a fresh block of identical size and byte-copies every
// element. The result shares no storage with a. Linear in Len().
func (a *Array[T]) Clone() Array[T] {
	b := New[T](a.size)
	copy(b.block(), a.block())
	return b
}

// Release finalizes every element in index order and drops the block.
// For plain data finalization is zeroing. Calling Release on an already
// released (or transferred-out) array is a no-op, so each logical owner
// releases at most once.
func (a *Array[T]) Release() {
	if a.pointer == nil {
		return
	}
	clear(a.block())
	a.pointer, a.size = nil, 0
}

// Equal reports whether a and b have the same size and pairwise equal
// elements in index order.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.size != b.size {
		return false
	}
	ai, bi := a.Iter(), b.Iter()
	for {
		av, ok := ai.Next()
		if !ok {
			return true
		}
		bv, _ := bi.Next()
		if *av != *bv {
			return false
		}
	}
}

// Compare orders arrays lexicographically by element sequence; on a shared
// prefix the shorter array orders first.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	ai, bi := a.Iter(), b.Iter()
	for {
		av, aok := ai.Next()
		bv, bok := bi.Next()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if c := cmp.Compare(*av, *bv); c != 0 {
			return c
		}
	}
}

// String renders the array as its ordered element sequence.
func (a Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	it := a.Iter()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", *v)
	}
	sb.WriteByte(']')
	return sb.String()
}
