package array

import "unsafe"

// Iter is a borrowing forward cursor over an array's elements. It holds a
// current pointer and an end bound, owns nothing, and must not outlive the
// array it reads. Single pass: once exhausted it stays exhausted; obtain a
// fresh cursor from the array to traverse again.
//
// Usage:
//
//	for it := a.Iter(); ; {
//	    v, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    // use v
//	}
type Iter[T any] struct {
	ptr  unsafe.Pointer // next element to yield
	end  unsafe.Pointer // last element of the block
	done bool
}

// Iter returns a forward cursor positioned at the first element. For an
// empty array the cursor starts exhausted.
func (a *Array[T]) Iter() Iter[T] {
	if a.size == 0 {
		return Iter[T]{done: true}
	}
	return Iter[T]{
		ptr: a.pointer,
		end: unsafe.Add(a.pointer, uintptr(a.size-1)*sizeOf[T]()),
	}
}

// Next yields the next element in index order, or (nil, false) forever
// after the cursor is exhausted. The returned pointer borrows from the
// array and stays valid for the array's lifetime.
func (it *Iter[T]) Next() (*T, bool) {
	if it.done {
		return nil, false
	}
	p := (*T)(it.ptr)
	if it.ptr == it.end {
		// never step past the block: a one-past-the-end pointer is not a
		// valid Go pointer
		it.done = true
		return p, true
	}
	it.ptr = unsafe.Add(it.ptr, sizeOf[T]())
	return p, true
}
