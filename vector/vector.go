// Package vector implements a growable array. Operations return the
// updated vector, so appends are written v = v.Append(x), and a failed or
// no-op operation hands the old vector back.
package vector

import (
	"golang.org/x/exp/slices"

	"bitadt/utils"
)

// Vector is a dynamic array of T. The zero Vector fails Valid; construct
// one with Init.
type Vector[T any] struct {
	buf  []T
	init bool
}

// Init constructs a Vector with the given initial capacity. A capacity of
// 0 delays allocation until the first append.
func Init[T any](initialCapacity int) Vector[T] {
	v := Vector[T]{init: true}
	if initialCapacity > 0 {
		v.buf = make([]T, 0, initialCapacity)
	}
	return v
}

// Free releases the vector, returning a Vector failing Valid.
func (v Vector[T]) Free() Vector[T] {
	return Vector[T]{}
}

// Valid reports whether the vector was constructed with Init.
func (v Vector[T]) Valid() bool { return v.init }

// Len returns the number of stored elements.
func (v Vector[T]) Len() int { return len(v.buf) }

// Cap returns the number of elements the current buffer can store before
// the next reallocation.
func (v Vector[T]) Cap() int { return cap(v.buf) }

// Identity reports whether two vectors refer to the same buffer with the
// same length and capacity.
func Identity[T any](a, b Vector[T]) bool {
	if len(a.buf) != len(b.buf) || cap(a.buf) != cap(b.buf) {
		return false
	}
	if cap(a.buf) == 0 {
		return cap(b.buf) == 0
	}
	return &a.buf[:1][0] == &b.buf[:1][0]
}

// AppendN appends all elements of data, reallocating at most once. On
// overflow the capacity grows to max(2*cap, cap+n).
func (v Vector[T]) AppendN(data []T) Vector[T] {
	n := len(data)
	if len(v.buf)+n > cap(v.buf) {
		newCapacity := max(2*cap(v.buf), cap(v.buf)+n)
		v = v.Trunc(newCapacity)
	}
	v.buf = append(v.buf, data...)
	return v
}

// Append appends a single element.
func (v Vector[T]) Append(x T) Vector[T] {
	return v.AppendN([]T{x})
}

// Trunc resizes the capacity to newCapacity. Shrinking below the current
// length drops tail elements; growing leaves the length untouched. A
// negative capacity returns the old vector.
func (v Vector[T]) Trunc(newCapacity int) Vector[T] {
	if newCapacity < 0 {
		return v
	}
	newBuf := make([]T, min(len(v.buf), newCapacity), newCapacity)
	copy(newBuf, v.buf)
	v.buf = newBuf
	return v
}

// Vacuum reduces the capacity to the stored length.
func (v Vector[T]) Vacuum() Vector[T] {
	v.buf = slices.Clip(v.buf)
	return v
}

// Index returns a pointer to the element at i. Panics when i is out of
// range.
func (v Vector[T]) Index(i int) *T {
	return &v.buf[i]
}

// Pop removes the last element and returns it. This is a logical remove:
// the memory is reclaimed only by a later Vacuum. Panics on an empty
// vector.
func (v Vector[T]) Pop() (Vector[T], T) {
	last := v.buf[len(v.buf)-1]
	v.buf = v.buf[:len(v.buf)-1]
	return v, last
}

// MemReport returns the memory held by the vector buffer, counting
// capacity rather than length.
func (v Vector[T]) MemReport(name string, elemSize int) utils.MemReport {
	return utils.MemReport{
		Name:       name,
		TotalBytes: cap(v.buf) * elemSize,
	}
}
