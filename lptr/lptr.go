// Package lptr provides a bounds-carrying view over a slice. It only
// extends a plain pointer with length information; it adds no safety
// checks of its own beyond what its operations document. Results of Index
// and Truncate are meant to be tested with InBounds or Valid.
package lptr

import (
	"golang.org/x/exp/slices"
)

// Ptr is a length-carrying view into a buffer of T.
// The zero Ptr is invalid.
type Ptr[T any] struct {
	buf []T
}

// From wraps an existing slice in a Ptr without copying.
func From[T any](s []T) Ptr[T] {
	return Ptr[T]{buf: s}
}

// Calloc allocates a zeroed buffer of n members. A negative n yields a Ptr
// failing Allocated.
func Calloc[T any](n int) Ptr[T] {
	if n < 0 {
		return Ptr[T]{}
	}
	return Ptr[T]{buf: make([]T, n)}
}

// Realloc resizes the view to n members, preserving contents up to the
// smaller length. A negative n returns the old Ptr unchanged.
func (p Ptr[T]) Realloc(n int) Ptr[T] {
	if n < 0 {
		return p
	}
	if n <= len(p.buf) {
		return Ptr[T]{buf: p.buf[:n]}
	}
	grown := slices.Grow(p.buf, n-len(p.buf))
	return Ptr[T]{buf: grown[:n]}
}

// Free releases the view, returning a Ptr failing Valid. The backing memory
// is reclaimed by the garbage collector once unreferenced.
func (p Ptr[T]) Free() Ptr[T] {
	return Ptr[T]{}
}

// Raw returns the underlying slice.
func (p Ptr[T]) Raw() []T { return p.buf }

// Len returns the number of members in view.
func (p Ptr[T]) Len() int { return len(p.buf) }

// Allocated reports whether the Ptr references a buffer at all.
func (p Ptr[T]) Allocated() bool { return p.buf != nil }

// InBounds reports whether the view still covers at least one member.
// Used together with Index for boundary checking.
func (p Ptr[T]) InBounds() bool { return len(p.buf) > 0 }

// Valid reports whether the Ptr is allocated and in bounds.
func (p Ptr[T]) Valid() bool { return p.Allocated() && p.InBounds() }

// Truncate reduces the view to n members. Lengths outside [0, Len] return
// the Ptr unchanged; Truncate never extends a view.
func (p Ptr[T]) Truncate(n int) Ptr[T] {
	if n < 0 || n > len(p.buf) {
		return p
	}
	return Ptr[T]{buf: p.buf[:n]}
}

// Index advances the view to the given member, keeping the remaining
// length. Indexing past the end yields a Ptr failing InBounds.
func (p Ptr[T]) Index(i int) Ptr[T] {
	if i < 0 || i > len(p.buf) {
		return Ptr[T]{}
	}
	return Ptr[T]{buf: p.buf[i:]}
}

// Copy copies members from src into dst, filling whichever view is smaller,
// and returns the number of members copied. Overlapping views are handled.
func Copy[T any](dst, src Ptr[T]) int {
	return copy(dst.buf, src.buf)
}

// Equal reports whether two views have the same length and contents.
func Equal[T comparable](a, b Ptr[T]) bool {
	return slices.Equal(a.buf, b.buf)
}
