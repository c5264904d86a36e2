// Package packed implements a bit-packed array of fixed-width unsigned
// integers. Elements are stored back to back with no padding, so a width-3
// array stores its second element across bits 3..5 of byte 0. The stream is
// MSB-first: bit 0 of the stream is the most significant bit of byte 0.
package packed

import (
	"fmt"

	"bitadt/errutil"
	"bitadt/utils"
)

// MaxWidth is the largest supported element width in bits.
const MaxWidth = 32

// Array is a packed array of length fixed-width unsigned integers.
// The zero Array is invalid; check Valid before use.
type Array struct {
	length int
	width  int
	bits   []byte
	owned  bool
}

// Alloc allocates an Array of length elements of width bits each.
// A negative length, or a width outside 1..MaxWidth, yields an Array
// failing Valid. Callers must not rely on the buffer arriving zeroed.
func Alloc(length, width int) Array {
	if length < 0 || width <= 0 || width > MaxWidth {
		return Array{}
	}
	numBytes := length*width/8 + 1
	return Array{
		length: length,
		width:  width,
		bits:   make([]byte, numBytes),
		owned:  true,
	}
}

// Wrap constructs an Array over an existing buffer without taking ownership
// of it. The element count is however many whole width-bit elements fit in
// the buffer; trailing bits are ignored.
func Wrap(buf []byte, width int) Array {
	if width <= 0 || width > MaxWidth {
		return Array{}
	}
	return Array{
		length: len(buf) * 8 / width,
		width:  width,
		bits:   buf,
	}
}

// Valid reports whether the Array holds a buffer. It does not re-verify the
// buffer size; that is established at construction.
func (a Array) Valid() bool {
	return a.bits != nil
}

// Release drops the owned buffer, leaving an Array failing Valid.
// Wrapping arrays do not own their buffer and are left untouched.
func (a *Array) Release() {
	if !a.owned {
		return
	}
	a.bits = nil
	a.owned = false
	a.length = 0
}

// Len returns the number of elements.
func (a Array) Len() int { return a.length }

// Width returns the element width in bits.
func (a Array) Width() int { return a.width }

// Bytes returns the underlying buffer.
func (a Array) Bytes() []byte { return a.bits }

// Get returns the element at index. It panics if index is out of range.
//
// An element can lie entirely inside one byte, straddle two bytes even at
// sub-byte widths, or span up to five bytes at full width. The loop handles
// all three the same way: take whatever of the element is in the current
// byte, fold it into the accumulator, and move on with the remainder.
func (a Array) Get(index int) uint32 {
	a.checkIndex(index)

	startBit := index * a.width
	byteIndex := startBit / 8
	startFrom := startBit % 8

	var result uint32
	for bitsRemaining := a.width; bitsRemaining > 0; byteIndex++ {
		// Low bits of this byte belonging to a later element, or unused.
		rightIgnore := max(0, 8-startFrom-bitsRemaining)
		bitsRead := 8 - startFrom - rightIgnore

		value := extractBitsFromByte(a.bits[byteIndex], startFrom, rightIgnore)
		result = result<<uint(bitsRead) + uint32(value)

		bitsRemaining -= bitsRead
		// Only the first byte of an element starts mid-byte.
		startFrom = 0
	}
	return result
}

// Set stores value at index. It panics if index is out of range.
// A value wider than Width bits is not validated: the excess bits are
// silently discarded and the stored element is truncated.
func (a Array) Set(index int, value uint32) {
	a.checkIndex(index)
	errutil.BugOn(a.width < MaxWidth && value>>uint(a.width) != 0,
		"value %d does not fit in %d bits", value, a.width)

	startBit := index * a.width
	byteIndex := startBit / 8
	startFrom := startBit % 8

	for bitsRemaining := a.width; bitsRemaining > 0; byteIndex++ {
		rightIgnore := max(0, 8-startFrom-bitsRemaining)
		bitsWrite := 8 - startFrom - rightIgnore

		// Most significant remaining bits of value land in the
		// earliest byte.
		chunk := byte(value >> uint(bitsRemaining-bitsWrite))
		a.bits[byteIndex] = writeBitsIntoByte(a.bits[byteIndex], startFrom, rightIgnore, chunk)

		bitsRemaining -= bitsWrite
		startFrom = 0
	}
}

// Equal reports whether two arrays have the same length, width and element
// values. Unused trailing bits in the buffers are ignored.
func (a Array) Equal(b Array) bool {
	if a.length != b.length || a.width != b.width {
		return false
	}
	for i := 0; i < a.length; i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// MemReport returns the memory held by the array buffer.
func (a Array) MemReport(name string) utils.MemReport {
	return utils.MemReport{
		Name:       name,
		TotalBytes: len(a.bits),
	}
}

func (a Array) checkIndex(index int) {
	if index < 0 || index >= a.length {
		panic(fmt.Sprintf("packed: index %d out of range [0, %d)", index, a.length))
	}
}
