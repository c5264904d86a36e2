// Package str adapts Go strings to lptr views.
package str

import (
	"bitadt/lptr"
)

// Bytes returns a byte view of s. Go strings are immutable, so the view is
// over a copy; mutating it leaves s untouched.
func Bytes(s string) lptr.Ptr[byte] {
	return lptr.From([]byte(s))
}

// Runes returns a rune view of s, one member per code point.
func Runes(s string) lptr.Ptr[rune] {
	return lptr.From([]rune(s))
}

// String materializes a byte view back into a string.
func String(p lptr.Ptr[byte]) string {
	return string(p.Raw())
}
