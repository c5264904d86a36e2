package packed

import (
	"math/rand"
)

// randomValues generates n random values that fit in width bits.
func randomValues(n, width int, r *rand.Rand) []uint32 {
	limit := uint64(1) << uint(width)
	values := make([]uint32, n)
	for i := range values {
		values[i] = uint32(r.Uint64() % limit)
	}
	return values
}

// fill sets every element of a from values.
func fill(a Array, values []uint32) {
	for i, v := range values {
		a.Set(i, v)
	}
}
