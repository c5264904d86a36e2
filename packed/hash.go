package packed

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Hash returns a content hash of the array. Arrays that are Equal hash
// identically regardless of garbage in their unused trailing bits.
func (a Array) Hash() uint64 {
	h := xxh3.New()
	a.writeContent(h)
	return h.Sum64()
}

// HashWithSeed returns a seeded content hash.
func (a Array) HashWithSeed(seed uint64) uint64 {
	h := xxh3.New()

	seedBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(seedBuf, seed)
	h.Write(seedBuf)

	a.writeContent(h)
	return h.Sum64()
}

func (a Array) writeContent(h *xxh3.Hasher) {
	// Length and width first, so e.g. 8x width-4 and 4x width-8 arrays
	// over the same bytes do not collide.
	hdr := make([]byte, 8)
	binary.LittleEndian.PutUint32(hdr, uint32(a.length))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(a.width))
	h.Write(hdr)

	usedBits := a.length * a.width
	fullBytes := usedBits / 8
	h.Write(a.bits[:fullBytes])

	if rem := usedBits % 8; rem > 0 {
		// Mask the padding bits; Alloc does not zero the buffer.
		h.Write([]byte{a.bits[fullBytes] & (0xff << uint(8-rem))})
	}
}
