package packed

// The byte-level mask arithmetic lives here, behind named helpers, so the
// get/set loops in packed.go read as plain walks over the element's bytes.
//
// A bit range within a byte is described by two offsets: startFrom bits
// skipped on the MSB side and rightIgnore bits skipped on the LSB side.
// For startFrom=2, rightIgnore=3 the mask covers bits ..111... (0x38).

// byteMask returns a mask covering the bits strictly between startFrom
// (counted from the MSB) and rightIgnore (counted from the LSB).
func byteMask(startFrom, rightIgnore int) byte {
	maskRight := byte(0xff) >> uint(startFrom)
	maskLeft := byte(0xff) << uint(rightIgnore)
	return maskLeft & maskRight
}

// extractBitsFromByte returns the masked bit range of b, right-aligned.
func extractBitsFromByte(b byte, startFrom, rightIgnore int) byte {
	return (b & byteMask(startFrom, rightIgnore)) >> uint(rightIgnore)
}

// writeBitsIntoByte clears the bit range of b and fills it with the low
// bits of value. Bits of value beyond the range width are discarded, so a
// careless caller cannot clobber neighbouring ranges in the same byte.
func writeBitsIntoByte(b byte, startFrom, rightIgnore int, value byte) byte {
	mask := byteMask(startFrom, rightIgnore)
	return b&^mask | value<<uint(rightIgnore)&mask
}
