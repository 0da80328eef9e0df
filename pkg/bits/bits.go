package bits

// Mask returns a byte with only the bit at the given index set. Indexes
// outside 0-7 give an empty mask.
func Mask(i uint8) uint8 {
	if i > 7 {
		return 0
	}
	return 1 << i
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ Mask(i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | Mask(i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return b&Mask(i) != 0
}
