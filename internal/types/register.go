package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// FlagMask covers the bits of the F register that hold flags. The low
// nibble of F is always zero on hardware.
const FlagMask Register = Bit7 | Bit6 | Bit5 | Bit4

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. The High register
// is always the first named register of the pair.
//
// A RegisterPair holds no storage of its own, it is a view over the two
// registers it points to.
type RegisterPair struct {
	High *Register
	Low  *Register

	// LowMask is applied to the low byte on writes, a zero mask is
	// treated as 0xFF.
	LowMask Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	mask := r.LowMask
	if mask == 0 {
		mask = 0xFF
	}
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & mask
}
