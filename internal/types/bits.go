package types

// Flag bits of the F register. The low nibble is unused.
const (
	Bit4 = 1 << (iota + 4) // 0b0001_0000 - carry
	Bit5                   // 0b0010_0000 - half carry
	Bit6                   // 0b0100_0000 - subtract
	Bit7                   // 0b1000_0000 - zero
)
