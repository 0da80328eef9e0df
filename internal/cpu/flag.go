package cpu

import (
	"github.com/thelolagemann/gomeboy-regs/internal/types"
	"github.com/thelolagemann/gomeboy-regs/pkg/bits"
)

//go:generate go tool stringer -type=Flag -trimprefix=Flag

// Flag is one of the status bits held in the upper nibble of the F
// register. Its value is the bit position the flag occupies.
type Flag uint8

const (
	FlagZero      Flag = 7 // Z - set when a result is zero
	FlagSubtract  Flag = 6 // N - set when the last operation was a subtraction
	FlagHalfCarry Flag = 5 // H - carry out of the low nibble
	FlagCarry     Flag = 4 // C - carry out of bit 7 (or borrow)
)

// Flags lists every flag from the highest bit down.
var Flags = [...]Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

// Valid reports whether f is one of the four hardware flags.
func (f Flag) Valid() bool {
	return f >= FlagCarry && f <= FlagZero
}

// isSet reports whether flag is set in the flag byte f. Anything that is
// not a hardware flag is never set.
func isSet(f types.Register, flag Flag) bool {
	return flag.Valid() && bits.Test(f, uint8(flag))
}

// SetFlag sets or clears the given flag, leaving every other bit of F as
// it was. Anything that is not a hardware flag is ignored, so the low
// nibble can never be reached.
func (r *RegisterFile) SetFlag(flag Flag, on bool) {
	if !flag.Valid() {
		return
	}
	if on {
		r.f = bits.Set(r.f, uint8(flag))
	} else {
		r.f = bits.Reset(r.f, uint8(flag))
	}
}

// Flag returns true if the given flag is set.
func (r *RegisterFile) Flag(flag Flag) bool {
	return isSet(r.f, flag)
}

// SetFlags writes all four flags at once.
func (r *RegisterFile) SetFlags(zero, subtract, halfCarry, carry bool) {
	r.SetFlag(FlagZero, zero)
	r.SetFlag(FlagSubtract, subtract)
	r.SetFlag(FlagHalfCarry, halfCarry)
	r.SetFlag(FlagCarry, carry)
}

// ClearFlags clears every flag.
func (r *RegisterFile) ClearFlags() {
	r.f = 0
}
