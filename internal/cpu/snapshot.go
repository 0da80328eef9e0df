package cpu

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/thelolagemann/gomeboy-regs/internal/types"
)

// Snapshot is a copy of every register at one point in time. It is what
// a debugger or inspector gets to look at; changing a Snapshot never
// changes the RegisterFile it came from.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// Snapshot returns a copy of the current register state.
func (r *RegisterFile) Snapshot() Snapshot {
	return Snapshot{
		A: r.a, F: r.f, B: r.b, C: r.c, D: r.d, E: r.e, H: r.h, L: r.l,
		SP: r.sp, PC: r.pc,
	}
}

// Flag reports whether the given flag was set when the snapshot was taken.
func (s Snapshot) Flag(flag Flag) bool {
	return isSet(s.F, flag)
}

// FlagString renders the flags as ZNHC, upper case when set and lower
// case when clear.
func (s Snapshot) FlagString() string {
	var b strings.Builder
	for _, f := range Flags {
		c := f.String()[0]
		if f == FlagSubtract {
			c = 'N'
		}
		if !s.Flag(f) {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A: %02x F: %02x B: %02x C: %02x D: %02x E: %02x H: %02x L: %02x SP: %04x PC: %04x [%s]",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC, s.FlagString())
}

// Bytes returns the snapshot in the same layout RegisterFile.Save uses.
func (s Snapshot) Bytes() []byte {
	return []byte{s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L,
		byte(s.SP), byte(s.SP >> 8), byte(s.PC), byte(s.PC >> 8)}
}

// Digest returns a hash of the register contents. Two snapshots with
// the same digest hold the same registers.
func (s Snapshot) Digest() uint64 {
	return xxhash.Sum64(s.Bytes())
}

// Restore writes the snapshot back into r, F losing its low nibble.
func (s Snapshot) Restore(r *RegisterFile) {
	r.Load(types.StateFromBytes(s.Bytes()))
}

// Encode writes the snapshot as a JSON object.
func (s Snapshot) Encode(e *jx.Encoder) {
	e.ObjStart()
	for _, reg := range [...]struct {
		name string
		v    uint8
	}{{"a", s.A}, {"f", s.F}, {"b", s.B}, {"c", s.C}, {"d", s.D}, {"e", s.E}, {"h", s.H}, {"l", s.L}} {
		e.FieldStart(reg.name)
		e.UInt8(reg.v)
	}
	e.FieldStart("sp")
	e.UInt16(s.SP)
	e.FieldStart("pc")
	e.UInt16(s.PC)

	// informational only, Decode derives flags from f
	e.FieldStart("flags")
	e.ObjStart()
	for _, f := range Flags {
		e.FieldStart(strings.ToLower(f.String()))
		e.Bool(s.Flag(f))
	}
	e.ObjEnd()
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	s.Encode(e)
	return append([]byte(nil), e.Bytes()...), nil
}

// Decode reads a snapshot written by Encode. Unknown fields are skipped.
func (s *Snapshot) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var reg *uint8
		switch key {
		case "a":
			reg = &s.A
		case "f":
			reg = &s.F
		case "b":
			reg = &s.B
		case "c":
			reg = &s.C
		case "d":
			reg = &s.D
		case "e":
			reg = &s.E
		case "h":
			reg = &s.H
		case "l":
			reg = &s.L
		case "sp", "pc":
			v, err := d.UInt16()
			if err != nil {
				return errors.Wrap(err, key)
			}
			if key == "sp" {
				s.SP = v
			} else {
				s.PC = v
			}
			return nil
		default:
			return d.Skip()
		}
		v, err := d.UInt8()
		if err != nil {
			return errors.Wrap(err, key)
		}
		*reg = v
		return nil
	})
}

// UnmarshalJSON implements json.Unmarshaler. The low nibble of F is
// cleared.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	if err := s.Decode(jx.DecodeBytes(data)); err != nil {
		return err
	}
	s.F &= types.FlagMask
	return nil
}

// DecodeSnapshot parses a JSON snapshot. The low nibble of F is cleared.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := s.UnmarshalJSON(data); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	return s, nil
}
