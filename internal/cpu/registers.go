// Package cpu holds the register file of the Game Boy CPU (the Sharp
// SM83). The register file is the single source of truth for register
// and flag state; instruction execution, the memory bus and interrupt
// handling live elsewhere and only ever reach the registers through the
// methods defined here.
package cpu

import (
	"github.com/thelolagemann/gomeboy-regs/internal/types"
)

//go:generate go tool stringer -type=Reg,Pair -linecomment

// Reg names one of the 8-bit registers.
type Reg uint8

const (
	RegA Reg = iota // A
	RegF            // F
	RegB            // B
	RegC            // C
	RegD            // D
	RegE            // E
	RegH            // H
	RegL            // L
)

// Pair names one of the 16-bit register pairs.
type Pair uint8

const (
	PairAF Pair = iota // AF
	PairBC             // BC
	PairDE             // DE
	PairHL             // HL
)

// RegisterFile contains the 8-bit registers, the 16-bit register pairs
// built from them, and the stack pointer and program counter. A
// RegisterFile belongs to exactly one CPU and is not safe for concurrent
// use.
type RegisterFile struct {
	a, f types.Register
	b, c types.Register
	d, e types.Register
	h, l types.Register

	// sp is the stack pointer, it points to the top of the stack.
	sp uint16
	// pc is the program counter, it points to the next instruction to be executed.
	pc uint16

	af, bc, de, hl types.RegisterPair

	boot types.BootState
}

// Opt is a function that modifies a RegisterFile before
// its boot state is applied.
type Opt func(r *RegisterFile)

// WithBootState starts the RegisterFile from the given state.
func WithBootState(b types.BootState) Opt {
	return func(r *RegisterFile) {
		r.boot = b.Normalize()
	}
}

// AsModel starts the RegisterFile from the state the model's
// boot ROM leaves behind.
func AsModel(m types.Model) Opt {
	return func(r *RegisterFile) {
		b, ok := types.ModelBootStates[m]
		if !ok {
			b = types.ModelBootStates[types.Unset]
		}
		r.boot = b.Normalize()
	}
}

// NewRegisterFile returns a RegisterFile in its boot state. Without any
// options that is types.ZeroBootState.
func NewRegisterFile(opts ...Opt) *RegisterFile {
	r := &RegisterFile{boot: types.ZeroBootState}

	// create register pairs
	r.af = types.RegisterPair{High: &r.a, Low: &r.f, LowMask: types.FlagMask}
	r.bc = types.RegisterPair{High: &r.b, Low: &r.c}
	r.de = types.RegisterPair{High: &r.d, Low: &r.e}
	r.hl = types.RegisterPair{High: &r.h, Low: &r.l}

	for _, opt := range opts {
		opt(r)
	}
	r.Reset()

	return r
}

var _ types.Resettable = (*RegisterFile)(nil)

// Reset puts every register back to the boot state the
// RegisterFile was created with.
func (r *RegisterFile) Reset() {
	r.a, r.f = r.boot.A, r.boot.F&types.FlagMask
	r.b, r.c = r.boot.B, r.boot.C
	r.d, r.e = r.boot.D, r.boot.E
	r.h, r.l = r.boot.H, r.boot.L
	r.sp, r.pc = r.boot.SP, r.boot.PC
}

// BootState returns the state Reset returns to.
func (r *RegisterFile) BootState() types.BootState {
	return r.boot
}

func (r *RegisterFile) A() uint8 { return r.a }
func (r *RegisterFile) F() uint8 { return r.f }
func (r *RegisterFile) B() uint8 { return r.b }
func (r *RegisterFile) C() uint8 { return r.c }
func (r *RegisterFile) D() uint8 { return r.d }
func (r *RegisterFile) E() uint8 { return r.e }
func (r *RegisterFile) H() uint8 { return r.h }
func (r *RegisterFile) L() uint8 { return r.l }

func (r *RegisterFile) SetA(v uint8) { r.a = v }
func (r *RegisterFile) SetB(v uint8) { r.b = v }
func (r *RegisterFile) SetC(v uint8) { r.c = v }
func (r *RegisterFile) SetD(v uint8) { r.d = v }
func (r *RegisterFile) SetE(v uint8) { r.e = v }
func (r *RegisterFile) SetH(v uint8) { r.h = v }
func (r *RegisterFile) SetL(v uint8) { r.l = v }

// SetF writes the flag register. The low nibble is discarded.
func (r *RegisterFile) SetF(v uint8) { r.f = v & types.FlagMask }

// register returns a pointer to the storage behind reg, or nil.
func (r *RegisterFile) register(reg Reg) *types.Register {
	switch reg {
	case RegA:
		return &r.a
	case RegF:
		return &r.f
	case RegB:
		return &r.b
	case RegC:
		return &r.c
	case RegD:
		return &r.d
	case RegE:
		return &r.e
	case RegH:
		return &r.h
	case RegL:
		return &r.l
	}
	return nil
}

// Read returns the value of the given 8-bit register. An unknown
// register reads as 0.
func (r *RegisterFile) Read(reg Reg) uint8 {
	if p := r.register(reg); p != nil {
		return *p
	}
	return 0
}

// Write sets the given 8-bit register. Writes to F lose the low nibble,
// writes to an unknown register are dropped.
func (r *RegisterFile) Write(reg Reg, v uint8) {
	if reg == RegF {
		r.SetF(v)
		return
	}
	if p := r.register(reg); p != nil {
		*p = v
	}
}

func (r *RegisterFile) pair(p Pair) *types.RegisterPair {
	switch p {
	case PairAF:
		return &r.af
	case PairBC:
		return &r.bc
	case PairDE:
		return &r.de
	case PairHL:
		return &r.hl
	}
	return nil
}

// ReadPair returns the given register pair as a 16-bit value, the first
// named register in the high byte. An unknown pair reads as 0.
func (r *RegisterFile) ReadPair(p Pair) uint16 {
	if rp := r.pair(p); rp != nil {
		return rp.Uint16()
	}
	return 0
}

// WritePair splits v across the given register pair, high byte to the
// first named register. Writes to an unknown pair are dropped.
func (r *RegisterFile) WritePair(p Pair, v uint16) {
	if rp := r.pair(p); rp != nil {
		rp.SetUint16(v)
	}
}

func (r *RegisterFile) AF() uint16 { return r.af.Uint16() }
func (r *RegisterFile) BC() uint16 { return r.bc.Uint16() }
func (r *RegisterFile) DE() uint16 { return r.de.Uint16() }
func (r *RegisterFile) HL() uint16 { return r.hl.Uint16() }

// SetAF writes A and F. The low nibble of F is always 0, so
// AF reads back as v&0xFFF0.
func (r *RegisterFile) SetAF(v uint16) { r.af.SetUint16(v) }
func (r *RegisterFile) SetBC(v uint16) { r.bc.SetUint16(v) }
func (r *RegisterFile) SetDE(v uint16) { r.de.SetUint16(v) }
func (r *RegisterFile) SetHL(v uint16) { r.hl.SetUint16(v) }

func (r *RegisterFile) SP() uint16 { return r.sp }
func (r *RegisterFile) PC() uint16 { return r.pc }

func (r *RegisterFile) SetSP(v uint16) { r.sp = v }
func (r *RegisterFile) SetPC(v uint16) { r.pc = v }

var _ types.Stater = (*RegisterFile)(nil)

// Save writes A, F, B, C, D, E, H, L, SP and PC, in that order.
func (r *RegisterFile) Save(s *types.State) {
	s.Write8(r.a)
	s.Write8(r.f)
	s.Write8(r.b)
	s.Write8(r.c)
	s.Write8(r.d)
	s.Write8(r.e)
	s.Write8(r.h)
	s.Write8(r.l)
	s.Write16(r.sp)
	s.Write16(r.pc)
}

// Load reads back the registers written by Save.
func (r *RegisterFile) Load(s *types.State) {
	r.a = s.Read8()
	r.f = s.Read8() & types.FlagMask
	r.b = s.Read8()
	r.c = s.Read8()
	r.d = s.Read8()
	r.e = s.Read8()
	r.h = s.Read8()
	r.l = s.Read8()
	r.sp = s.Read16()
	r.pc = s.Read16()
}

// StateSize is the number of bytes Save writes.
const StateSize = 8 + 2 + 2
