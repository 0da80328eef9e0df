package types

import (
	"sort"
	"strings"
)

type Model int // The Model used in emulation.

const (
	Unset  Model = iota // Unset - Model hasn't been set - behaves as DMGABC
	DMG0                // DMG0 - early Game Boy, only released in Japan
	DMGABC              // DMGABC - Standard Game Boy
	CGB0                // CGB0 -  early Game Boy Colour, only released in Japan
	CGBABC              // CGBABC - Standard Game Boy Colour
	MGB                 // MGB - Pocket Game Boy
	SGB                 // SGB - Super Game Boy
	SGB2                // SGB2 - Super Game Boy 2
	AGB                 // AGB - Game Boy Advance
)

var ModelNames = map[Model]string{
	DMG0:   "DMG0",
	DMGABC: "DMG",
	CGB0:   "CGB0",
	CGBABC: "CGB",
	MGB:    "MGB",
	SGB:    "SGB",
	SGB2:   "SGB2",
	AGB:    "AGB",
	Unset:  "Unset",
}

// StringToModel converts a string to a Model.
func StringToModel(s string) Model {
	for m, n := range ModelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}

	return Unset
}

func (m Model) String() string {
	return ModelNames[m]
}

// Models returns every known Model except Unset, in declaration order.
func Models() []Model {
	models := make([]Model, 0, len(ModelNames)-1)
	for m := range ModelNames {
		if m != Unset {
			models = append(models, m)
		}
	}
	sort.Slice(models, func(i, j int) bool { return models[i] < models[j] })
	return models
}

// BootState is the register state a CPU starts executing from. It is
// always chosen explicitly, either the zeroed state or the state a model
// is left in once its boot ROM hands over to the cartridge.
type BootState struct {
	A, F, B, C, D, E, H, L Register
	SP, PC                 uint16
}

// Normalize returns the BootState with the unused low nibble of F
// cleared.
func (b BootState) Normalize() BootState {
	b.F &= FlagMask
	return b
}

// ZeroBootState has every register cleared. This is the state the
// boot ROM itself starts from.
var ZeroBootState = BootState{}

// ModelBootStates - model specific starting CPU registers, as left by the
// boot ROM at 0x0100.
var ModelBootStates = map[Model]BootState{
	Unset:  {A: 0x01, F: 0xB0, B: 0x00, C: 0x13, D: 0x00, E: 0xD8, H: 0x01, L: 0x4D, SP: 0xFFFE, PC: 0x0100}, // default to DMG registers
	DMG0:   {A: 0x01, F: 0x00, B: 0xFF, C: 0x13, D: 0x00, E: 0xC1, H: 0x84, L: 0x03, SP: 0xFFFE, PC: 0x0100},
	DMGABC: {A: 0x01, F: 0xB0, B: 0x00, C: 0x13, D: 0x00, E: 0xD8, H: 0x01, L: 0x4D, SP: 0xFFFE, PC: 0x0100},
	CGB0:   {A: 0x11, F: 0x80, B: 0x00, C: 0x00, D: 0xFF, E: 0x56, H: 0x00, L: 0x0D, SP: 0xFFFE, PC: 0x0100},
	CGBABC: {A: 0x11, F: 0x80, B: 0x00, C: 0x00, D: 0xFF, E: 0x56, H: 0x00, L: 0x0D, SP: 0xFFFE, PC: 0x0100},
	MGB:    {A: 0xFF, F: 0xB0, B: 0x00, C: 0x13, D: 0x00, E: 0xD8, H: 0x01, L: 0x4D, SP: 0xFFFE, PC: 0x0100},
	SGB:    {A: 0x01, F: 0x00, B: 0x00, C: 0x14, D: 0x00, E: 0x00, H: 0xC0, L: 0x60, SP: 0xFFFE, PC: 0x0100},
	SGB2:   {A: 0xFF, F: 0x00, B: 0x00, C: 0x14, D: 0x00, E: 0x00, H: 0xC0, L: 0x60, SP: 0xFFFE, PC: 0x0100},
	AGB:    {A: 0x11, F: 0x00, B: 0x01, C: 0x00, D: 0xFF, E: 0x56, H: 0x00, L: 0x0D, SP: 0xFFFE, PC: 0x0100},
}
