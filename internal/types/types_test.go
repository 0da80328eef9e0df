package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterPair(t *testing.T) {
	var hi, lo Register
	p := RegisterPair{High: &hi, Low: &lo}

	p.SetUint16(0xBEEF)
	assert.Equal(t, Register(0xBE), hi)
	assert.Equal(t, Register(0xEF), lo)
	assert.Equal(t, uint16(0xBEEF), p.Uint16())

	t.Run("masked", func(t *testing.T) {
		var a, f Register
		af := RegisterPair{High: &a, Low: &f, LowMask: FlagMask}
		af.SetUint16(0x12FF)
		assert.Equal(t, Register(0x12), a)
		assert.Equal(t, Register(0xF0), f)
		assert.Equal(t, uint16(0x12F0), af.Uint16())
	})
}

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0xAB)
	s.Write16(0x1234)
	assert.Equal(t, []byte{0xAB, 0x34, 0x12}, s.Bytes())

	assert.Equal(t, 3, s.Remaining())
	assert.Equal(t, uint8(0xAB), s.Read8())
	assert.Equal(t, uint16(0x1234), s.Read16())
	assert.Equal(t, 0, s.Remaining())

	t.Run("past end", func(t *testing.T) {
		assert.Equal(t, uint8(0), s.Read8())
		assert.Equal(t, uint16(0), s.Read16())

		short := StateFromBytes([]byte{0x01})
		assert.Equal(t, uint16(0), short.Read16())
		assert.Equal(t, 0, short.Remaining())
	})
}

func TestModel(t *testing.T) {
	assert.Equal(t, DMGABC, StringToModel("dmg"))
	assert.Equal(t, CGBABC, StringToModel("CGB"))
	assert.Equal(t, Unset, StringToModel("nes"))
	assert.Equal(t, "SGB2", SGB2.String())

	models := Models()
	assert.Equal(t, []Model{DMG0, DMGABC, CGB0, CGBABC, MGB, SGB, SGB2, AGB}, models)
	for _, m := range models {
		b, ok := ModelBootStates[m]
		if assert.True(t, ok, m.String()) {
			assert.Equal(t, b, b.Normalize(), "%s boot F has low nibble set", m)
			assert.Equal(t, uint16(0x0100), b.PC, m.String())
			assert.Equal(t, uint16(0xFFFE), b.SP, m.String())
		}
	}
}

func TestFlagMask(t *testing.T) {
	assert.Equal(t, Register(0xF0), FlagMask)
	assert.Equal(t, 0b1000_0000, Bit7)
	assert.Equal(t, 0b0001_0000, Bit4)
}

func TestBootState_Normalize(t *testing.T) {
	b := BootState{A: 0x01, F: 0xBF}.Normalize()
	assert.Equal(t, BootState{A: 0x01, F: 0xB0}, b)
	assert.Equal(t, BootState{}, ZeroBootState)
}
