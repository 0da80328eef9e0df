package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gomeboy-regs/internal/cpu"
	"github.com/thelolagemann/gomeboy-regs/internal/types"
)

func TestWriteReadState(t *testing.T) {
	s := types.NewState()
	cpu.NewRegisterFile(cpu.AsModel(types.DMG0)).Save(s)

	var buf bytes.Buffer
	require.NoError(t, WriteState(&buf, s))
	assert.Equal(t, []byte("SM83\x01"), buf.Bytes()[:5])

	got, err := ReadState(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Bytes(), got.Bytes())
}

type failWriter struct{ after int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, os.ErrClosed
	}
	w.after--
	return len(p), nil
}

func TestWriteState_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteState(&buf, types.NewState()), "empty state")

	assert.ErrorIs(t, WriteState(&failWriter{}, types.NewState()), os.ErrClosed, "header")
	s := types.NewState()
	cpu.NewRegisterFile(cpu.AsModel(types.MGB)).Save(s)
	assert.Error(t, WriteState(&failWriter{after: 1}, s), "body")
}

func TestReadState_Bad(t *testing.T) {
	tests := map[string][]byte{
		"empty":   nil,
		"short":   []byte("SM"),
		"magic":   []byte("GB80\x01"),
		"version": []byte("SM83\x02"),
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadState(bytes.NewReader(data))
			assert.True(t, errors.Is(err, ErrBadStateFile), "%v", err)
		})
	}
}

func TestStateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regs.state")

	src := cpu.NewRegisterFile(cpu.AsModel(types.CGBABC))
	src.SetFlag(cpu.FlagSubtract, true)
	src.SetDE(0x1357)
	require.NoError(t, SaveStateFile(path, src))
	assert.Error(t, SaveStateFile(filepath.Join(dir, "missing", "regs.state"), src))

	dst := cpu.NewRegisterFile()
	require.NoError(t, LoadStateFile(path, dst))
	assert.Equal(t, src.Snapshot(), dst.Snapshot())

	t.Run("truncated", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteState(&buf, types.StateFromBytes([]byte{1, 2, 3})))
		short := filepath.Join(dir, "short.state")
		require.NoError(t, os.WriteFile(short, buf.Bytes(), 0644))

		r := cpu.NewRegisterFile()
		err := LoadStateFile(short, r)
		assert.True(t, errors.Is(err, ErrBadStateFile), "%v", err)
		assert.Equal(t, cpu.Snapshot{}, r.Snapshot())
	})
	t.Run("missing", func(t *testing.T) {
		assert.Error(t, LoadStateFile(filepath.Join(dir, "nope"), cpu.NewRegisterFile()))
	})
}
