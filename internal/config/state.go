package config

import (
	"bytes"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/go-faster/errors"

	"github.com/thelolagemann/gomeboy-regs/internal/cpu"
	"github.com/thelolagemann/gomeboy-regs/internal/types"
)

// ErrBadStateFile is returned when a state file is not one written by
// WriteState, or is too short to hold a register file.
var ErrBadStateFile = errors.New("bad state file")

const stateVersion = 1

var stateMagic = []byte("SM83")

// WriteState writes s to w, brotli compressed, behind a magic and
// version header.
func WriteState(w io.Writer, s *types.State) error {
	header := append(append([]byte(nil), stateMagic...), stateVersion)
	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	bw := brotli.NewWriterLevel(w, brotli.BestCompression)
	if _, err := bw.Write(s.Bytes()); err != nil {
		return errors.Wrap(err, "compress")
	}
	if err := bw.Close(); err != nil {
		return errors.Wrap(err, "compress")
	}
	return nil
}

// ReadState reads a state written by WriteState.
func ReadState(r io.Reader) (*types.State, error) {
	header := make([]byte, len(stateMagic)+1)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, errors.Wrapf(ErrBadStateFile, "header: %v", err)
	}
	if !bytes.Equal(header[:len(stateMagic)], stateMagic) {
		return nil, errors.Wrapf(ErrBadStateFile, "magic %q", header[:len(stateMagic)])
	}
	if v := header[len(stateMagic)]; v != stateVersion {
		return nil, errors.Wrapf(ErrBadStateFile, "version %d", v)
	}

	raw, err := io.ReadAll(brotli.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "decompress")
	}
	return types.StateFromBytes(raw), nil
}

// SaveStateFile saves the registers of r to the file at path.
func SaveStateFile(path string, r *cpu.RegisterFile) error {
	s := types.NewState()
	r.Save(s)

	var buf bytes.Buffer
	if err := WriteState(&buf, s); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "save state")
	}
	return nil
}

// LoadStateFile loads the registers saved at path into r. r is left
// untouched on error.
func LoadStateFile(path string, r *cpu.RegisterFile) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open state")
	}
	defer f.Close()

	s, err := ReadState(f)
	if err != nil {
		return errors.Wrapf(err, "state %s", path)
	}
	if s.Remaining() < cpu.StateSize {
		return errors.Wrapf(ErrBadStateFile, "state %s: %d bytes, want %d", path, s.Remaining(), cpu.StateSize)
	}
	r.Load(s)
	return nil
}
