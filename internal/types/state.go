package types

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State is a flat little endian byte buffer that register state is saved
// into and loaded back from. Values must be read back in the order they
// were written.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0, 16),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// Remaining returns the number of bytes left to read.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

// Read8 reads the next byte. Reading past the end yields 0.
func (s *State) Read8() uint8 {
	if s.Remaining() < 1 {
		return 0
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

// Read16 reads the next little endian uint16. Reading past
// the end yields 0.
func (s *State) Read16() uint16 {
	if s.Remaining() < 2 {
		s.readPosition = len(s.raw)
		return 0
	}
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) Bytes() []byte {
	return s.raw
}
