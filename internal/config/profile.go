// Package config loads boot profiles and register state files. It is the
// only place where register state comes from outside the process, so all
// the validation and error reporting for it happens here rather than in
// the register file.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"

	"github.com/thelolagemann/gomeboy-regs/internal/types"
	"github.com/thelolagemann/gomeboy-regs/pkg/log"
)

// ErrUnknownModel is returned when a profile names a model that does not
// exist.
var ErrUnknownModel = errors.New("unknown model")

// Profile describes the state a register file boots into: an optional
// model, and individual registers overriding what the model sets.
//
//	model = "DMG"
//	[registers]
//	a = 0x11
//	sp = 0xFFFE
type Profile struct {
	Model     string    `toml:"model"`
	Registers Overrides `toml:"registers"`

	log log.Logger // nil logs nothing
}

// Overrides holds registers set explicitly by a profile. Nil means the
// register keeps the model value.
type Overrides struct {
	A  *uint8  `toml:"a"`
	F  *uint8  `toml:"f"`
	B  *uint8  `toml:"b"`
	C  *uint8  `toml:"c"`
	D  *uint8  `toml:"d"`
	E  *uint8  `toml:"e"`
	H  *uint8  `toml:"h"`
	L  *uint8  `toml:"l"`
	SP *uint16 `toml:"sp"`
	PC *uint16 `toml:"pc"`
}

// Opt is a function that modifies a Profile.
type Opt func(p *Profile)

// WithLogger sets the logger used to report problems with a profile.
func WithLogger(l log.Logger) Opt {
	return func(p *Profile) {
		p.log = l
	}
}

// Load reads a profile from the TOML file at path.
func Load(path string, opts ...Opt) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open profile")
	}
	defer f.Close()

	p, err := Decode(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "profile %s", path)
	}
	return p, nil
}

// Decode reads a TOML profile from r.
func Decode(r io.Reader, opts ...Opt) (*Profile, error) {
	p := &Profile{log: log.NewNullLogger()}
	for _, opt := range opts {
		opt(p)
	}

	md, err := toml.NewDecoder(r).Decode(p)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	for _, key := range md.Undecoded() {
		p.log.Warnf("ignoring unknown profile key %q", key.String())
	}

	if p.Model != "" {
		if _, err := ParseModel(p.Model); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseModel resolves a model name such as "dmg" or "CGB". Unset is not a
// model, so naming it is an error like any other unknown name.
func ParseModel(name string) (types.Model, error) {
	m := types.StringToModel(strings.TrimSpace(name))
	if m == types.Unset {
		return types.Unset, errors.Wrapf(ErrUnknownModel, "%q", name)
	}
	return m, nil
}

// BootState returns the state the profile describes. Without a model the
// overrides are applied over types.ZeroBootState. An unknown model is an
// error, even for a Profile that did not come from Decode.
func (p *Profile) BootState() (types.BootState, error) {
	b := types.ZeroBootState
	if p.Model != "" {
		m, err := ParseModel(p.Model)
		if err != nil {
			return types.BootState{}, err
		}
		b = types.ModelBootStates[m]
	}

	o := p.Registers
	for _, reg := range []struct {
		dst *uint8
		src *uint8
	}{{&b.A, o.A}, {&b.F, o.F}, {&b.B, o.B}, {&b.C, o.C}, {&b.D, o.D}, {&b.E, o.E}, {&b.H, o.H}, {&b.L, o.L}} {
		if reg.src != nil {
			*reg.dst = *reg.src
		}
	}
	if o.SP != nil {
		b.SP = *o.SP
	}
	if o.PC != nil {
		b.PC = *o.PC
	}

	if b.F&^types.FlagMask != 0 && p.log != nil {
		p.log.Warnf("f=%02x has low nibble set, using %02x", b.F, b.F&types.FlagMask)
	}
	return b.Normalize(), nil
}
