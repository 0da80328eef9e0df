package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/thelolagemann/gomeboy-regs/internal/config"
	"github.com/thelolagemann/gomeboy-regs/internal/cpu"
	"github.com/thelolagemann/gomeboy-regs/internal/types"
	"github.com/thelolagemann/gomeboy-regs/pkg/log"
)

type (
	CLI struct {
		Boot   Boot   `cmd:"" help:"Build a register file and print it." default:"withargs"`
		Models Models `cmd:"" help:"List models and their boot registers."`
		State  State  `cmd:"" help:"Print the registers held in a state file."`

		LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)." default:"warn"`
	}

	Boot struct {
		Model   string   `name:"model" help:"${model_help}" placeholder:"MODEL"`
		Config  string   `name:"config" help:"TOML boot profile." type:"existingfile"`
		SetFlag []string `name:"set-flag" help:"${flag_help}" placeholder:"z,n,h,c"`
		JSON    bool     `name:"json" help:"Print as JSON."`
		Save    string   `name:"save" help:"Write a state file." type:"path"`
	}

	Models struct{}

	State struct {
		Path string `arg:"" name:"/path/to/state" type:"existingfile"`
		JSON bool   `name:"json" help:"Print as JSON."`
	}
)

// env is what every command runs against.
type env struct {
	out io.Writer
	log log.Logger
}

var vars = kong.Vars{
	"model_help": "Start from the registers the model's boot ROM leaves behind.",
	"flag_help":  "Flags to set after boot.",
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("regfile"),
		kong.Description("Game Boy CPU register file inspector."),
		kong.UsageOnError(),
		vars)

	lvl, err := log.ParseLevel(cli.LogLevel)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(&env{
		out: os.Stdout,
		log: log.New(os.Stderr, lvl),
	}))
}

func (b *Boot) Run(e *env) error {
	var opts []cpu.Opt
	if b.Config != "" {
		p, err := config.Load(b.Config, config.WithLogger(e.log))
		if err != nil {
			return err
		}
		boot, err := p.BootState()
		if err != nil {
			return err
		}
		opts = append(opts, cpu.WithBootState(boot))
	}
	if b.Model != "" {
		m, err := config.ParseModel(b.Model)
		if err != nil {
			return err
		}
		if b.Config != "" {
			e.log.Warnf("--model %s overrides the registers set by %s", m, b.Config)
		}
		opts = append(opts, cpu.AsModel(m))
	}

	flags, err := parseFlags(b.SetFlag)
	if err != nil {
		return err
	}

	r := cpu.NewRegisterFile(opts...)
	for _, f := range flags {
		r.SetFlag(f, true)
	}
	e.log.Debugf("boot state %+v", r.BootState())

	if b.Save != "" {
		if err := config.SaveStateFile(b.Save, r); err != nil {
			return err
		}
		e.log.Infof("saved registers to %s", b.Save)
	}
	return printSnapshot(e.out, r.Snapshot(), b.JSON)
}

func (m *Models) Run(e *env) error {
	for _, model := range types.Models() {
		s := cpu.NewRegisterFile(cpu.AsModel(model)).Snapshot()
		fmt.Fprintf(e.out, "%-5s %s\n", model, s)
	}
	return nil
}

func (s *State) Run(e *env) error {
	r := cpu.NewRegisterFile()
	if err := config.LoadStateFile(s.Path, r); err != nil {
		return err
	}
	return printSnapshot(e.out, r.Snapshot(), s.JSON)
}

var flagNames = map[string]cpu.Flag{
	"z": cpu.FlagZero,
	"n": cpu.FlagSubtract,
	"h": cpu.FlagHalfCarry,
	"c": cpu.FlagCarry,
}

func parseFlags(names []string) ([]cpu.Flag, error) {
	flags := make([]cpu.Flag, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		f, ok := flagNames[name]
		if !ok {
			for _, known := range cpu.Flags {
				if strings.EqualFold(known.String(), name) {
					f, ok = known, true
				}
			}
		}
		if !ok {
			return nil, errors.Errorf("unknown flag %q", name)
		}
		flags = append(flags, f)
	}
	return flags, nil
}

func printSnapshot(w io.Writer, s cpu.Snapshot, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, s)
		return err
	}

	var enc jx.Encoder
	enc.SetIdent(2)
	s.Encode(&enc)
	_, err := fmt.Fprintln(w, enc.String())
	return err
}
