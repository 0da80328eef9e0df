package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gomeboy-regs/internal/config"
	"github.com/thelolagemann/gomeboy-regs/internal/cpu"
	"github.com/thelolagemann/gomeboy-regs/pkg/log"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("regfile"), vars)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = ctx.Run(&env{out: &out, log: log.NewNullLogger()})
	return out.String(), err
}

func TestBoot(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		out, err := run(t)
		require.NoError(t, err)
		assert.Equal(t, "A: 00 F: 00 B: 00 C: 00 D: 00 E: 00 H: 00 L: 00 SP: 0000 PC: 0000 [znhc]\n", out)
	})
	t.Run("model and flags", func(t *testing.T) {
		out, err := run(t, "boot", "--model", "sgb", "--set-flag", "n,carry")
		require.NoError(t, err)
		assert.Equal(t, "A: 01 F: 50 B: 00 C: 14 D: 00 E: 00 H: c0 L: 60 SP: fffe PC: 0100 [zNhC]\n", out)
	})
	t.Run("json", func(t *testing.T) {
		out, err := run(t, "boot", "--json", "--set-flag", "z")
		require.NoError(t, err)
		got, err := cpu.DecodeSnapshot([]byte(out))
		require.NoError(t, err)
		assert.Equal(t, cpu.Snapshot{F: 0x80}, got)
	})
	t.Run("config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "boot.toml")
		require.NoError(t, os.WriteFile(path, []byte("[registers]\nh = 0x12\nl = 0x34\n"), 0644))

		out, err := run(t, "boot", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "H: 12 L: 34")
	})
	t.Run("unknown model", func(t *testing.T) {
		for _, name := range []string{"nes", "unset"} {
			_, err := run(t, "boot", "--model", name)
			assert.True(t, errors.Is(err, config.ErrUnknownModel), "%s: %v", name, err)

			path := filepath.Join(t.TempDir(), "boot.toml")
			require.NoError(t, os.WriteFile(path, []byte("model = \""+name+"\"\n"), 0644))
			_, err = run(t, "boot", "--config", path)
			assert.True(t, errors.Is(err, config.ErrUnknownModel), "config %s: %v", name, err)
		}
	})
	t.Run("unknown flag", func(t *testing.T) {
		_, err := run(t, "boot", "--set-flag", "q")
		assert.Error(t, err)
	})
}

func TestSaveAndState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regs.state")
	booted, err := run(t, "boot", "--model", "dmg", "--save", path)
	require.NoError(t, err)

	out, err := run(t, "state", path)
	require.NoError(t, err)
	assert.Equal(t, booted, out)
}

func TestModels(t *testing.T) {
	out, err := run(t, "models")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[1], "DMG   A: 01 F: b0"), lines[1])
}

func TestParseFlags(t *testing.T) {
	flags, err := parseFlags([]string{"Z", " h ", "HalfCarry", "subtract"})
	require.NoError(t, err)
	assert.Equal(t, []cpu.Flag{cpu.FlagZero, cpu.FlagHalfCarry, cpu.FlagHalfCarry, cpu.FlagSubtract}, flags)

	_, err = parseFlags([]string{"x"})
	assert.Error(t, err)
}
