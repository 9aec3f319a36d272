package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) (*Flags, *flag.FlagSet, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags()
	f.Bind(fs)
	return f, fs, fs.Parse(args)
}

func TestResolveDefaults(t *testing.T) {
	f, fs, err := parseFlags(t)
	require.NoError(t, err)
	cfg, err := f.Resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Window.Scale)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, "sand", cfg.Sim.Name)
}

func TestResolveOverrides(t *testing.T) {
	f, fs, err := parseFlags(t, "-scale", "2", "-seed", "9", "-set", "w=40", "-set", "spout_period=7")
	require.NoError(t, err)
	cfg, err := f.Resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Window.Scale)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, int64(9), cfg.Sand.Seed)
	assert.Equal(t, 40, cfg.Sand.Width)
	assert.Equal(t, 7, cfg.Sand.Params.SpoutPeriod)
}

func TestResolveFlagsBeatConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sand.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nscale = 6\ntps = 30\n"), 0o644))

	f, fs, err := parseFlags(t, "-config", path, "-tps", "90")
	require.NoError(t, err)
	cfg, err := f.Resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Window.Scale, "unset flag keeps the file value")
	assert.Equal(t, 90, cfg.Window.TPS)
}

func TestResolveErrors(t *testing.T) {
	_, _, err := parseFlags(t, "-set", "novalue")
	assert.Error(t, err)

	f, fs, err := parseFlags(t, "-scale", "0")
	require.NoError(t, err)
	_, err = f.Resolve(fs)
	assert.ErrorContains(t, err, "scale")

	f, fs, err = parseFlags(t, "-config", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	_, err = f.Resolve(fs)
	assert.Error(t, err)
}

func TestKVListLaterWins(t *testing.T) {
	var l KVList
	require.NoError(t, l.Set("a=1"))
	require.NoError(t, l.Set(" a = 2 "))
	assert.Equal(t, map[string]string{"a": "2"}, l.Map())
	assert.Equal(t, "a=1, a = 2 ", l.String())
}
