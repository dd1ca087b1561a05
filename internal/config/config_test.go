package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.InDelta(t, 16.875, cfg.BallRadius(), 1e-9)
	assert.InDelta(t, 585.0, cfg.TableWidth(), 1e-9)
	assert.InDelta(t, 1185.0, cfg.TableHeight(), 1e-9)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Table, cfg.Table)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	data := []byte(`
log_level: debug
table:
  width_in: 44
  height_in: 88
balls:
  rack: scatter
  roll_mode: wrap
physics:
  substeps: 8
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 44.0, cfg.Table.WidthIn)
	assert.Equal(t, 88.0, cfg.Table.HeightIn)
	assert.Equal(t, RackScatter, cfg.Balls.Rack)
	assert.Equal(t, RollWrap, cfg.Balls.RollMode)
	assert.Equal(t, 8, cfg.Physics.Substeps)
	// untouched keys keep their defaults
	assert.Equal(t, 15.0, cfg.Table.InToPixel)
	assert.Len(t, cfg.Balls.Colors, BallCount)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table: [1, 2"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("POOL_LOG_LEVEL", "warn")
	t.Setenv("POOL_RACK", "scatter")
	t.Setenv("POOL_SEED", "42")
	t.Setenv("POOL_SOUND", "false")
	t.Setenv("POOL_WINDOW_SCALE", "1.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, RackScatter, cfg.Balls.Rack)
	assert.Equal(t, int64(42), cfg.Balls.Seed)
	assert.False(t, cfg.Sound.Enabled)
	assert.Equal(t, 1.5, cfg.Screen.WindowScale)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero diameter", func(c *Config) { c.Balls.DiameterIn = 0 }},
		{"no substeps", func(c *Config) { c.Physics.Substeps = 0 }},
		{"bounciness above one", func(c *Config) { c.Physics.Bounciness = 1.2 }},
		{"unknown rack", func(c *Config) { c.Balls.Rack = "diamond" }},
		{"unknown roll mode", func(c *Config) { c.Balls.RollMode = "spin" }},
		{"short palette", func(c *Config) { c.Balls.Colors = c.Balls.Colors[:8] }},
		{"bad cloth", func(c *Config) { c.Table.ClothColor = "green" }},
		{"negative bumper", func(c *Config) { c.Table.BumperThickness = -1 }},
		{"negative gap", func(c *Config) { c.Balls.Gap = -0.5 }},
		{"zero sample rate", func(c *Config) { c.Sound.SampleRate = 0 }},
		{"volume above one", func(c *Config) { c.Sound.Volume = 1.5 }},
		{"negative volume", func(c *Config) { c.Sound.Volume = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateAcceptsEdges(t *testing.T) {
	cfg := Default()
	cfg.Table.BumperThickness = 0
	cfg.Balls.Gap = 0
	cfg.Sound.Volume = 1
	assert.NoError(t, cfg.Validate())

	cfg.Sound.Volume = 0
	assert.NoError(t, cfg.Validate())
}

func TestPalette(t *testing.T) {
	p := Default().Palette()

	assert.Equal(t, color.RGBA{0xfc, 0xd1, 0x16, 0xff}, p.Color(1))
	assert.Equal(t, p.Color(1), p.Color(9))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, p.Color(8))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, p.Color(0))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, p.Color(16))

	assert.False(t, p.Striped(8))
	assert.True(t, p.Striped(9))
	assert.True(t, p.Striped(15))
	assert.False(t, p.Striped(0))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#276b40")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x27, 0x6b, 0x40, 0xff}, c)

	c, err = ParseHex("ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x80, 0, 0, 0x80}, c)

	c, err = ParseHex("#ffffff00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{}, c)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}
