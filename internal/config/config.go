package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	RackTriangle = "triangle"
	RackScatter  = "scatter"

	RollAccumulate = "accumulate"
	RollWrap       = "wrap"
)

// DefaultPath is read when POOL_CONFIG is not set.
const DefaultPath = "pool.yaml"

type Config struct {
	LogLevel string        `yaml:"log_level"`
	Screen   ScreenConfig  `yaml:"screen"`
	Table    TableConfig   `yaml:"table"`
	Physics  PhysicsConfig `yaml:"physics"`
	Balls    BallConfig    `yaml:"balls"`
	Cue      CueConfig     `yaml:"cue"`
	Sound    SoundConfig   `yaml:"sound"`
}

type ScreenConfig struct {
	Title       string  `yaml:"title"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	WindowScale float64 `yaml:"window_scale"`
	Margin      float64 `yaml:"margin"`
}

type TableConfig struct {
	InToPixel       float64 `yaml:"in_to_pixel"`
	WidthIn         float64 `yaml:"width_in"`
	HeightIn        float64 `yaml:"height_in"`
	OriginX         float64 `yaml:"origin_x"`
	OriginY         float64 `yaml:"origin_y"`
	BumperThickness float64 `yaml:"bumper_thickness"`
	ClothColor      string  `yaml:"cloth_color"`
	BumperColor     string  `yaml:"bumper_color"`
}

type PhysicsConfig struct {
	TPS        int     `yaml:"tps"`
	Substeps   int     `yaml:"substeps"`
	Slop       float64 `yaml:"slop"`
	Bounciness float64 `yaml:"bounciness"`
}

type BallConfig struct {
	DiameterIn float64  `yaml:"diameter_in"`
	Rack       string   `yaml:"rack"`
	Gap        float64  `yaml:"gap"`
	Seed       int64    `yaml:"seed"`
	RollMode   string   `yaml:"roll_mode"`
	Colors     []string `yaml:"colors"`
}

type CueConfig struct {
	LaunchX float64 `yaml:"launch_x"`
	LaunchY float64 `yaml:"launch_y"`
}

type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// Default returns the bar table setup: 39x79 in cloth at 15 px per inch,
// American 2.25 in balls.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Screen: ScreenConfig{
			Title:       "Pool",
			Width:       720,
			Height:      1280,
			WindowScale: 0.6,
			Margin:      24,
		},
		Table: TableConfig{
			InToPixel:       15,
			WidthIn:         39,
			HeightIn:        79,
			OriginX:         100,
			OriginY:         0,
			BumperThickness: 20,
			ClothColor:      "#276b40",
			BumperColor:     "#000000",
		},
		Physics: PhysicsConfig{
			TPS:        60,
			Substeps:   5,
			Slop:       0.1,
			Bounciness: 0.9,
		},
		Balls: BallConfig{
			DiameterIn: 2.25,
			Rack:       RackTriangle,
			Gap:        0.5,
			Seed:       1337,
			RollMode:   RollAccumulate,
			Colors: []string{
				// solids
				"#FCD116", "#003DA5", "#CE1126", "#660099",
				"#FF6600", "#007A3D", "#800020", "#000000",
				// stripes
				"#FCD116", "#003DA5", "#CE1126", "#660099",
				"#FF6600", "#007A3D", "#800020",
			},
		},
		Cue: CueConfig{
			LaunchX: 0,
			LaunchY: -800,
		},
		Sound: SoundConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// (a .env file in the working directory is loaded first if present).
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the config file location from POOL_CONFIG.
func Path() string {
	return getEnv("POOL_CONFIG", DefaultPath)
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("POOL_LOG_LEVEL", c.LogLevel)
	c.Screen.WindowScale = getEnvFloat("POOL_WINDOW_SCALE", c.Screen.WindowScale)
	c.Balls.Rack = getEnv("POOL_RACK", c.Balls.Rack)
	c.Balls.RollMode = getEnv("POOL_ROLL_MODE", c.Balls.RollMode)
	c.Balls.Seed = int64(getEnvInt("POOL_SEED", int(c.Balls.Seed)))
	c.Sound.Enabled = getEnvBool("POOL_SOUND", c.Sound.Enabled)
}

// Validate rejects values the scene cannot be built from.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	case c.Table.InToPixel <= 0 || c.Table.WidthIn <= 0 || c.Table.HeightIn <= 0:
		return errors.New("table dimensions must be positive")
	case c.Balls.DiameterIn <= 0:
		return errors.New("ball diameter must be positive")
	case c.Physics.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.Physics.TPS)
	case c.Physics.Substeps <= 0:
		return fmt.Errorf("substeps %d must be positive", c.Physics.Substeps)
	case c.Physics.Bounciness < 0 || c.Physics.Bounciness > 1:
		return fmt.Errorf("bounciness %.2f out of range [0, 1]", c.Physics.Bounciness)
	case c.Table.BumperThickness < 0:
		return fmt.Errorf("bumper thickness %.2f must not be negative", c.Table.BumperThickness)
	case c.Balls.Gap < 0:
		return fmt.Errorf("rack gap %.2f must not be negative", c.Balls.Gap)
	case c.Sound.SampleRate <= 0:
		return fmt.Errorf("sample rate %d must be positive", c.Sound.SampleRate)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("volume %.2f out of range [0, 1]", c.Sound.Volume)
	}

	switch c.Balls.Rack {
	case RackTriangle, RackScatter:
	default:
		return fmt.Errorf("unknown rack style %q", c.Balls.Rack)
	}
	switch c.Balls.RollMode {
	case RollAccumulate, RollWrap:
	default:
		return fmt.Errorf("unknown roll mode %q", c.Balls.RollMode)
	}

	if _, err := NewPalette(c.Balls.Colors); err != nil {
		return err
	}
	if _, err := ParseHex(c.Table.ClothColor); err != nil {
		return fmt.Errorf("cloth color: %w", err)
	}
	if _, err := ParseHex(c.Table.BumperColor); err != nil {
		return fmt.Errorf("bumper color: %w", err)
	}
	return nil
}

// BallRadius is the ball radius in world units.
func (c *Config) BallRadius() float64 {
	return c.Balls.DiameterIn * c.Table.InToPixel / 2
}

func (c *Config) TableWidth() float64 {
	return c.Table.WidthIn * c.Table.InToPixel
}

func (c *Config) TableHeight() float64 {
	return c.Table.HeightIn * c.Table.InToPixel
}

// Palette builds the ball palette. Validate has already checked the colors.
func (c *Config) Palette() Palette {
	p, err := NewPalette(c.Balls.Colors)
	if err != nil {
		panic(err)
	}
	return p
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}
