package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// BallCount is the number of object balls in a full rack.
const BallCount = 15

// Palette is the read-only ball color table. Number 0 is the cue ball.
type Palette struct {
	colors [BallCount]color.RGBA
}

func NewPalette(hex []string) (Palette, error) {
	var p Palette
	if len(hex) < BallCount {
		return p, fmt.Errorf("palette needs %d colors, got %d", BallCount, len(hex))
	}
	for i := 0; i < BallCount; i++ {
		c, err := ParseHex(hex[i])
		if err != nil {
			return p, fmt.Errorf("ball %d: %w", i+1, err)
		}
		p.colors[i] = c
	}
	return p, nil
}

// Color returns the base color of ball number n. Out of range numbers,
// including the cue ball, are white.
func (p Palette) Color(n int) color.RGBA {
	if n < 1 || n > BallCount {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return p.colors[n-1]
}

// Striped reports whether ball n is a stripe (9 through 15).
func (p Palette) Striped(n int) bool {
	return n > 8 && n <= BallCount
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	// color.RGBA is alpha-premultiplied.
	a := v & 0xff
	return color.RGBA{
		R: uint8((v >> 24 & 0xff) * a / 0xff),
		G: uint8((v >> 16 & 0xff) * a / 0xff),
		B: uint8((v >> 8 & 0xff) * a / 0xff),
		A: uint8(a),
	}, nil
}
