package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"billiards/internal/config"
	"billiards/internal/input"
	"billiards/internal/scene"
)

func TestLayoutUsesLogicalScreen(t *testing.T) {
	cfg := config.Default()
	g := NewGame(cfg, zap.NewNop(), scene.Options{Pointer: &input.Queue{}})

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, cfg.Screen.Width, w)
	assert.Equal(t, cfg.Screen.Height, h)
}

func TestRerackReusesGlyphs(t *testing.T) {
	g := NewGame(config.Default(), zap.NewNop(), scene.Options{Pointer: &input.Queue{}})
	rendered := 0
	g.level.Glyphs().Render = func(number, size int) *ebiten.Image {
		rendered++
		return new(ebiten.Image)
	}
	for i := 0; i < 15; i++ {
		require.NoError(t, g.level.Update())
	}
	require.Equal(t, 15, rendered)
	loader := g.level.Glyphs()

	g.Rerack()

	assert.Same(t, loader, g.level.Glyphs())
	assert.Zero(t, loader.Pending())
	for n := 1; n <= 15; n++ {
		assert.NotNil(t, g.level.Texture(n), "ball %d", n)
	}
	require.NoError(t, g.level.Update())
	assert.Equal(t, 15, rendered)
}
