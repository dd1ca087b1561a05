package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"billiards/internal/config"
	"billiards/internal/scene"
)

// Game holds global state
type Game struct {
	Tick int

	cfg   *config.Config
	log   *zap.Logger
	opts  scene.Options
	level *scene.Level
}

func NewGame(cfg *config.Config, log *zap.Logger, opts scene.Options) *Game {
	return &Game{
		cfg:   cfg,
		log:   log,
		opts:  opts,
		level: scene.NewLevel(cfg, log, opts),
	}
}

// Update: Logic (TPS from config)
func (g *Game) Update() error {
	g.Tick++

	// R re-racks
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.log.Info("re-rack", zap.Int("tick", g.Tick))
		g.Rerack()
	}

	return g.level.Update()
}

// Rerack starts a fresh level that shares the current glyph images.
func (g *Game) Rerack() {
	opts := g.opts
	opts.Glyphs = g.level.Glyphs()
	g.level = scene.NewLevel(g.cfg, g.log, opts)
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.level.Draw(screen)
}

// Layout: fixed logical screen, Ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
