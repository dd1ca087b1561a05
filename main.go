package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"billiards/internal/assets"
	"billiards/internal/config"
	"billiards/internal/input"
	"billiards/internal/logger"
	"billiards/internal/render"
	"billiards/internal/scene"
	"billiards/internal/sound"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	// 1. Assets
	shader, err := assets.LoadShader(render.BallShader)
	if err != nil {
		log.Fatal("load shader", zap.Error(err))
	}
	opts := scene.Options{
		Renderer: render.NewBallRenderer(shader),
		Pointer:  &input.Pointer{},
	}
	if cfg.Sound.Enabled {
		opts.Sound = sound.NewClicker(audio.NewContext(cfg.Sound.SampleRate), cfg.Sound.Volume)
	}

	// 2. Window Setup
	ebiten.SetWindowSize(
		int(float64(cfg.Screen.Width)*cfg.Screen.WindowScale),
		int(float64(cfg.Screen.Height)*cfg.Screen.WindowScale),
	)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Physics.TPS)

	// 3. Run Loop
	game := NewGame(cfg, log, opts)
	log.Info("starting",
		zap.Int("width", cfg.Screen.Width),
		zap.Int("height", cfg.Screen.Height),
		zap.Int("tps", cfg.Physics.TPS),
	)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}
