package scene

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"billiards/internal/assets"
	"billiards/internal/camera"
	"billiards/internal/config"
	"billiards/internal/entity"
	"billiards/internal/input"
	"billiards/internal/physics"
	"billiards/internal/render"
	"billiards/internal/table"
)

type ShotState int

const (
	ShotIdle    ShotState = iota // Every ball at rest
	ShotRolling                  // Something is still moving
)

func (s ShotState) String() string {
	switch s {
	case ShotIdle:
		return "READY"
	case ShotRolling:
		return "ROLLING..."
	default:
		return fmt.Sprintf("ShotState(%d)", int(s))
	}
}

// Sound receives collision impacts. Tick runs once per update before any
// Hit.
type Sound interface {
	Tick()
	Hit(speed float64)
}

// glyphsPerTick bounds how many number glyphs are rendered per update.
const glyphsPerTick = 1

var colBackground = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}

type Options struct {
	Renderer *render.BallRenderer
	Pointer  input.PointerSource
	Sound    Sound
	// Glyphs is reused when its size matches, so a re-rack renders nothing new.
	Glyphs *assets.GlyphLoader
}

// Level is the pool table scene: table, rack, cue ball and the world they
// live in.
type Level struct {
	State ShotState
	Shots int

	log      *zap.Logger
	table    table.Table
	world    *physics.World
	cam      *camera.Camera
	balls    []*entity.Ball
	cue      *entity.Ball
	renderer *render.BallRenderer
	glyphs   *assets.GlyphLoader
	pointer  input.PointerSource
	sound    Sound
	style    render.TableStyle
	dt       float64
	launch   mgl64.Vec2
	radiusPx float64
}

func NewLevel(cfg *config.Config, log *zap.Logger, opts Options) *Level {
	t := table.New(cfg)
	palette := cfg.Palette()
	mode := entity.ParseRollMode(cfg.Balls.RollMode)

	world := physics.NewWorld(cfg.Physics.Substeps, cfg.Physics.Slop)
	for _, b := range t.Bumpers() {
		world.AddWall(b)
	}

	min, max := t.Bounds()
	pad := mgl64.Vec2{t.BumperThickness / 2, t.BumperThickness / 2}
	cam := camera.Fit(min.Sub(pad), max.Add(pad), cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Margin)

	cloth, _ := config.ParseHex(cfg.Table.ClothColor)
	bumper, _ := config.ParseHex(cfg.Table.BumperColor)

	l := &Level{
		log:      log,
		table:    t,
		world:    world,
		cam:      cam,
		renderer: opts.Renderer,
		pointer:  opts.Pointer,
		sound:    opts.Sound,
		style:    render.TableStyle{Cloth: cloth, Bumper: bumper},
		dt:       1 / float64(cfg.Physics.TPS),
		launch:   mgl64.Vec2{cfg.Cue.LaunchX, cfg.Cue.LaunchY},
		radiusPx: t.BallRadius * cam.Scale(),
	}
	if l.renderer == nil {
		l.renderer = render.NewBallRenderer(nil)
	}
	if l.pointer == nil {
		l.pointer = &input.Pointer{}
	}

	size := render.GlyphSize(l.radiusPx)
	if opts.Glyphs != nil && opts.Glyphs.Size() == size {
		l.glyphs = opts.Glyphs
	} else {
		l.glyphs = assets.NewGlyphLoader(size, log)
	}

	var slots []table.Slot
	switch cfg.Balls.Rack {
	case config.RackScatter:
		slots = table.ScatterRack(table.NewRand(cfg.Balls.Seed), t.Origin, config.BallCount, 150, 250)
	default:
		slots = table.TriangleRack(t.FootSpot(), t.BallRadius, cfg.Balls.Gap)
	}
	for _, s := range slots {
		b := entity.NewBall(s.Number, s.Pos, t.BallRadius, t.Bounciness, palette, mode)
		l.balls = append(l.balls, b)
		world.Add(b.Body)
		l.glyphs.Request(s.Number)
	}

	// The cue ball joins the world on the first press.
	l.cue = entity.NewBall(entity.CueNumber, t.HeadSpot(), t.BallRadius, t.Bounciness, palette, mode)

	log.Info("level ready",
		zap.String("rack", cfg.Balls.Rack),
		zap.String("roll_mode", cfg.Balls.RollMode),
		zap.Int("balls", len(l.balls)),
		zap.Float64("scale", cam.Scale()),
	)
	return l
}

func (l *Level) Update() error {
	l.glyphs.Poll(glyphsPerTick)

	if x, y, ok := l.pointer.JustPressed(); ok {
		l.Shoot(l.cam.ToWorld(x, y))
	}

	contacts := l.world.Step(l.dt)
	if l.sound != nil {
		l.sound.Tick()
		for _, c := range contacts {
			l.sound.Hit(c.Speed)
		}
	}

	for _, b := range l.InPlay() {
		b.Update()
	}

	if l.world.Resting(entity.RestThreshold) {
		l.State = ShotIdle
	} else {
		l.State = ShotRolling
	}
	return nil
}

// Shoot places the cue ball at pos, clamped to the cloth, and launches it.
func (l *Level) Shoot(pos mgl64.Vec2) {
	pos = l.table.Clamp(pos, l.cue.Radius)
	if !l.world.Contains(l.cue.Body) {
		l.world.Add(l.cue.Body)
		l.log.Info("cue ball in play")
	}
	l.cue.Place(pos)
	l.cue.Launch(l.launch)
	l.Shots++
	l.State = ShotRolling
	l.log.Debug("shot",
		zap.Int("shot", l.Shots),
		zap.Float64("x", pos.X()),
		zap.Float64("y", pos.Y()),
	)
}

// InPlay returns the object balls, followed by the cue ball once it has
// been placed.
func (l *Level) InPlay() []*entity.Ball {
	if l.world.Contains(l.cue.Body) {
		return append(l.balls[:len(l.balls):len(l.balls)], l.cue)
	}
	return l.balls
}

func (l *Level) Cue() *entity.Ball           { return l.cue }
func (l *Level) Camera() *camera.Camera      { return l.cam }
func (l *Level) World() *physics.World       { return l.world }
func (l *Level) Table() table.Table          { return l.table }
func (l *Level) Glyphs() *assets.GlyphLoader { return l.glyphs }
func (l *Level) Texture(n int) *ebiten.Image { return l.glyphs.Glyph(n) }

func (l *Level) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	render.DrawTable(screen, l.cam, l.table, l.style)

	for _, b := range l.InPlay() {
		x, y := l.cam.ToScreen(b.Body.Pos)
		var glyph *ebiten.Image
		if !b.IsCue() {
			glyph = l.glyphs.Glyph(b.Number)
		}
		l.renderer.Draw(screen, b.Shading(), x, y, l.radiusPx, glyph)
	}

	msg := fmt.Sprintf("%s  shots: %d\nclick to place and shoot the cue ball", l.State, l.Shots)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
