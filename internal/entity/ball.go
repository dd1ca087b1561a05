package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"billiards/internal/config"
	"billiards/internal/physics"
)

// CueNumber is the number carried by the cue ball.
const CueNumber = 0

// Ball pairs a physics body with the visual state of the ball drawn on top
// of it.
type Ball struct {
	Number  int
	Radius  float64
	Color   color.RGBA
	Striped bool
	Mode    RollMode

	Body *physics.Body
	Roll RollState
}

// Shading is everything the sphere shader needs to draw one ball for one
// frame. Only one of Rotation and Roll is non-zero, depending on the mode.
type Shading struct {
	Number   int
	Radius   float64
	Color    color.RGBA
	Striped  bool
	Rotation mgl64.Vec2
	Roll     mgl64.Vec2
	Angle    float64
}

func NewBall(number int, pos mgl64.Vec2, radius, bounciness float64, palette config.Palette, mode RollMode) *Ball {
	return &Ball{
		Number:  number,
		Radius:  radius,
		Color:   palette.Color(number),
		Striped: palette.Striped(number),
		Mode:    mode,
		Body: &physics.Body{
			ID:         number,
			Pos:        pos,
			Radius:     radius,
			Bounciness: bounciness,
			Kind:       physics.Active,
		},
		Roll: NewRollState(pos),
	}
}

func (b *Ball) IsCue() bool {
	return b.Number == CueNumber
}

// Place respawns the ball at pos without rolling it. The wrap origin moves
// with it; the accumulated rotation is kept.
func (b *Ball) Place(pos mgl64.Vec2) {
	b.Body.Pos = pos
	b.Roll.Origin = pos
	b.Roll.Prev = pos
}

// Launch sets the ball moving at vel with no spin.
func (b *Ball) Launch(vel mgl64.Vec2) {
	b.Body.Vel = vel
	b.Body.AngVel = 0
}

// Update runs once per frame after the physics step: friction first, then
// the rolling rotation from the new position.
func (b *Ball) Update() {
	b.Body.Vel, b.Body.AngVel = Damp(b.Body.Vel, b.Body.AngVel)
	b.Roll = UpdateRoll(b.Roll, b.Body.Pos, b.Body.Angle, b.Radius)
}

func (b *Ball) Shading() Shading {
	s := Shading{
		Number:  b.Number,
		Radius:  b.Radius,
		Color:   b.Color,
		Striped: b.Striped,
		Angle:   b.Roll.Angle,
	}
	switch b.Mode {
	case RollWrap:
		s.Roll = RollOffset(b.Roll.Origin, b.Body.Pos, b.Radius)
	default:
		s.Rotation = b.Roll.Accumulated
	}
	return s
}
