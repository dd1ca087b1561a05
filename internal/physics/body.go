package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Kind selects how a body takes part in collision response.
type Kind int

const (
	// Active bodies are integrated and pushed by contacts.
	Active Kind = iota
	// Fixed bodies never move; they only push.
	Fixed
)

// Body is a circular rigid body. Velocity is in units per second and angular
// velocity in radians per second. Callers may overwrite the fields between
// steps; World.Step copies them into the space before stepping and back out
// afterwards.
type Body struct {
	ID         int
	Pos        mgl64.Vec2
	Vel        mgl64.Vec2
	Angle      float64
	AngVel     float64
	Radius     float64
	Bounciness float64
	Kind       Kind

	body  *cp.Body
	shape *cp.Shape
}

func (b *Body) invMass() float64 {
	if b.Kind == Fixed {
		return 0
	}
	return 1
}

// push copies the public state into the chipmunk body.
func (b *Body) push() {
	if b.Kind != Active {
		return
	}
	b.body.SetPosition(toVector(b.Pos))
	b.body.SetVelocityVector(toVector(b.Vel))
	b.body.SetAngle(b.Angle)
	b.body.SetAngularVelocity(b.AngVel)
}

// pull copies the simulated state back.
func (b *Body) pull() {
	if b.Kind != Active {
		return
	}
	b.Pos = toVec2(b.body.Position())
	b.Vel = toVec2(b.body.Velocity())
	b.Angle = b.body.Angle()
	b.AngVel = b.body.AngularVelocity()
}

// Rect is an axis-aligned fixed collider, used for bumpers.
type Rect struct {
	Min        mgl64.Vec2
	Max        mgl64.Vec2
	Bounciness float64
}

// RectCentered builds a rect of size w x h around center.
func RectCentered(center mgl64.Vec2, w, h, bounciness float64) Rect {
	half := mgl64.Vec2{w / 2, h / 2}
	return Rect{
		Min:        center.Sub(half),
		Max:        center.Add(half),
		Bounciness: bounciness,
	}
}

func (r Rect) center() mgl64.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) size() mgl64.Vec2 {
	return r.Max.Sub(r.Min)
}

func toVector(v mgl64.Vec2) cp.Vector { return cp.Vector{X: v.X(), Y: v.Y()} }
func toVec2(v cp.Vector) mgl64.Vec2   { return mgl64.Vec2{v.X, v.Y} }
