package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the smallest per-frame displacement, on either axis, that
// contributes to the rolling rotation.
const Epsilon = 0.01

// RollMode picks how planar motion is turned into sphere rotation.
type RollMode int

const (
	// RollAccumulate sums per-frame rotation (rolling without slipping).
	RollAccumulate RollMode = iota
	// RollWrap scrolls by total displacement since spawn, in revolutions.
	RollWrap
)

func ParseRollMode(s string) RollMode {
	if s == "wrap" {
		return RollWrap
	}
	return RollAccumulate
}

// RollState is the visual rotation of one ball. Origin is fixed at spawn.
// Accumulated only changes through UpdateRoll.
type RollState struct {
	Origin      mgl64.Vec2
	Prev        mgl64.Vec2
	Accumulated mgl64.Vec2
	Angle       float64
}

func NewRollState(pos mgl64.Vec2) RollState {
	return RollState{Origin: pos, Prev: pos}
}

// UpdateRoll folds the motion since the previous frame into the accumulated
// rotation: angle = arc length / radius. Motion along x turns the sphere
// around the vertical axis (Accumulated.Y), motion along y around the
// horizontal axis (Accumulated.X).
func UpdateRoll(s RollState, pos mgl64.Vec2, angle, radius float64) RollState {
	d := pos.Sub(s.Prev)
	if radius > 0 {
		if math.Abs(d.X()) > Epsilon {
			s.Accumulated[1] -= d.X() / radius
		}
		if math.Abs(d.Y()) > Epsilon {
			s.Accumulated[0] -= d.Y() / radius
		}
	}
	s.Prev = pos
	s.Angle = angle
	return s
}

// RollOffset is the displacement since spawn measured in sphere
// circumferences. The shader wraps it, so it never needs resetting.
func RollOffset(origin, pos mgl64.Vec2, radius float64) mgl64.Vec2 {
	if radius <= 0 {
		return mgl64.Vec2{}
	}
	return pos.Sub(origin).Mul(1 / (2 * math.Pi * radius))
}
