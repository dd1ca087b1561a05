package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DampingFactor is the share of velocity removed each frame.
	DampingFactor = 0.01
	// RestThreshold bounds squared speed and absolute angular speed below
	// which damping stops.
	RestThreshold = 0.01
)

// Damp applies one frame of friction. It is a fixed point once both
// velocities are at or below RestThreshold.
func Damp(vel mgl64.Vec2, angVel float64) (mgl64.Vec2, float64) {
	if vel.Dot(vel) > RestThreshold {
		vel = vel.Add(vel.Mul(-1).Mul(DampingFactor))
	}
	if math.Abs(angVel) > RestThreshold {
		angVel = angVel - angVel*DampingFactor
	}
	return vel, angVel
}
