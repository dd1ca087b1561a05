package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestUpdateRollNoMotionIsStable(t *testing.T) {
	start := NewRollState(mgl64.Vec2{100, 100})
	start.Accumulated = mgl64.Vec2{0.3, -1.2}

	moves := []mgl64.Vec2{
		{100, 100},
		{100.009, 100},
		{99.991, 100.009},
		{100.005, 99.995},
	}
	for _, pos := range moves {
		s := start
		s = UpdateRoll(s, pos, 0.5, 25)
		assert.Equal(t, start.Accumulated, s.Accumulated, "pos %v", pos)
		assert.Equal(t, pos, s.Prev)
		assert.Equal(t, 0.5, s.Angle)
	}
}

func TestUpdateRollHorizontalMove(t *testing.T) {
	s := NewRollState(mgl64.Vec2{0, 0})

	s = UpdateRoll(s, mgl64.Vec2{50, 0}, 0, 25)

	assert.InDelta(t, -2.0, s.Accumulated.Y(), 1e-12)
	assert.Zero(t, s.Accumulated.X())
}

func TestUpdateRollVerticalMove(t *testing.T) {
	s := NewRollState(mgl64.Vec2{10, 10})

	s = UpdateRoll(s, mgl64.Vec2{10, -20}, 0, 10)

	assert.InDelta(t, 3.0, s.Accumulated.X(), 1e-12)
	assert.Zero(t, s.Accumulated.Y())
}

func TestUpdateRollIsLinear(t *testing.T) {
	for _, d := range []float64{0.5, 3, 17.25, -40} {
		for _, r := range []float64{5, 16.875, 25} {
			s := NewRollState(mgl64.Vec2{7, 3})
			s.Accumulated = mgl64.Vec2{1, 1}

			s = UpdateRoll(s, mgl64.Vec2{7 + d, 3}, 0, r)

			assert.InDelta(t, 1-d/r, s.Accumulated.Y(), 1e-12, "d=%v r=%v", d, r)
		}
	}
}

func TestUpdateRollAccumulatesOverFrames(t *testing.T) {
	s := NewRollState(mgl64.Vec2{0, 0})
	pos := mgl64.Vec2{0, 0}
	for i := 0; i < 10; i++ {
		pos = pos.Add(mgl64.Vec2{5, -2.5})
		s = UpdateRoll(s, pos, 0, 25)
	}

	assert.InDelta(t, -2.0, s.Accumulated.Y(), 1e-9)
	assert.InDelta(t, 1.0, s.Accumulated.X(), 1e-9)
	assert.Equal(t, mgl64.Vec2{0, 0}, s.Origin)
}

func TestRollOffset(t *testing.T) {
	r := 10.0
	circumference := 2 * math.Pi * r

	off := RollOffset(mgl64.Vec2{5, 5}, mgl64.Vec2{5 + circumference, 5 - circumference/2}, r)
	assert.InDelta(t, 1.0, off.X(), 1e-12)
	assert.InDelta(t, -0.5, off.Y(), 1e-12)

	assert.Equal(t, mgl64.Vec2{}, RollOffset(mgl64.Vec2{}, mgl64.Vec2{1, 1}, 0))
}

func TestParseRollMode(t *testing.T) {
	assert.Equal(t, RollWrap, ParseRollMode("wrap"))
	assert.Equal(t, RollAccumulate, ParseRollMode("accumulate"))
	assert.Equal(t, RollAccumulate, ParseRollMode(""))
}
