package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestDampVelocity(t *testing.T) {
	v := mgl64.Vec2{6, 8} // |v|^2 = 100

	got, _ := Damp(v, 0)

	assert.InDelta(t, 5.94, got.X(), 1e-12)
	assert.InDelta(t, 7.92, got.Y(), 1e-12)
}

func TestDampAngularVelocity(t *testing.T) {
	_, w := Damp(mgl64.Vec2{}, 5)
	assert.InDelta(t, 4.95, w, 1e-12)

	_, w = Damp(mgl64.Vec2{}, -5)
	assert.InDelta(t, -4.95, w, 1e-12)
}

func TestDampFixedPointAtRest(t *testing.T) {
	cases := []struct {
		vel mgl64.Vec2
		w   float64
	}{
		{mgl64.Vec2{}, 0},
		{mgl64.Vec2{0.09, 0}, 0.01},
		{mgl64.Vec2{0.05, 0.05}, -0.01},
		{mgl64.Vec2{0, -0.05}, 0.005},
	}
	for _, c := range cases {
		v, w := Damp(c.vel, c.w)
		assert.Equal(t, c.vel, v)
		assert.Equal(t, c.w, w)

		v2, w2 := Damp(v, w)
		assert.Equal(t, v, v2)
		assert.Equal(t, w, w2)
	}
}

func TestDampConvergesToRest(t *testing.T) {
	v, w := mgl64.Vec2{0, -800}, 12.0
	for i := 0; i < 2000; i++ {
		v, w = Damp(v, w)
	}
	assert.LessOrEqual(t, v.Dot(v), RestThreshold)
	assert.LessOrEqual(t, w, RestThreshold)

	v2, w2 := Damp(v, w)
	assert.Equal(t, v, v2)
	assert.Equal(t, w, w2)
}
