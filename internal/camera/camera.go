package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera maps world units onto the logical screen. It is fixed for the
// lifetime of a scene.
type Camera struct {
	geo   ebiten.GeoM
	inv   ebiten.GeoM
	scale float64
}

// Fit frames the world rectangle [min, max], padded by margin world units,
// centered on a screenW x screenH screen with uniform scale.
func Fit(min, max mgl64.Vec2, screenW, screenH int, margin float64) *Camera {
	size := max.Sub(min).Add(mgl64.Vec2{2 * margin, 2 * margin})
	scale := 1.0
	if size.X() > 0 && size.Y() > 0 {
		scale = math.Min(float64(screenW)/size.X(), float64(screenH)/size.Y())
	}
	center := min.Add(max).Mul(0.5)

	var geo ebiten.GeoM
	geo.Translate(-center.X(), -center.Y())
	geo.Scale(scale, scale)
	geo.Translate(float64(screenW)/2, float64(screenH)/2)

	inv := geo
	inv.Invert()

	return &Camera{geo: geo, inv: inv, scale: scale}
}

func (c *Camera) ToScreen(p mgl64.Vec2) (float64, float64) {
	return c.geo.Apply(p.X(), p.Y())
}

func (c *Camera) ToWorld(x, y float64) mgl64.Vec2 {
	wx, wy := c.inv.Apply(x, y)
	return mgl64.Vec2{wx, wy}
}

// Scale is screen pixels per world unit.
func (c *Camera) Scale() float64 { return c.scale }

