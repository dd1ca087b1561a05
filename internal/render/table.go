package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"billiards/internal/camera"
	"billiards/internal/physics"
	"billiards/internal/table"
)

// TableStyle holds the fill colors of the cloth and the bumpers.
type TableStyle struct {
	Cloth  color.RGBA
	Bumper color.RGBA
}

// DrawTable fills the cloth, then the bumpers on top of it.
func DrawTable(dst *ebiten.Image, cam *camera.Camera, t table.Table, style TableStyle) {
	min, max := t.Bounds()
	drawRect(dst, cam, physics.Rect{Min: min, Max: max}, style.Cloth)
	for _, b := range t.Bumpers() {
		drawRect(dst, cam, b, style.Bumper)
	}
}

func drawRect(dst *ebiten.Image, cam *camera.Camera, r physics.Rect, clr color.Color) {
	x0, y0 := cam.ToScreen(r.Min)
	x1, y1 := cam.ToScreen(r.Max)
	vector.DrawFilledRect(dst, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), clr, false)
}
