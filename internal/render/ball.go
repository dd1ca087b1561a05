package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"billiards/internal/entity"
)

// BallShader is the embedded Kage shader the renderer expects.
const BallShader = "ball.kage"

// BallRenderer draws balls with the sphere shader, one rect per ball.
// A renderer without a shader falls back to flat circles.
type BallRenderer struct {
	shader *ebiten.Shader
}

func NewBallRenderer(shader *ebiten.Shader) *BallRenderer {
	return &BallRenderer{shader: shader}
}

// GlyphSize is the side of the square drawn for a ball of radius px, and
// the size glyph images must have to be bound to it.
func GlyphSize(radiusPx float64) int {
	return int(math.Ceil(2 * radiusPx))
}

// Uniforms maps one frame of shading onto the shader's uniform schema.
// center and radiusPx are in screen pixels.
func Uniforms(s entity.Shading, center mgl64.Vec2, radiusPx float64, hasGlyph bool) map[string]any {
	r, g, b, a := s.Color.RGBA()
	glyph := float32(0)
	if hasGlyph {
		glyph = 1
	}
	striped := float32(0)
	if s.Striped {
		striped = 1
	}
	return map[string]any{
		"Center":    []float32{float32(center.X()), float32(center.Y())},
		"Radius":    float32(radiusPx),
		"BaseColor": []float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff},
		"Number":    float32(s.Number),
		"Striped":   striped,
		"Rotation":  []float32{float32(s.Rotation.X()), float32(s.Rotation.Y())},
		"Roll":      []float32{float32(s.Roll.X()), float32(s.Roll.Y())},
		"Angle":     float32(s.Angle),
		"HasGlyph":  glyph,
	}
}

// Draw renders one ball centered at (cx, cy). glyph may be nil, in which case
// the number disc is left blank.
func (r *BallRenderer) Draw(dst *ebiten.Image, s entity.Shading, cx, cy, radiusPx float64, glyph *ebiten.Image) {
	if r.shader == nil {
		r.drawFlat(dst, s, cx, cy, radiusPx)
		return
	}

	size := GlyphSize(radiusPx)
	if glyph != nil {
		if b := glyph.Bounds(); b.Dx() != size || b.Dy() != size {
			glyph = nil
		}
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(cx-float64(size)/2, cy-float64(size)/2)
	op.Uniforms = Uniforms(s, mgl64.Vec2{cx, cy}, radiusPx, glyph != nil)
	op.Images[0] = glyph
	dst.DrawRectShader(size, size, r.shader, op)
}

func (r *BallRenderer) drawFlat(dst *ebiten.Image, s entity.Shading, cx, cy, radiusPx float64) {
	x, y, rad := float32(cx), float32(cy), float32(radiusPx)
	if s.Striped {
		vector.DrawFilledCircle(dst, x, y, rad, color.White, true)
		vector.DrawFilledRect(dst, x-rad*0.9, y-rad*0.45, rad*1.8, rad*0.9, s.Color, true)
		return
	}
	vector.DrawFilledCircle(dst, x, y, rad, s.Color, true)
	if s.Number != entity.CueNumber {
		vector.DrawFilledCircle(dst, x, y, rad*0.45, color.White, true)
	}
}
