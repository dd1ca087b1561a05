package table

import (
	"github.com/go-gl/mathgl/mgl64"

	"billiards/internal/config"
	"billiards/internal/physics"
)

// Table is the cloth rectangle and its four bumpers in world units. Bumpers
// are centered on the cloth edges, so half of each overlaps the cloth.
type Table struct {
	Origin          mgl64.Vec2
	Width           float64
	Height          float64
	BumperThickness float64
	BallRadius      float64
	Bounciness      float64
}

func New(cfg *config.Config) Table {
	return Table{
		Origin:          mgl64.Vec2{cfg.Table.OriginX, cfg.Table.OriginY},
		Width:           cfg.TableWidth(),
		Height:          cfg.TableHeight(),
		BumperThickness: cfg.Table.BumperThickness,
		BallRadius:      cfg.BallRadius(),
		Bounciness:      cfg.Physics.Bounciness,
	}
}

// Bumpers returns left, right, top, bottom.
func (t Table) Bumpers() []physics.Rect {
	ox, oy := t.Origin.X(), t.Origin.Y()
	th := t.BumperThickness
	return []physics.Rect{
		physics.RectCentered(mgl64.Vec2{ox, oy + t.Height/2}, th, t.Height, t.Bounciness),
		physics.RectCentered(mgl64.Vec2{ox + t.Width, oy + t.Height/2}, th, t.Height, t.Bounciness),
		physics.RectCentered(mgl64.Vec2{ox + t.Width/2, oy}, t.Width, th, t.Bounciness),
		physics.RectCentered(mgl64.Vec2{ox + t.Width/2, oy + t.Height}, t.Width, th, t.Bounciness),
	}
}

// Bounds is the full cloth rectangle, bumpers excluded.
func (t Table) Bounds() (min, max mgl64.Vec2) {
	return t.Origin, t.Origin.Add(mgl64.Vec2{t.Width, t.Height})
}

// Playable is the part of the cloth not covered by a bumper.
func (t Table) Playable() (min, max mgl64.Vec2) {
	half := mgl64.Vec2{t.BumperThickness / 2, t.BumperThickness / 2}
	min, max = t.Bounds()
	return min.Add(half), max.Sub(half)
}

// Clamp keeps a ball of radius r centered at p fully on the playable cloth.
func (t Table) Clamp(p mgl64.Vec2, r float64) mgl64.Vec2 {
	min, max := t.Playable()
	return mgl64.Vec2{
		clampAxis(p.X(), min.X()+r, max.X()-r),
		clampAxis(p.Y(), min.Y()+r, max.Y()-r),
	}
}

// FootSpot is where the rack apex sits, a quarter of the way down.
func (t Table) FootSpot() mgl64.Vec2 {
	return t.Origin.Add(mgl64.Vec2{t.Width / 2, t.Height / 4})
}

// HeadSpot is the default cue ball position.
func (t Table) HeadSpot() mgl64.Vec2 {
	return t.Origin.Add(mgl64.Vec2{t.Width / 2, t.Height * 3 / 4})
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return mgl64.Clamp(v, lo, hi)
}
