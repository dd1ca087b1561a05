package table

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Slot is the starting position of one numbered ball.
type Slot struct {
	Number int
	Pos    mgl64.Vec2
}

// rackOrder lists ball numbers row by row from the apex. The 8 sits in the
// middle of the third row and the back corners hold a solid and a stripe.
var rackOrder = [15]int{
	1,
	9, 2,
	10, 8, 3,
	11, 7, 14, 4,
	5, 13, 15, 6, 12,
}

// TriangleRack lays out 15 balls in five rows growing away from apex toward
// negative y. gap is the spacing left between neighbouring balls.
func TriangleRack(apex mgl64.Vec2, radius, gap float64) []Slot {
	spacing := 2*radius + gap
	rowStep := spacing * math.Sqrt(3) / 2

	slots := make([]Slot, 0, len(rackOrder))
	k := 0
	for row := 0; row < 5; row++ {
		for col := 0; col <= row; col++ {
			x := apex.X() + (float64(col)-float64(row)/2)*spacing
			y := apex.Y() - float64(row)*rowStep
			slots = append(slots, Slot{Number: rackOrder[k], Pos: mgl64.Vec2{x, y}})
			k++
		}
	}
	return slots
}

// ScatterRack drops balls 1..count at random offsets in [lo, hi) on both
// axes from origin. Balls may overlap; the first physics steps push them
// apart.
func ScatterRack(rng *rand.Rand, origin mgl64.Vec2, count int, lo, hi float64) []Slot {
	slots := make([]Slot, 0, count)
	for n := 1; n <= count; n++ {
		x := lo + rng.Float64()*(hi-lo)
		y := lo + rng.Float64()*(hi-lo)
		slots = append(slots, Slot{Number: n, Pos: origin.Add(mgl64.Vec2{x, y})})
	}
	return slots
}

// NewRand seeds the generator used by ScatterRack.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
