package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource reports a pointer press that started this tick, in logical
// screen coordinates.
type PointerSource interface {
	JustPressed() (x, y float64, ok bool)
}

// Pointer reads the left mouse button and touches.
type Pointer struct {
	touches []ebiten.TouchID
}

func (p *Pointer) JustPressed() (float64, float64, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y), true
	}

	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		x, y := ebiten.TouchPosition(p.touches[0])
		return float64(x), float64(y), true
	}
	return 0, 0, false
}

// Queue is a PointerSource fed by hand, one press per tick.
type Queue struct {
	presses [][2]float64
}

func (q *Queue) Push(x, y float64) {
	q.presses = append(q.presses, [2]float64{x, y})
}

func (q *Queue) JustPressed() (float64, float64, bool) {
	if len(q.presses) == 0 {
		return 0, 0, false
	}
	p := q.presses[0]
	q.presses = q.presses[1:]
	return p[0], p[1], true
}
