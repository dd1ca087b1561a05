package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

const (
	DefaultSubsteps   = 5
	DefaultSlop       = 0.1
	DefaultIterations = 10

	// DefaultFriction is the surface friction of balls and bumpers. Chipmunk
	// multiplies the two, so glancing hits pick up a little spin.
	DefaultFriction = 0.2
)

const (
	ballType cp.CollisionType = 1 + iota
	wallType
)

// Contact is one collision resolved during a Step. B is nil for wall
// contacts, in which case Wall is the index of the rect. Normal points from
// A to B, or from the wall toward A.
type Contact struct {
	A      *Body
	B      *Body
	Wall   int
	Normal mgl64.Vec2
	Speed  float64
}

// World owns the bodies and walls of one table on a chipmunk space and
// advances them in fixed steps. It is not safe for concurrent use; the game
// loop drives it.
type World struct {
	Substeps int
	Friction float64

	space  *cp.Space
	bodies []*Body
	walls  []Rect

	contacts []Contact
	seen     map[contactKey]int
}

func NewWorld(substeps int, slop float64) *World {
	if substeps <= 0 {
		substeps = DefaultSubsteps
	}
	space := cp.NewSpace()
	space.Iterations = DefaultIterations
	space.SetCollisionSlop(slop)

	w := &World{
		Substeps: substeps,
		Friction: DefaultFriction,
		space:    space,
	}
	for _, other := range []cp.CollisionType{ballType, wallType} {
		h := space.NewCollisionHandler(ballType, other)
		h.PostSolveFunc = w.postSolve
	}
	return w
}

// Add inserts b unless it is already present.
func (w *World) Add(b *Body) {
	if w.Contains(b) {
		return
	}
	if b.Kind == Fixed {
		b.body = cp.NewStaticBody()
		b.body.SetPosition(toVector(b.Pos))
	} else {
		b.body = cp.NewBody(1, cp.MomentForCircle(1, 0, b.Radius, cp.Vector{}))
	}
	b.body.UserData = b
	w.space.AddBody(b.body)

	b.shape = cp.NewCircle(b.body, b.Radius, cp.Vector{})
	b.shape.SetElasticity(b.Bounciness)
	b.shape.SetFriction(w.Friction)
	b.shape.SetCollisionType(ballType)
	b.shape.UserData = b
	w.space.AddShape(b.shape)

	b.push()
	w.bodies = append(w.bodies, b)
}

func (w *World) Remove(b *Body) bool {
	for i, o := range w.bodies {
		if o == b {
			w.space.RemoveShape(b.shape)
			w.space.RemoveBody(b.body)
			b.body, b.shape = nil, nil
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World) Contains(b *Body) bool {
	for _, o := range w.bodies {
		if o == b {
			return true
		}
	}
	return false
}

// AddWall adds a static box. Its index in Walls is reported by contacts.
func (w *World) AddWall(r Rect) {
	body := cp.NewStaticBody()
	body.SetPosition(toVector(r.center()))
	w.space.AddBody(body)

	size := r.size()
	shape := cp.NewBox(body, size.X(), size.Y(), 0)
	shape.SetElasticity(r.Bounciness)
	shape.SetFriction(w.Friction)
	shape.SetCollisionType(wallType)
	shape.UserData = len(w.walls)
	w.space.AddShape(shape)

	w.walls = append(w.walls, r)
}

func (w *World) Bodies() []*Body { return w.bodies }
func (w *World) Walls() []Rect   { return w.walls }

// Resting reports whether every active body is slower than threshold, both
// linearly (squared speed) and angularly.
func (w *World) Resting(threshold float64) bool {
	for _, b := range w.bodies {
		if b.Kind != Active {
			continue
		}
		if b.Vel.Dot(b.Vel) > threshold || math.Abs(b.AngVel) > threshold {
			return false
		}
	}
	return true
}

// Step advances the world by dt seconds split into Substeps space steps and
// returns the new contacts, at most one per pair.
func (w *World) Step(dt float64) []Contact {
	if dt <= 0 {
		return nil
	}
	for _, b := range w.bodies {
		b.push()
	}

	w.contacts = nil
	w.seen = make(map[contactKey]int)
	h := dt / float64(w.Substeps)
	for s := 0; s < w.Substeps; s++ {
		w.space.Step(h)
	}

	for _, b := range w.bodies {
		b.pull()
	}
	return w.contacts
}

type contactKey struct {
	a, b *Body
	wall int
}

// postSolve records the first step of every touch. The pre-impact closing
// speed is recovered from the normal impulse: j = (1+e) * vn / (invA+invB).
func (w *World) postSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	if !arb.IsFirstContact() {
		return
	}
	sa, sb := arb.Shapes()
	a, ok := sa.UserData.(*Body)
	if !ok {
		return
	}
	n := toVec2(arb.Normal())
	j := math.Abs(arb.TotalImpulse().Dot(arb.Normal()))

	c := Contact{A: a, Wall: -1, Normal: n}
	key := contactKey{a: a, wall: -1}
	var e, inv float64
	switch o := sb.UserData.(type) {
	case *Body:
		c.B, key.b = o, o
		e = a.Bounciness * o.Bounciness
		inv = a.invMass() + o.invMass()
	case int:
		c.Wall, key.wall = o, o
		c.Normal = n.Mul(-1)
		e = a.Bounciness * w.walls[o].Bounciness
		inv = a.invMass()
	default:
		return
	}
	if inv == 0 {
		return
	}
	c.Speed = j * inv / (1 + e)

	if _, ok := w.seen[key]; !ok && key.b != nil {
		if _, ok := w.seen[contactKey{a: key.b, b: key.a, wall: -1}]; ok {
			key.a, key.b = key.b, key.a
		}
	}
	if i, ok := w.seen[key]; ok {
		if c.Speed > w.contacts[i].Speed {
			w.contacts[i] = c
		}
		return
	}
	w.seen[key] = len(w.contacts)
	w.contacts = append(w.contacts, c)
}
