package melone

import (
	"log/slog"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/melone/gm"
)

// MergePair is a merge candidate: two touching pieces of equal level,
// flagged by the contact callback and waiting for resolution.
type MergePair struct {
	A, B *Piece
}

// World owns the physics space, the four arena walls and the registry of
// registered pieces. Registry and space are kept in lockstep: a registered
// piece has exactly one body and one shape in the space.
type World struct {
	space  *cp.Space
	pieces map[*Piece]struct{}

	// filled by the contact callback, drained once per frame
	pending []MergePair
}

// NewWorld creates the arena: gravity pointing down the screen, velocity
// damping, four boundary segments and the piece contact handler.
func NewWorld() *World {
	w := &World{
		space:  cp.NewSpace(),
		pieces: map[*Piece]struct{}{},
	}

	w.space.SetGravity(cp.Vector{X: 0, Y: Gravity})
	w.space.SetDamping(Damping)

	w.addWalls()

	handler := w.space.NewCollisionHandler(pieceCollisionType, pieceCollisionType)
	handler.BeginFunc = w.beginContact

	return w
}

func (w *World) addWalls() {
	walls := [][2]gm.Vec{
		{arena.TopLeft(), arena.TopRight()},
		{arena.BottomLeft(), arena.BottomRight()},
		{arena.TopLeft(), arena.BottomLeft()},
		{arena.TopRight(), arena.BottomRight()},
	}

	for _, points := range walls {
		wall := cp.NewSegment(w.space.StaticBody, cp.Vector(points[0]), cp.Vector(points[1]), WallThickness)
		wall.SetElasticity(WallElasticity)
		wall.SetFriction(WallFriction)
		w.space.AddShape(wall)
	}
}

// beginContact runs inside Space.Step. It only flags pieces and enqueues
// the pair, it must never mutate the body set while the solver iterates.
// Returning true keeps the physical contact alive either way.
func (w *World) beginContact(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	shapeA, shapeB := arb.Shapes()

	a, okA := shapeA.UserData.(*Piece)
	b, okB := shapeB.UserData.(*Piece)
	if !okA || !okB {
		return true
	}

	eligible := a.level == b.level &&
		a.level < MaxLevel &&
		!a.merged && !b.merged &&
		a.state != StateWaiting && b.state != StateWaiting

	if eligible {
		a.merged = true
		b.merged = true
		w.pending = append(w.pending, MergePair{A: a, B: b})
	}

	return true
}

// Add registers a piece with the space. Adding a registered piece is a
// no-op.
func (w *World) Add(p *Piece) {
	if _, ok := w.pieces[p]; ok {
		return
	}

	w.pieces[p] = struct{}{}
	w.space.AddBody(p.body)
	w.space.AddShape(p.shape)
}

// Remove unregisters a piece. Removing an unknown piece is a no-op.
func (w *World) Remove(p *Piece) {
	if _, ok := w.pieces[p]; !ok {
		return
	}

	delete(w.pieces, p)
	w.space.RemoveShape(p.shape)
	w.space.RemoveBody(p.body)
}

// Contains reports whether the piece is currently registered.
func (w *World) Contains(p *Piece) bool {
	_, ok := w.pieces[p]
	return ok
}

// Step advances the simulation by dt seconds. Pieces whose position went
// non finite are evicted before integration and returned so the caller can
// drop them from its own collection too.
func (w *World) Step(dt float64) []*Piece {
	var evicted []*Piece
	for p := range w.pieces {
		if !isFinite(p.Position()) {
			evicted = append(evicted, p)
		}
	}

	for _, p := range evicted {
		slog.Warn("evicting piece with non finite position",
			slog.Int("level", p.level),
			slog.String("position", p.Position().String()))

		w.Remove(p)
	}

	w.space.Step(dt)

	return evicted
}

// DrainMerges returns the pairs collected since the last call and clears
// the queue. Stale pairs never survive into the next frame.
func (w *World) DrainMerges() []MergePair {
	pending := w.pending
	w.pending = nil
	return pending
}
