package melone

import (
	"log/slog"
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/melone/gm"
)

// State describes the lifecycle of a Piece.
type State uint8

const StateWaiting State = 0
const StateMoving State = 1

// StateStopped is reserved for settling detection. Current logic never
// sets it.
const StateStopped State = 2

// Piece is a single watermelon: one circle body in the arena whose level
// determines its size and merge target.
//
// A piece starts Waiting at the spawn point, attached to a kinematic body
// that the player steers but that collides with nothing. Release turns the
// body dynamic in place. A piece is identified by its pointer; two pieces
// are never the same just because their attributes match.
type Piece struct {
	level  int
	radius float64
	state  State

	// set the moment the piece is picked for a merge, never cleared
	merged bool

	body  *cp.Body
	shape *cp.Shape
}

// RadiusOf returns the circle radius for a level.
func RadiusOf(level int) float64 {
	return BaseRadius + float64(level-1)*RadiusStep
}

// NewPiece builds the body and shape for a piece of the given level. The
// level is clamped to MaxLevel. Waiting pieces get a kinematic body, any
// other state a dynamic body of mass FusedMass. The piece is not
// registered with a World.
func NewPiece(pos gm.Vec, level int, state State) *Piece {
	level = min(level, MaxLevel)

	p := &Piece{
		level:  level,
		radius: RadiusOf(level),
		state:  state,
	}

	if state == StateWaiting {
		p.body = cp.NewKinematicBody()
	} else {
		moment := cp.MomentForCircle(FusedMass, 0, p.radius, cp.Vector{})
		p.body = cp.NewBody(FusedMass, moment)
	}

	p.body.SetPosition(cp.Vector(pos))
	p.body.UserData = p

	p.shape = cp.NewCircle(p.body, p.radius, cp.Vector{})
	p.shape.SetElasticity(PieceElasticity)
	p.shape.SetFriction(PieceFriction)
	p.shape.SetCollisionType(pieceCollisionType)
	p.shape.SetFilter(p.filter())
	p.shape.UserData = p

	return p
}

func (p *Piece) filter() cp.ShapeFilter {
	if p.state == StateWaiting {
		return cp.NewShapeFilter(cp.NO_GROUP, categoryWaiting, 0)
	}

	return cp.NewShapeFilter(cp.NO_GROUP, categoryPiece, cp.ALL_CATEGORIES)
}

func (p *Piece) Level() int {
	return p.level
}

func (p *Piece) Radius() float64 {
	return p.radius
}

func (p *Piece) State() State {
	return p.state
}

// Merged returns true once the piece has been picked for a merge.
func (p *Piece) Merged() bool {
	return p.merged
}

func (p *Piece) Position() gm.Vec {
	return gm.Vec(p.body.Position())
}

// Nudge shifts a waiting piece horizontally. Clamping to the arena happens
// in Update. Pieces in any other state ignore the call.
func (p *Piece) Nudge(dx float64) {
	if p.state != StateWaiting {
		return
	}

	pos := p.body.Position()
	p.body.SetPosition(cp.Vector{X: pos.X + dx, Y: pos.Y})
}

// Release converts the piece in place from kinematic to dynamic with mass
// ReleasedMass and transitions it to Moving. The body is mutated, never
// replaced, so a World registration stays valid across the call. Release
// is a no-op unless the piece is Waiting.
func (p *Piece) Release() {
	if p.state != StateWaiting {
		return
	}

	p.state = StateMoving

	p.body.SetType(cp.BODY_DYNAMIC)
	p.body.SetMass(ReleasedMass)
	p.body.SetMoment(cp.MomentForCircle(ReleasedMass, 0, p.radius, cp.Vector{}))
	p.shape.SetFilter(p.filter())
}

// Update applies the per frame self corrections: a non finite position is
// pulled back to the arena center, and a waiting piece is clamped into the
// arena and pinned to the spawn height.
func (p *Piece) Update() {
	pos := p.Position()

	if !isFinite(pos) {
		slog.Warn("piece position is not finite, recentering",
			slog.Int("level", p.level),
			slog.String("position", pos.String()))

		pos = arena.Center()
		p.body.SetPosition(cp.Vector(pos))
	}

	if p.state == StateWaiting {
		x := max(p.radius, min(pos.X, ArenaWidth-p.radius))
		p.body.SetPosition(cp.Vector{X: x, Y: SpawnHeight})
	}
}

func isFinite(v gm.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
