package melone

import (
	"time"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/melone/gm"
)

// Arena geometry. The walls are segments of radius WallThickness laid on
// the arena outline, so they reach WallThickness units into the arena.
const (
	ArenaWidth    = 600
	ArenaHeight   = 800
	WallThickness = 10
)

// Physics tuning. Gravity points down the screen (y grows downwards).
const (
	Gravity = 900
	Damping = 0.8

	WallElasticity = 0.8
	WallFriction   = 1.5

	PieceElasticity = 0.8
	PieceFriction   = 0.5
)

// Piece sizing and mass. A freshly released piece is much heavier than a
// fused one so it pushes into the stack instead of bouncing off it.
const (
	BaseRadius = 45
	RadiusStep = 8
	MaxLevel   = 10

	ReleasedMass = 120
	FusedMass    = 1
)

// Spawn control.
const (
	SpawnHeight = 50
	MoveStep    = 5

	// Two pieces closer than OverlapFactor times their combined radii
	// count as overlapping for spawn and release checks.
	OverlapFactor = 0.9
)

const CooldownTime = time.Second

const pieceCollisionType cp.CollisionType = 1

// Waiting pieces live in their own collision category with an empty mask,
// so they touch nothing until released.
const (
	categoryPiece   uint = 1 << 0
	categoryWaiting uint = 1 << 1
)

var arena = gm.RectWithSize(gm.Vec{X: ArenaWidth, Y: ArenaHeight})

var spawnPoint = gm.Vec{X: ArenaWidth / 2, Y: SpawnHeight}
