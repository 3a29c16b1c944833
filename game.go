package melone

import (
	"slices"
	"time"
)

// Input is one frame of player intent, sampled by the shell.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Release   bool
	Restart   bool
}

// Game ties world, pieces and spawner together and advances the simulation
// one frame at a time. All methods must be called from a single goroutine;
// a frame runs to completion before the next one starts.
type Game struct {
	world   *World
	spawner *Spawner
	pieces  []*Piece

	score    int
	gameOver bool
}

// NewGame returns a fresh game: an empty arena with one waiting piece at
// the spawn point and a score of 1.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset rebuilds world, pieces and spawner from scratch. It works at any
// time, not just after a lost game.
func (g *Game) Reset() {
	g.world = NewWorld()
	g.spawner = NewSpawner()
	g.pieces = nil
	g.score = 1
	g.gameOver = false

	first := g.spawner.spawnInitial(g.world)
	g.pieces = append(g.pieces, first)
}

// Score returns the highest level ever created by a merge, at least 1.
func (g *Game) Score() int {
	return g.score
}

// GameOver reports whether the game has reached its terminal state.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Step advances the game by one frame: input, spawn logic, per piece
// corrections, merge resolution, then the physics step. Restart always
// wins over everything else; after a lost game it is the only input that
// still has an effect.
func (g *Game) Step(dt time.Duration, in Input) {
	if in.Restart {
		g.Reset()
		return
	}

	if g.gameOver {
		return
	}

	if waiting := g.spawner.Waiting(); waiting != nil {
		if in.MoveLeft {
			waiting.Nudge(-MoveStep)
		}
		if in.MoveRight {
			waiting.Nudge(MoveStep)
		}
	}

	if in.Release && g.spawner.Release(g.pieces) {
		g.gameOver = true
		return
	}

	spawned, lost := g.spawner.Update(dt, g.world, g.pieces)
	if lost {
		g.gameOver = true
		return
	}
	if spawned != nil {
		g.pieces = append(g.pieces, spawned)
	}

	for _, p := range g.pieces {
		p.Update()
	}

	g.resolveMerges()

	for _, p := range g.world.Step(dt.Seconds()) {
		g.removePiece(p)
	}
}

func (g *Game) removePiece(p *Piece) {
	g.pieces = slices.DeleteFunc(g.pieces, func(q *Piece) bool {
		return q == p
	})
}
