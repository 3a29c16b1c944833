package melone

import (
	"time"
)

// Spawner gates the flow of new pieces: release the waiting piece, wait
// out the cooldown, place the next one. It holds a non owning reference to
// the waiting piece; ownership stays with the game's collection.
type Spawner struct {
	canSpawn bool
	cooldown Timer
	waiting  *Piece
}

func NewSpawner() *Spawner {
	return &Spawner{
		canSpawn: true,
		cooldown: NewTimer(CooldownTime),
	}
}

// Waiting returns the piece currently steered by the player, or nil while
// the cooldown runs.
func (s *Spawner) Waiting() *Piece {
	return s.waiting
}

// spawnInitial seeds the opening waiting piece of a fresh game. There is
// nothing to overlap with yet, so no occupancy check happens.
func (s *Spawner) spawnInitial(world *World) *Piece {
	first := NewPiece(spawnPoint, 1, StateWaiting)
	world.Add(first)
	s.waiting = first
	return first
}

// Release converts the waiting piece to dynamic and starts the cooldown.
// It reports whether the release lost the game: a piece that would already
// overlap a live one cannot enter play, and that is the terminal losing
// condition. A lost release changes no physics state at all.
func (s *Spawner) Release(pieces []*Piece) (gameOver bool) {
	if !s.canSpawn || s.waiting == nil || s.waiting.state != StateWaiting {
		return false
	}

	for _, p := range pieces {
		if p != s.waiting && overlaps(p, s.waiting) {
			return true
		}
	}

	s.waiting.Release()
	s.waiting = nil
	s.canSpawn = false
	s.cooldown.Reset()

	return false
}

// Update ticks the cooldown and, the moment it expires, tries to place the
// next waiting piece at the spawn point. An occupied spawn point loses the
// game and the candidate piece is discarded unregistered. On success the
// new piece is registered with the world and returned so the caller can
// adopt it into its collection.
func (s *Spawner) Update(dt time.Duration, world *World, pieces []*Piece) (spawned *Piece, gameOver bool) {
	if s.canSpawn {
		return nil, false
	}

	s.cooldown.Tick(dt)
	if !s.cooldown.Finished() {
		return nil, false
	}

	s.canSpawn = true

	next := NewPiece(spawnPoint, 1, StateWaiting)
	for _, p := range pieces {
		if overlaps(next, p) {
			return nil, true
		}
	}

	world.Add(next)
	s.waiting = next

	return next, false
}

// overlaps reports whether two pieces sit closer than OverlapFactor times
// their combined radii.
func overlaps(a, b *Piece) bool {
	dist := a.Position().Sub(b.Position()).Length()
	return dist < (a.radius+b.radius)*OverlapFactor
}
