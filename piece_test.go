package melone

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/melone/gm"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestRadiusOf(t *testing.T) {
	require.EqualValues(t, 45, RadiusOf(1))
	require.EqualValues(t, 53, RadiusOf(2))
	require.EqualValues(t, 117, RadiusOf(10))

	for level := 2; level <= MaxLevel; level++ {
		require.Greater(t, RadiusOf(level), RadiusOf(level-1))
	}
}

func TestNewPiece_ClampsLevel(t *testing.T) {
	p := NewPiece(spawnPoint, 42, StateMoving)

	require.Equal(t, MaxLevel, p.Level())
	require.EqualValues(t, RadiusOf(MaxLevel), p.Radius())
}

func TestPiece_Release(t *testing.T) {
	p := NewPiece(spawnPoint, 1, StateWaiting)
	require.Equal(t, StateWaiting, p.State())

	p.Release()
	require.Equal(t, StateMoving, p.State())

	// a second release must not change anything
	p.Release()
	require.Equal(t, StateMoving, p.State())
}

func TestPiece_NudgeOnlyMovesWaitingPieces(t *testing.T) {
	p := NewPiece(gm.Vec{X: 300, Y: 50}, 1, StateWaiting)

	p.Nudge(-MoveStep)
	require.Equal(t, gm.Vec{X: 295, Y: 50}, p.Position())

	p.Release()
	p.Nudge(-MoveStep)
	require.Equal(t, gm.Vec{X: 295, Y: 50}, p.Position())
}

func TestPiece_UpdateClampsWaitingIntoArena(t *testing.T) {
	t.Run("left wall", func(t *testing.T) {
		p := NewPiece(gm.Vec{X: -50, Y: 300}, 1, StateWaiting)
		p.Update()
		require.Equal(t, gm.Vec{X: 45, Y: SpawnHeight}, p.Position())
	})

	t.Run("right wall", func(t *testing.T) {
		p := NewPiece(gm.Vec{X: 1000, Y: 0}, 1, StateWaiting)
		p.Update()
		require.Equal(t, gm.Vec{X: ArenaWidth - 45, Y: SpawnHeight}, p.Position())
	})

	t.Run("moving pieces are not clamped", func(t *testing.T) {
		p := NewPiece(gm.Vec{X: -50, Y: 300}, 1, StateMoving)
		p.Update()
		require.Equal(t, gm.Vec{X: -50, Y: 300}, p.Position())
	})
}

func TestPiece_UpdateRecentersNonFinitePositions(t *testing.T) {
	p := NewPiece(gm.Vec{X: 100, Y: 100}, 2, StateMoving)

	p.body.SetPosition(cp.Vector{X: math.NaN(), Y: 100})
	p.Update()
	require.Equal(t, arena.Center(), p.Position())

	p.body.SetPosition(cp.Vector{X: 100, Y: math.Inf(1)})
	p.Update()
	require.Equal(t, arena.Center(), p.Position())
}
