package melone

import (
	"cmp"
	"slices"

	"github.com/oliverbestmann/melone/gm"
)

// PieceView is the read only render state of a single piece.
type PieceView struct {
	Position gm.Vec
	Radius   float64
	Level    int
}

// Snapshot is everything the renderer needs for one frame.
type Snapshot struct {
	Pieces   []PieceView
	Score    int
	GameOver bool
}

// Snapshot captures the current frame. Pieces are sorted by ascending
// vertical position, so drawing them in order layers lower pieces over the
// ones behind them.
func (g *Game) Snapshot() Snapshot {
	views := make([]PieceView, 0, len(g.pieces))
	for _, p := range g.pieces {
		views = append(views, PieceView{
			Position: p.Position(),
			Radius:   p.radius,
			Level:    p.level,
		})
	}

	slices.SortFunc(views, func(a, b PieceView) int {
		return cmp.Compare(a.Position.Y, b.Position.Y)
	})

	return Snapshot{
		Pieces:   views,
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
