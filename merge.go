package melone

// resolveMerges drains the pending pairs from the world. Every pair whose
// members are both still registered fuses into a single piece of the next
// level, placed at the midpoint of its parents. Pairs invalidated by an
// earlier merge in the same frame are dropped silently.
//
// Destruction and creation are a single uninterrupted block per pair so no
// intermediate state leaks: the world never holds a destroyed piece and
// the collection never misses a live one.
func (g *Game) resolveMerges() {
	for _, pair := range g.world.DrainMerges() {
		a, b := pair.A, pair.B

		if !g.world.Contains(a) || !g.world.Contains(b) {
			continue
		}

		mid := a.Position().Add(b.Position()).Mul(0.5)
		level := a.level + 1

		g.world.Remove(a)
		g.world.Remove(b)
		g.removePiece(a)
		g.removePiece(b)

		fused := NewPiece(mid, level, StateMoving)
		g.world.Add(fused)
		g.pieces = append(g.pieces, fused)

		g.score = max(g.score, level)
	}
}
