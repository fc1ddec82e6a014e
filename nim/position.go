package nim

// IsWinningPosition reports whether the configuration is a P-position:
// the player about to move LOSES under optimal play from both sides.
//
// NAMING CAVEAT: despite the name, true means the mover cannot force a
// win - the position is "winning" for the player who just moved. The
// predicate is exactly
//
//	IsWinningPosition(piles) == (Sum(piles) == 0)
//
// and this documented meaning is load-bearing for every caller and
// test; do not invert it.
//
// Edge cases: the empty configuration has nim-sum 0 and is a
// P-position by convention. A single non-empty pile is never a
// P-position - taking the whole pile is the canonical winning move -
// while a single pile of exactly 0 is.
func IsWinningPosition(piles Piles) bool {
	return Sum(piles) == 0
}
