package nim

// Move reduces the pile at Index to NewValue.
//
// A move is only meaningful relative to a specific configuration: it is
// valid when Index addresses a pile and NewValue is strictly smaller
// than that pile's current value.
type Move struct {
	Index    int  `json:"index" yaml:"index"`
	NewValue Pile `json:"new_value" yaml:"new_value"`
}

// IsValidMove reports whether m applies to the configuration: the index
// is in bounds and the new value strictly decreases the addressed pile.
//
// Total: never fails, never mutates.
func IsValidMove(piles Piles, m Move) bool {
	if m.Index < 0 || m.Index >= len(piles) {
		return false
	}
	return m.NewValue < piles[m.Index]
}

// ApplyMove returns a fresh configuration identical to piles except the
// addressed pile is replaced by m.NewValue.
//
// The input slice is never mutated or aliased; ownership of the result
// transfers fully to the caller. An invalid move (out-of-range index,
// or a value that does not strictly decrease the pile) returns a
// *InvalidMoveError rather than a clamped or unchanged configuration.
// Callers that pre-validate with IsValidMove will never see the error.
func ApplyMove(piles Piles, m Move) (Piles, error) {
	if m.Index < 0 || m.Index >= len(piles) {
		return nil, newIndexError(m.Index, len(piles), m.NewValue)
	}
	if m.NewValue >= piles[m.Index] {
		return nil, newNotReducedError(m.Index, m.NewValue, piles[m.Index])
	}

	out := piles.Clone()
	out[m.Index] = m.NewValue
	return out, nil
}

// LegalMoves enumerates every legal move of the configuration, ordered
// by pile index and then by descending removal (NewValue ascending).
//
// A pile of value v admits exactly v moves (reduce to 0..v-1), so the
// result length is the total object count. This is enumeration, not
// strategy: moves are not ranked. Returns an empty non-nil slice for a
// terminal configuration.
func LegalMoves(piles Piles) []Move {
	var total Pile
	for _, p := range piles {
		total += p
	}

	moves := make([]Move, 0, total)
	for i, p := range piles {
		for n := Pile(0); n < p; n++ {
			moves = append(moves, Move{Index: i, NewValue: n})
		}
	}
	return moves
}

// EqualizingMove returns the winning move for a two-pile configuration:
// reduce the larger pile to equal the smaller. The resulting position
// [v, v] has nim-sum 0 (self-cancellation), a P-position left to the
// opponent.
//
// ok is false when the heuristic does not apply: the configuration is
// not exactly two piles, or the piles are already equal (nim-sum 0, no
// winning move exists). Only the two-pile case is handled; there is no
// general N-pile move search here.
func EqualizingMove(piles Piles) (move Move, ok bool) {
	if len(piles) != 2 {
		return Move{}, false
	}
	a, b := piles[0], piles[1]
	switch {
	case a > b:
		return Move{Index: 0, NewValue: b}, true
	case b > a:
		return Move{Index: 1, NewValue: a}, true
	}
	return Move{}, false
}
