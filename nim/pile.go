package nim

// Pile is the number of objects in a single Nim pile.
//
// Pile is a 64-bit unsigned integer. The nim-sum algebra is defined for
// arbitrary non-negative integers; at 64 bits the recursive definition
// in Xor degenerates to the machine XOR instruction, and pile sizes
// beyond 2^64-1 are out of scope.
type Pile = uint64

// Piles is an ordered configuration of piles.
//
// Order is irrelevant to the game-theoretic outcome (XOR commutes) but
// fixed for move addressing: Move.Index refers to a position in this
// slice. A Piles value has no identity beyond its contents.
type Piles []Pile

// Clone returns a fresh copy of the configuration.
//
// Returns a non-nil empty slice for an empty (or nil) input so callers
// can always append to the result.
func (p Piles) Clone() Piles {
	out := make(Piles, len(p))
	copy(out, p)
	return out
}

// IsTerminal reports whether the game is over: every pile is empty.
//
// An empty configuration is terminal. Under normal play the player who
// took the last object has already won when the position is terminal.
func IsTerminal(piles Piles) bool {
	for _, p := range piles {
		if p != 0 {
			return false
		}
	}
	return true
}

// Normalize returns a fresh configuration with all empty piles removed.
//
// Empty piles admit no moves and contribute nothing to the nim-sum
// (XOR identity), so Sum(Normalize(p)) == Sum(p) and the legal-move set
// is unchanged up to re-indexing. The input is never mutated.
//
// CAUTION: Normalize re-indexes the remaining piles. Moves addressed
// against the original configuration are not valid against the
// normalized one unless no pile before their index was dropped.
func Normalize(piles Piles) Piles {
	out := make(Piles, 0, len(piles))
	for _, p := range piles {
		if p != 0 {
			out = append(out, p)
		}
	}
	return out
}
