// Package nim evaluates positions in the game of Nim.
//
// This package is the foundational layer: it defines the pile
// configuration model and the nim-sum algebra on top of it. Other
// packages import nim; nim imports nothing internal. This keeps the
// core free of circular dependencies.
//
// Key design constraints:
//   - NO float types anywhere - pile arithmetic must be exact
//   - Pile is a fixed 64-bit unsigned integer; widths beyond 64 bits
//     are out of scope (pile sizes are realistically small)
//   - Every operation is pure: inputs are never mutated, results are
//     fresh values owned by the caller
//   - ApplyMove fails loudly on an invalid move rather than producing
//     a nonsensical configuration
//
// Terminology follows combinatorial game theory: a P-position is a
// loss for the player about to move under optimal play (nim-sum zero),
// an N-position is a win for the player about to move (nim-sum
// nonzero). See IsWinningPosition for the naming caveat around the
// legacy "winning position" predicate.
package nim
