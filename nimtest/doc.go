// Package nimtest provides a deterministic replay harness for Nim games.
//
// A scenario is a recorded game: a starting pile configuration and an
// ordered list of moves, described in a YAML fixture. The harness
// replays the scenario against the nim core and produces a turn-by-turn
// trace: a position event after every move (piles, nim-sum, P-position
// classification, terminal flag) interleaved with the move events
// themselves. Traces are fully deterministic - running the same
// scenario always yields an identical trace - which makes them suitable
// for golden-file comparison via RunWithGolden.
//
// Scenarios can validate behavior at three levels:
//
//  1. Per-move expect clauses: was the move accepted, and what are the
//     nim-sum and classification afterwards?
//  2. Final assertions: final_piles, position, nim_sum, trace_count.
//  3. Golden traces: byte-exact comparison of the whole trace.
//
// The harness is replay only. It never chooses moves, never prompts,
// and never persists anything: an invalid move is recorded in the trace
// and leaves the position unchanged, exactly as a rejected move would
// in a refereed game.
package nimtest
