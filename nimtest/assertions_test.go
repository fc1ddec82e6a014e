package nimtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/grundy/nim"
)

// runWithAssertions replays a minimal one-move scenario carrying the
// given assertions: [5,2] with the equalizing move, final piles [2,2].
func runWithAssertions(t *testing.T, assertions []Assertion) *Result {
	t.Helper()
	result, err := Run(&Scenario{
		Name:        "assertion-fixture",
		Description: "shared fixture for assertion tests",
		Piles:       []nim.Pile{5, 2},
		Moves: []MoveStep{
			{Index: 0, NewValue: 2},
		},
		Assertions: assertions,
	})
	require.NoError(t, err)
	return result
}

// =============================================================================
// final_piles
// =============================================================================

func TestAssertFinalPiles_Pass(t *testing.T) {
	result := runWithAssertions(t, []Assertion{
		{Type: AssertFinalPiles, Piles: []nim.Pile{2, 2}},
	})
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestAssertFinalPiles_Fail(t *testing.T) {
	result := runWithAssertions(t, []Assertion{
		{Type: AssertFinalPiles, Piles: []nim.Pile{5, 2}},
	})
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "final_piles")
	assert.Contains(t, result.Errors[0], "Full trace")
}

func TestAssertFinalPiles_OrderMatters(t *testing.T) {
	// [2,2] vs [2,2] reversed is equal, so use an asymmetric fixture.
	result, err := Run(&Scenario{
		Name:        "order",
		Description: "pile order is part of the configuration",
		Piles:       []nim.Pile{3, 7},
		Assertions: []Assertion{
			{Type: AssertFinalPiles, Piles: []nim.Pile{7, 3}},
		},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass, "reordered piles must not match")
}

// =============================================================================
// position
// =============================================================================

func TestAssertPosition_Pass(t *testing.T) {
	result := runWithAssertions(t, []Assertion{
		{Type: AssertPosition, Winning: boolPtr(true)},
	})
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestAssertPosition_Fail(t *testing.T) {
	result := runWithAssertions(t, []Assertion{
		{Type: AssertPosition, Winning: boolPtr(false)},
	})
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "winning_position=false")
}

// =============================================================================
// nim_sum
// =============================================================================

func TestAssertNimSum_Pass(t *testing.T) {
	result := runWithAssertions(t, []Assertion{
		{Type: AssertNimSum, Value: pilePtr(0)},
	})
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestAssertNimSum_Fail(t *testing.T) {
	result := runWithAssertions(t, []Assertion{
		{Type: AssertNimSum, Value: pilePtr(7)},
	})
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "nim_sum=7")
	assert.Contains(t, result.Errors[0], "nim_sum=0")
}

// =============================================================================
// trace_count
// =============================================================================

func TestAssertTraceCount_Pass(t *testing.T) {
	result := runWithAssertions(t, []Assertion{
		{Type: AssertTraceCount, Event: EventMove, Count: 1},
		{Type: AssertTraceCount, Event: EventPosition, Count: 2},
	})
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestAssertTraceCount_Fail(t *testing.T) {
	result := runWithAssertions(t, []Assertion{
		{Type: AssertTraceCount, Event: EventMove, Count: 3},
	})
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `3 "move" events`)
	assert.Contains(t, result.Errors[0], `1 "move" events`)
}

// =============================================================================
// AssertionError formatting
// =============================================================================

func TestAssertionError_IncludesTrace(t *testing.T) {
	err := &AssertionError{
		Type:     AssertNimSum,
		Expected: "nim_sum=0",
		Actual:   "nim_sum=7",
		Trace: []TraceEvent{
			{Type: EventPosition, Seq: 1, Piles: nim.Piles{5, 2}, NimSum: 7},
			{Type: EventMove, Seq: 2, Index: 0, NewValue: 2, Valid: true},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: nim_sum")
	assert.Contains(t, msg, "Expected: nim_sum=0")
	assert.Contains(t, msg, "Actual: nim_sum=7")
	assert.Contains(t, msg, "[1] position")
	assert.Contains(t, msg, "[2] move index=0")
}

// =============================================================================
// CountEvents
// =============================================================================

func TestCountEvents(t *testing.T) {
	result := runWithAssertions(t, nil)

	assert.Equal(t, 2, result.CountEvents(EventPosition))
	assert.Equal(t, 1, result.CountEvents(EventMove))
	assert.Equal(t, 0, result.CountEvents("unknown"))
}
