package nimtest

import (
	"fmt"
	"strings"

	"github.com/roach88/grundy/nim"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)

	// Expected vs Actual (most important info)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	// Full trace for context
	fmt.Fprintf(&buf, "\nFull trace:\n")
	for i, event := range e.Trace {
		switch event.Type {
		case EventMove:
			fmt.Fprintf(&buf, "  [%d] move index=%d new_value=%d valid=%v\n",
				i+1, event.Index, event.NewValue, event.Valid)
		case EventPosition:
			fmt.Fprintf(&buf, "  [%d] position piles=%v nim_sum=%d winning=%v\n",
				i+1, event.Piles, event.NimSum, event.Winning)
		}
	}

	return buf.String()
}

// runAssertions evaluates the scenario's assertions against the trace
// and the final configuration, recording failures on the result.
func runAssertions(scenario *Scenario, result *Result, final nim.Piles) {
	for _, assertion := range scenario.Assertions {
		if err := checkAssertion(assertion, result, final); err != nil {
			result.AddError(err.Error())
		}
	}
}

// checkAssertion dispatches a single assertion. Assertion types are
// validated at load time, so an unknown type here is a programming
// error and is reported as a failure rather than ignored.
func checkAssertion(assertion Assertion, result *Result, final nim.Piles) error {
	switch assertion.Type {
	case AssertFinalPiles:
		return assertFinalPiles(final, assertion, result.Trace)
	case AssertPosition:
		return assertPosition(final, assertion, result.Trace)
	case AssertNimSum:
		return assertNimSum(final, assertion, result.Trace)
	case AssertTraceCount:
		return assertTraceCount(result, assertion)
	}
	return fmt.Errorf("unknown assertion type %q", assertion.Type)
}

// assertFinalPiles checks the final configuration matches exactly,
// order included (order is load-bearing for move addressing).
func assertFinalPiles(final nim.Piles, assertion Assertion, trace []TraceEvent) error {
	if equalPiles(final, assertion.Piles) {
		return nil
	}
	return &AssertionError{
		Type:     AssertFinalPiles,
		Expected: fmt.Sprintf("final piles %v", nim.Piles(assertion.Piles)),
		Actual:   fmt.Sprintf("final piles %v", final),
		Trace:    trace,
	}
}

// assertPosition checks the final P-position classification.
func assertPosition(final nim.Piles, assertion Assertion, trace []TraceEvent) error {
	got := nim.IsWinningPosition(final)
	if got == *assertion.Winning {
		return nil
	}
	return &AssertionError{
		Type:     AssertPosition,
		Expected: fmt.Sprintf("winning_position=%v", *assertion.Winning),
		Actual:   fmt.Sprintf("winning_position=%v (piles %v, nim_sum %d)", got, final, nim.Sum(final)),
		Trace:    trace,
	}
}

// assertNimSum checks the final nim-sum.
func assertNimSum(final nim.Piles, assertion Assertion, trace []TraceEvent) error {
	got := nim.Sum(final)
	if got == *assertion.Value {
		return nil
	}
	return &AssertionError{
		Type:     AssertNimSum,
		Expected: fmt.Sprintf("nim_sum=%d", *assertion.Value),
		Actual:   fmt.Sprintf("nim_sum=%d (piles %v)", got, final),
		Trace:    trace,
	}
}

// assertTraceCount checks the event type appears exactly Count times.
func assertTraceCount(result *Result, assertion Assertion) error {
	count := result.CountEvents(assertion.Event)
	if count == assertion.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertTraceCount,
		Expected: fmt.Sprintf("%d %q events", assertion.Count, assertion.Event),
		Actual:   fmt.Sprintf("%d %q events", count, assertion.Event),
		Trace:    result.Trace,
	}
}

// equalPiles compares configurations element by element. nil and empty
// are the same configuration.
func equalPiles(a, b nim.Piles) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
