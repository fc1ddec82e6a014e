package nimtest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/grundy/internal/testutil"
	"github.com/roach88/grundy/nim"
)

// Harness replays scenarios with a deterministic turn clock.
//
// Replay is pure: the harness holds no game state between runs, and the
// same scenario always produces an identical trace.
type Harness struct {
	clock  *testutil.TurnClock
	logger *slog.Logger
}

// New creates a harness. A nil logger suppresses logging, which is what
// tests want.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{
		clock:  testutil.NewTurnClock(),
		logger: logger,
	}
}

// Run replays a scenario with a fresh harness and returns the result.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run replays the scenario and returns the result.
//
// Execution flow:
//  1. Record the starting position
//  2. For each move step: validate, apply if valid, record move and
//     position events, check the step's expect clause
//  3. Evaluate the scenario's assertions against the trace and the
//     final configuration
//
// An invalid move is recorded with its error code and leaves the
// position unchanged; whether it fails the scenario depends on the
// step's expect clause. Run returns an error only for unusable input
// (nil or invalid scenario), never for a failing scenario - failures
// are reported in Result.Errors.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	h.clock.Reset()
	result := NewResult()

	piles := nim.Piles(scenario.Piles).Clone()
	result.addPosition(piles, h.clock.Next())

	for i, step := range scenario.Moves {
		move := nim.Move{Index: step.Index, NewValue: step.NewValue}

		next, err := nim.ApplyMove(piles, move)
		valid := err == nil
		errCode := ""
		if valid {
			piles = next
			if scenario.Normalize {
				piles = nim.Normalize(piles)
			}
		} else {
			var me *nim.InvalidMoveError
			if !errors.As(err, &me) {
				// ApplyMove's only failure mode is InvalidMoveError.
				return nil, fmt.Errorf("move %d: %w", i+1, err)
			}
			errCode = string(me.Code)
		}

		h.logger.Debug("move replayed",
			"scenario", scenario.Name,
			"step", i+1,
			"index", move.Index,
			"new_value", move.NewValue,
			"valid", valid,
		)

		result.addMove(move, valid, errCode, h.clock.Next())
		result.addPosition(piles, h.clock.Next())

		checkExpect(result, i, step.Expect, valid, errCode, piles)
	}

	runAssertions(scenario, result, piles)
	result.FinalPiles = piles

	h.logger.Info("scenario replayed",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"moves", len(scenario.Moves),
	)

	return result, nil
}

// checkExpect validates a step's expect clause against the outcome.
// A step with no clause (or no valid field) is assumed to be a valid
// move; nim_sum and winning_position are checked against the
// configuration after the step.
func checkExpect(result *Result, step int, expect *ExpectClause, valid bool, errCode string, piles nim.Piles) {
	expectedValid := true
	if expect != nil && expect.Valid != nil {
		expectedValid = *expect.Valid
	}

	if valid != expectedValid {
		if valid {
			result.AddError(fmt.Sprintf("move %d: expected rejection, but move was applied", step+1))
		} else {
			result.AddError(fmt.Sprintf("move %d: unexpected invalid move (%s)", step+1, errCode))
		}
	}

	if expect == nil {
		return
	}

	if expect.NimSum != nil {
		if got := nim.Sum(piles); got != *expect.NimSum {
			result.AddError(fmt.Sprintf("move %d: expected nim_sum %d, got %d", step+1, *expect.NimSum, got))
		}
	}

	if expect.Winning != nil {
		if got := nim.IsWinningPosition(piles); got != *expect.Winning {
			result.AddError(fmt.Sprintf("move %d: expected winning_position %v, got %v", step+1, *expect.Winning, got))
		}
	}
}
