package nim

import (
	"errors"
	"fmt"
)

// InvalidMoveError is returned by ApplyMove when a move does not apply
// to the given configuration.
//
// Invalid moves are one of:
//   - Index out of range: Move.Index does not address a pile
//   - Pile not reduced: Move.NewValue is not strictly smaller than the
//     addressed pile (Nim only removes objects, never adds)
//
// InvalidMoveError includes structured fields for diagnostics.
type InvalidMoveError struct {
	// Code identifies the violation category.
	Code MoveErrorCode

	// Index is the pile index the move addressed.
	Index int

	// NewValue is the requested replacement pile value.
	NewValue Pile

	// PileCount is the length of the configuration (for index errors).
	PileCount int

	// Current is the value of the addressed pile (for reduction errors).
	Current Pile
}

// MoveErrorCode categorizes invalid moves.
type MoveErrorCode string

const (
	// ErrCodeIndexOutOfRange indicates the move addressed no pile.
	ErrCodeIndexOutOfRange MoveErrorCode = "INDEX_OUT_OF_RANGE"

	// ErrCodePileNotReduced indicates the move would not strictly
	// decrease the addressed pile.
	ErrCodePileNotReduced MoveErrorCode = "PILE_NOT_REDUCED"
)

// Error implements the error interface.
func (e *InvalidMoveError) Error() string {
	switch e.Code {
	case ErrCodeIndexOutOfRange:
		return fmt.Sprintf("%s: pile index %d out of range (piles=%d)", e.Code, e.Index, e.PileCount)
	case ErrCodePileNotReduced:
		return fmt.Sprintf("%s: new value %d does not reduce pile %d (current=%d)", e.Code, e.NewValue, e.Index, e.Current)
	}
	return fmt.Sprintf("%s: invalid move (index=%d, new_value=%d)", e.Code, e.Index, e.NewValue)
}

// IsInvalidMove returns true if the error is an InvalidMoveError.
// Uses errors.As to handle wrapped errors.
func IsInvalidMove(err error) bool {
	var me *InvalidMoveError
	return errors.As(err, &me)
}

// IsIndexError returns true if the error is an out-of-range move error.
// Uses errors.As to handle wrapped errors.
func IsIndexError(err error) bool {
	var me *InvalidMoveError
	if errors.As(err, &me) {
		return me.Code == ErrCodeIndexOutOfRange
	}
	return false
}

// IsNotReducedError returns true if the error is a non-reducing move
// error. Uses errors.As to handle wrapped errors.
func IsNotReducedError(err error) bool {
	var me *InvalidMoveError
	if errors.As(err, &me) {
		return me.Code == ErrCodePileNotReduced
	}
	return false
}

func newIndexError(index, pileCount int, newValue Pile) *InvalidMoveError {
	return &InvalidMoveError{
		Code:      ErrCodeIndexOutOfRange,
		Index:     index,
		NewValue:  newValue,
		PileCount: pileCount,
	}
}

func newNotReducedError(index int, newValue, current Pile) *InvalidMoveError {
	return &InvalidMoveError{
		Code:     ErrCodePileNotReduced,
		Index:    index,
		NewValue: newValue,
		Current:  current,
	}
}
