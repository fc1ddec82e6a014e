package nimtest

import "github.com/roach88/grundy/nim"

// Trace event types.
const (
	// EventPosition records the configuration after the preceding move
	// (or the starting configuration for the first event).
	EventPosition = "position"

	// EventMove records an attempted move, valid or not.
	EventMove = "move"
)

// TraceEvent is one entry in a scenario trace. The populated fields
// depend on Type.
type TraceEvent struct {
	Type string // EventPosition or EventMove
	Seq  int64  // monotonic sequence from the turn clock

	// Position fields (Type == EventPosition).
	Piles    nim.Piles // snapshot, never aliased to harness state
	NimSum   nim.Pile
	Winning  bool // P-position: the player to move loses
	Terminal bool

	// Move fields (Type == EventMove).
	Index    int
	NewValue nim.Pile
	Valid    bool
	ErrCode  string // invalid-move error code, empty when Valid
}

// Result is the outcome of a scenario replay.
type Result struct {
	// Pass indicates overall scenario success: every expect clause and
	// assertion held.
	Pass bool

	// Trace contains the position and move events in order.
	Trace []TraceEvent

	// Errors contains validation error messages. Empty if Pass is true.
	Errors []string

	// FinalPiles is the configuration after the last move (normalized
	// when the scenario requests it).
	FinalPiles nim.Piles
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// addPosition appends a position event for the given configuration.
// The configuration is snapshotted so later moves cannot rewrite it.
func (r *Result) addPosition(piles nim.Piles, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type:     EventPosition,
		Seq:      seq,
		Piles:    piles.Clone(),
		NimSum:   nim.Sum(piles),
		Winning:  nim.IsWinningPosition(piles),
		Terminal: nim.IsTerminal(piles),
	})
}

// addMove appends a move event.
func (r *Result) addMove(m nim.Move, valid bool, errCode string, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type:     EventMove,
		Seq:      seq,
		Index:    m.Index,
		NewValue: m.NewValue,
		Valid:    valid,
		ErrCode:  errCode,
	})
}

// CountEvents returns how many trace events have the given type.
func (r *Result) CountEvents(eventType string) int {
	count := 0
	for _, event := range r.Trace {
		if event.Type == eventType {
			count++
		}
	}
	return count
}
