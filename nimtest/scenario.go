package nimtest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/grundy/nim"
)

// Scenario defines a recorded Nim game to replay.
// Scenarios validate the position model by applying a fixed sequence of
// moves and asserting on the resulting trace and final configuration.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name, so it must be filesystem-safe.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Piles is the starting configuration. The key is required; an
	// explicitly empty list describes the empty game.
	Piles []nim.Pile `yaml:"piles"`

	// Normalize drops empty piles after each applied move, the way a
	// physical game discards exhausted piles. Off by default because
	// normalization re-indexes subsequent moves.
	Normalize bool `yaml:"normalize,omitempty"`

	// Moves is the ordered move sequence. Each step may carry an expect
	// clause; a step without one is assumed to be a valid move.
	Moves []MoveStep `yaml:"moves,omitempty"`

	// Assertions validate the final trace and configuration.
	// Supported types: final_piles, position, nim_sum, trace_count.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// MoveStep is one attempted move in a scenario.
type MoveStep struct {
	// Index is the pile the move addresses.
	Index int `yaml:"index"`

	// NewValue is the requested replacement pile value.
	NewValue nim.Pile `yaml:"new_value"`

	// Expect specifies the expected outcome of this step.
	// If nil, the move is assumed to be valid.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected per-step behavior. Only the fields
// present are validated (subset semantics).
type ExpectClause struct {
	// Valid is whether the move should be accepted. Absent means true.
	Valid *bool `yaml:"valid,omitempty"`

	// NimSum is the expected nim-sum after the step.
	NimSum *nim.Pile `yaml:"nim_sum,omitempty"`

	// Winning is the expected P-position classification after the step
	// (true means the player to move loses).
	Winning *bool `yaml:"winning_position,omitempty"`
}

// Assertion validates the trace or final configuration.
type Assertion struct {
	// Type specifies the assertion type:
	// - "final_piles": the final configuration equals Piles exactly
	// - "position": the final P-position classification equals Winning
	// - "nim_sum": the final nim-sum equals Value
	// - "trace_count": events of type Event appear exactly Count times
	Type string `yaml:"type"`

	// Piles is the expected final configuration (final_piles).
	Piles []nim.Pile `yaml:"piles,omitempty"`

	// Winning is the expected classification (position).
	Winning *bool `yaml:"winning,omitempty"`

	// Value is the expected nim-sum (nim_sum).
	Value *nim.Pile `yaml:"value,omitempty"`

	// Event is the trace event type to count (trace_count).
	Event string `yaml:"event,omitempty"`

	// Count is the expected number of occurrences (trace_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertFinalPiles = "final_piles"
	AssertPosition   = "position"
	AssertNimSum     = "nim_sum"
	AssertTraceCount = "trace_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like
	// "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarioDir loads every *.yaml scenario in a directory, sorted by
// file name for deterministic ordering.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	// nil means the key was absent; an explicit empty list is the empty
	// game and is legal.
	if s.Piles == nil {
		return fmt.Errorf("piles is required (use [] for the empty game)")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(assertion); err != nil {
			return fmt.Errorf("assertion %d: %w", i+1, err)
		}
	}

	return nil
}

// validateAssertion checks that an assertion names a known type and
// carries the fields that type needs.
func validateAssertion(a Assertion) error {
	switch a.Type {
	case AssertFinalPiles:
		// Piles may legitimately be empty; nothing further to check.
		return nil
	case AssertPosition:
		if a.Winning == nil {
			return fmt.Errorf("position assertion requires winning")
		}
		return nil
	case AssertNimSum:
		if a.Value == nil {
			return fmt.Errorf("nim_sum assertion requires value")
		}
		return nil
	case AssertTraceCount:
		if a.Event != EventPosition && a.Event != EventMove {
			return fmt.Errorf("trace_count assertion requires event %q or %q", EventPosition, EventMove)
		}
		return nil
	case "":
		return fmt.Errorf("type is required")
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}
