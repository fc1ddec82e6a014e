package nimtest

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/grundy/nim"
)

// TraceSnapshot captures the complete trace of a scenario replay.
// Serialized as JSON with map keys, so field order is deterministic
// (encoding/json sorts map keys) and golden comparison is byte-exact.
type TraceSnapshot struct {
	ScenarioName string
	FinalPiles   nim.Piles
	Trace        []TraceEvent
}

// toMap converts the snapshot to a map[string]any for serialization.
// Per-type event shapes keep position and move fields from bleeding
// into each other (a typed struct with omitempty would drop legitimate
// zero values like nim_sum 0).
func (s *TraceSnapshot) toMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"type": event.Type,
			"seq":  event.Seq,
		}
		switch event.Type {
		case EventPosition:
			eventMap["piles"] = event.Piles
			eventMap["nim_sum"] = event.NimSum
			eventMap["winning_position"] = event.Winning
			eventMap["terminal"] = event.Terminal
		case EventMove:
			eventMap["index"] = event.Index
			eventMap["new_value"] = event.NewValue
			eventMap["valid"] = event.Valid
			if event.ErrCode != "" {
				eventMap["error"] = event.ErrCode
			}
		}
		traceList[i] = eventMap
	}

	return map[string]any{
		"scenario_name": s.ScenarioName,
		"final_piles":   s.FinalPiles,
		"trace":         traceList,
	}
}

// RunWithGolden replays a scenario and compares the trace against a
// golden file. The golden file is stored in
// testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./nimtest -update
//
// Golden files are the source of truth for expected trace output; a
// scenario that fails its own expect clauses or assertions is reported
// as an error before any golden comparison happens.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	if !result.Pass {
		return fmt.Errorf("scenario %q failed: %s", scenario.Name, strings.Join(result.Errors, "; "))
	}

	snapshot := TraceSnapshot{
		ScenarioName: scenario.Name,
		FinalPiles:   result.FinalPiles,
		Trace:        result.Trace,
	}

	data, err := json.MarshalIndent(snapshot.toMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trace snapshot: %w", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
