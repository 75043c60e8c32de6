package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/pratt/internal/canon"
)

// Snapshot returns the canonical JSON snapshot of a scenario run: the
// grammar, separator mode and every recorded case. Pass/fail flags are
// left out so a snapshot only changes when parsing behavior does.
func Snapshot(scenarioName string, result *Result) ([]byte, error) {
	cases := make([]any, len(result.Cases))
	for i, c := range result.Cases {
		m := map[string]any{
			"seq":   c.Seq,
			"input": c.Input,
		}
		if c.ErrorCode != "" {
			m["error_code"] = c.ErrorCode
			m["error"] = c.Error
		} else {
			m["sexpr"] = c.SExpr
			m["tree_hash"] = c.TreeHash
		}
		cases[i] = m
	}

	return canon.MarshalCanonical(map[string]any{
		"scenario_name": scenarioName,
		"grammar":       result.Grammar,
		"separators":    result.Separators,
		"cases":         cases,
	})
}

// RunWithGolden executes a scenario and compares its snapshot against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
