package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden(t *testing.T) {
	for _, name := range []string{"arith_basics", "strict_separators"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/arith_basics.yaml")
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)

	a, err := Snapshot(s.Name, first)
	require.NoError(t, err)
	b, err := Snapshot(s.Name, second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSnapshot_Shape(t *testing.T) {
	result := NewResult()
	result.Grammar = "arith"
	result.Separators = "lenient"
	result.Cases = append(result.Cases,
		CaseResult{Seq: 1, Input: "a", Pass: true, SExpr: "a", TreeHash: "h"},
		CaseResult{Seq: 2, Input: "", Pass: true, ErrorCode: "EMPTY_INPUT", Error: "e"},
	)

	data, err := Snapshot("shape", result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"cases":[{"input":"a","seq":1,"sexpr":"a","tree_hash":"h"},{"error":"e","error_code":"EMPTY_INPUT","input":"","seq":2}],"grammar":"arith","scenario_name":"shape","separators":"lenient"}`,
		string(data))
}
