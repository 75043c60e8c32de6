package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/pratt/internal/grammar"
	"github.com/roach88/pratt/internal/pratt"
	"github.com/roach88/pratt/internal/store"
	"github.com/roach88/pratt/internal/testutil"
	"github.com/roach88/pratt/internal/tree"
)

// Harness is the test execution engine.
// It runs scenarios with a deterministic clock and record IDs.
type Harness struct {
	table    *grammar.Table
	opts     []pratt.Option
	recorder *store.Recorder
	logger   *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
// Deterministic helpers ensure reproducible results.
//
// Execution flow:
// 1. Load the grammar
// 2. Create fresh in-memory database
// 3. Parse and record every case
// 4. Return result with pass/fail, case outcomes, and errors
//
// A mismatch fails the result; only infrastructure problems return an error.
func Run(scenario *Scenario) (*Result, error) {
	table, err := scenario.LoadGrammar()
	if err != nil {
		return nil, fmt.Errorf("failed to load grammar: %w", err)
	}
	mode, err := scenario.SeparatorMode()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in tests
	h := &Harness{
		table: table,
		opts: []pratt.Option{
			pratt.WithSeparatorMode(mode),
			pratt.WithMaxDepth(scenario.MaxDepth),
			pratt.WithLogger(logger),
		},
		recorder: store.NewRecorderWith(st, testutil.NewFixedIDGenerator(), testutil.NewDeterministicClock()),
		logger:   logger,
	}

	result := NewResult()
	result.Grammar = table.Name()
	result.Separators = mode.String()

	ctx := context.Background()
	for i, c := range scenario.Cases {
		cr, err := h.runCase(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		result.Cases = append(result.Cases, cr)
		if msg := mismatch(c, cr); msg != "" {
			result.AddError(fmt.Sprintf("cases[%d] %q: %s", i, c.Input, msg))
		}
	}

	return result, nil
}

func (h *Harness) runCase(ctx context.Context, c Case) (CaseResult, error) {
	n, parseErr := tree.Parse(c.Input, h.table, h.opts...)
	rec, err := h.recorder.Record(ctx, h.table.Name(), c.Input, n, parseErr)
	if err != nil {
		return CaseResult{}, err
	}
	h.logger.Debug("case", "seq", rec.Seq, "input", c.Input, "ok", rec.OK())

	cr := CaseResult{
		Seq:      rec.Seq,
		Input:    rec.Input,
		SExpr:    rec.SExpr,
		TreeHash: rec.TreeHash,
	}
	if parseErr != nil {
		cr.ErrorCode = tree.ErrorCode(parseErr)
		cr.Error = rec.ErrorMessage
	}
	cr.Pass = mismatch(c, cr) == ""
	return cr, nil
}

// mismatch describes how cr differs from what c expects, or returns "".
func mismatch(c Case, cr CaseResult) string {
	switch {
	case c.Expect != "" && cr.ErrorCode != "":
		return fmt.Sprintf("expected %s, got error %s: %s", c.Expect, cr.ErrorCode, cr.Error)
	case c.Expect != "" && cr.SExpr != c.Expect:
		return fmt.Sprintf("expected %s, got %s", c.Expect, cr.SExpr)
	case c.Error != "" && cr.ErrorCode == "":
		return fmt.Sprintf("expected error %s, got %s", c.Error, cr.SExpr)
	case c.Error != "" && cr.ErrorCode != c.Error:
		return fmt.Sprintf("expected error %s, got error %s: %s", c.Error, cr.ErrorCode, cr.Error)
	}
	return ""
}
