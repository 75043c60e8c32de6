package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// okRecord creates a successful parse record with placeholder tree fields.
func okRecord(id string, seq int64) Record {
	return Record{
		ID:       id,
		Seq:      seq,
		Grammar:  "arith",
		Input:    "a + b",
		SExpr:    "(+ a b)",
		Tree:     `{"args":[{"atom":"a"},{"atom":"b"}],"op":"+"}`,
		TreeHash: "hash-" + id,
	}
}

// errRecord creates a failed parse record.
func errRecord(id string, seq int64) Record {
	return Record{
		ID:           id,
		Seq:          seq,
		Grammar:      "arith",
		Input:        "a +",
		ErrorCode:    "EMPTY_INPUT",
		ErrorMessage: "EMPTY_INPUT: expected an expression, found end of input (pos=2)",
	}
}
