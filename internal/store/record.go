package store

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/roach88/pratt/internal/tree"
)

// Record is one parse attempt. Exactly one of Tree and ErrorMessage is set.
type Record struct {
	ID      string `json:"id"`
	Seq     int64  `json:"seq"`
	Grammar string `json:"grammar"`
	Input   string `json:"input"`

	// SExpr, Tree and TreeHash describe a successful parse. Tree is the
	// canonical JSON encoding.
	SExpr    string `json:"sexpr,omitempty"`
	Tree     string `json:"tree,omitempty"`
	TreeHash string `json:"tree_hash,omitempty"`

	// ErrorCode classifies a failure, see tree.ErrorCode.
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// OK reports whether the parse succeeded.
func (r Record) OK() bool { return r.ErrorMessage == "" }

// IDGenerator produces record IDs.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 record IDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Sequencer hands out seq values.
type Sequencer interface {
	Next() int64
}

// Clock is a monotonic logical clock.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations).
type Clock struct {
	seq atomic.Int64
}

// NewClockAt creates a clock whose first Next returns start+1.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Recorder appends parse outcomes to a Store.
type Recorder struct {
	store *Store
	ids   IDGenerator
	seq   Sequencer
}

// NewRecorder returns a Recorder that continues the store's sequence and
// names records with UUIDv7 IDs.
func NewRecorder(ctx context.Context, s *Store) (*Recorder, error) {
	last, err := s.MaxSeq(ctx)
	if err != nil {
		return nil, err
	}
	return NewRecorderWith(s, UUIDv7Generator{}, NewClockAt(last)), nil
}

// NewRecorderWith returns a Recorder with explicit ID and seq sources, for
// deterministic logs.
func NewRecorderWith(s *Store, ids IDGenerator, seq Sequencer) *Recorder {
	return &Recorder{store: s, ids: ids, seq: seq}
}

// Record writes the outcome of parsing input: n on success, parseErr
// otherwise.
func (r *Recorder) Record(ctx context.Context, grammar, input string, n *tree.Node, parseErr error) (Record, error) {
	rec := Record{
		ID:      r.ids.Generate(),
		Seq:     r.seq.Next(),
		Grammar: grammar,
		Input:   input,
	}

	switch {
	case parseErr != nil:
		rec.ErrorMessage = parseErr.Error()
		rec.ErrorCode = tree.ErrorCode(parseErr)
	case n != nil:
		data, err := n.MarshalCanonical()
		if err != nil {
			return Record{}, fmt.Errorf("record parse: %w", err)
		}
		hash, err := n.Hash()
		if err != nil {
			return Record{}, fmt.Errorf("record parse: %w", err)
		}
		rec.SExpr = n.String()
		rec.Tree = string(data)
		rec.TreeHash = hash
	default:
		return Record{}, fmt.Errorf("record parse: neither tree nor error given")
	}

	if err := r.store.WriteParse(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
