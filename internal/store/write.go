package store

import (
	"context"
	"fmt"
)

// WriteParse inserts a parse record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are silently ignored.
// Other constraint violations (e.g., a record with both a tree and an error)
// still return errors.
func (s *Store) WriteParse(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parses
		(id, seq, grammar, input, sexpr, tree, tree_hash, error_code, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.Seq,
		rec.Grammar,
		rec.Input,
		rec.SExpr,
		rec.Tree,
		rec.TreeHash,
		rec.ErrorCode,
		rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("write parse: %w", err)
	}
	return nil
}
