package store

import (
	"context"
	"database/sql"
	"fmt"
)

const selectParse = `
	SELECT id, seq, grammar, input, sexpr, tree, tree_hash, error_code, error_message
	FROM parses
`

// ReadParse retrieves a single record by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadParse(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, selectParse+`WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ListParses returns records in log order: ORDER BY seq ASC, id ASC COLLATE BINARY.
// limit <= 0 returns every record; otherwise only the last limit records,
// still in ascending order.
//
// Returns an empty slice (not nil) if the log is empty.
func (s *Store) ListParses(ctx context.Context, limit int) ([]Record, error) {
	query := selectParse + `ORDER BY seq ASC, id COLLATE BINARY ASC`
	args := []any{}
	if limit > 0 {
		query = `SELECT * FROM (` + selectParse + `ORDER BY seq DESC, id COLLATE BINARY DESC LIMIT ?)
			ORDER BY seq ASC, id COLLATE BINARY ASC`
		args = append(args, limit)
	}
	return s.queryRecords(ctx, query, args...)
}

// FindByHash returns the successful parses whose tree hashes to hash,
// in log order.
func (s *Store) FindByHash(ctx context.Context, hash string) ([]Record, error) {
	return s.queryRecords(ctx, selectParse+`
		WHERE tree_hash = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, hash)
}

// MaxSeq returns the highest seq in the log, or 0 when it is empty.
func (s *Store) MaxSeq(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM parses`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("query max seq: %w", err)
	}
	return seq.Int64, nil
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query parses: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parses: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.Seq,
		&rec.Grammar,
		&rec.Input,
		&rec.SExpr,
		&rec.Tree,
		&rec.TreeHash,
		&rec.ErrorCode,
		&rec.ErrorMessage,
	)
	if err == sql.ErrNoRows {
		return Record{}, err
	}
	if err != nil {
		return Record{}, fmt.Errorf("scan parse: %w", err)
	}
	return rec, nil
}
