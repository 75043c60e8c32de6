package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteParse_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	want := okRecord("rec-1", 1)
	require.NoError(t, s.WriteParse(ctx, want))

	got, err := s.ReadParse(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.OK())

	failed := errRecord("rec-2", 2)
	require.NoError(t, s.WriteParse(ctx, failed))
	got, err = s.ReadParse(ctx, "rec-2")
	require.NoError(t, err)
	assert.Equal(t, failed, got)
	assert.False(t, got.OK())
}

func TestWriteParse_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteParse(ctx, okRecord("rec-1", 1)))

	dup := okRecord("rec-1", 99)
	dup.Input = "changed"
	require.NoError(t, s.WriteParse(ctx, dup))

	got, err := s.ReadParse(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "a + b", got.Input, "first write wins")
	assert.Equal(t, int64(1), got.Seq)
}

func TestWriteParse_RejectsTreeAndError(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	both := okRecord("rec-1", 1)
	both.ErrorMessage = "boom"
	assert.Error(t, s.WriteParse(ctx, both))

	neither := okRecord("rec-2", 2)
	neither.Tree = ""
	assert.Error(t, s.WriteParse(ctx, neither))
}

func TestReadParse_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadParse(context.Background(), "missing")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListParses_Ordering(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Written out of order; seq ties broken by id.
	for _, rec := range []Record{
		okRecord("c", 2),
		errRecord("b", 1),
		okRecord("a", 2),
		okRecord("d", 3),
	} {
		require.NoError(t, s.WriteParse(ctx, rec))
	}

	all, err := s.ListParses(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(all))

	last, err := s.ListParses(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, ids(last))
}

func TestListParses_Empty(t *testing.T) {
	s := createTestStore(t)

	records, err := s.ListParses(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestFindByHash(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := okRecord("a", 1)
	second := okRecord("b", 2)
	second.TreeHash = first.TreeHash
	for _, rec := range []Record{second, first, okRecord("c", 3), errRecord("d", 4)} {
		require.NoError(t, s.WriteParse(ctx, rec))
	}

	found, err := s.FindByHash(ctx, first.TreeHash)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(found))
}

func TestSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	last, err := s.MaxSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), last)

	require.NoError(t, s.WriteParse(ctx, okRecord("a", 7)))
	last, err = s.MaxSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), last)
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
