package repository

import (
	"context"
	"fmt"
	"testing"

	"venue-booking/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDB records the statements repositories issue; QueryRow answers through
// the configured row.
type fakeDB struct {
	lastSQL  string
	lastArgs []any
	row      fakeRow
}

type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.scanFn != nil {
		return r.scanFn(dest...)
	}
	return pgx.ErrNoRows
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.lastSQL, db.lastArgs = sql, args
	return nil, fmt.Errorf("no rows configured")
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.lastSQL, db.lastArgs = sql, args
	return db.row
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.lastSQL, db.lastArgs = sql, args
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (db *fakeDB) Ping(ctx context.Context) error            { return nil }
func (db *fakeDB) Close()                                    {}

func scanInt64(value int64) func(dest ...any) error {
	return func(dest ...any) error {
		if len(dest) != 1 {
			return fmt.Errorf("expected one destination, got %d", len(dest))
		}
		id, ok := dest[0].(*int64)
		if !ok {
			return fmt.Errorf("expected *int64 destination")
		}
		*id = value
		return nil
	}
}

func TestVenueCreate_AssignsNextSequentialID(t *testing.T) {
	// The id the statement computes for a table whose current max is 5.
	db := &fakeDB{row: fakeRow{scanFn: scanInt64(6)}}
	repo := NewVenueRepository(db, zap.NewNop())

	venue := &entity.Venue{Name: "Court F", Location: "Phuket"}
	require.NoError(t, repo.Create(context.Background(), venue))

	assert.Equal(t, int64(6), venue.VenueID)
	assert.Contains(t, db.lastSQL, "(SELECT COALESCE(MAX(venue_id), 0) + 1 FROM venues)")
	assert.Contains(t, db.lastSQL, "RETURNING venue_id")
	assert.Equal(t, []any{"Court F", "Phuket"}, db.lastArgs)
}

func TestVenueCreate_FirstRowGetsIDOne(t *testing.T) {
	db := &fakeDB{row: fakeRow{scanFn: scanInt64(1)}}
	repo := NewVenueRepository(db, zap.NewNop())

	venue := &entity.Venue{Name: "Court A", Location: "Bangkok"}
	require.NoError(t, repo.Create(context.Background(), venue))

	assert.Equal(t, int64(1), venue.VenueID)
}
