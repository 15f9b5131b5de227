package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	FindAll(ctx context.Context) ([]*entity.Venue, error)
	FindByID(ctx context.Context, id int64) (*entity.Venue, error)
	Create(ctx context.Context, venue *entity.Venue) error
	Update(ctx context.Context, venue *entity.Venue) error
	Delete(ctx context.Context, id int64) error
}

type venueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) FindAll(ctx context.Context) ([]*entity.Venue, error) {
	query := `
		SELECT venue_id, name, location
		FROM venues
		ORDER BY venue_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list venues", zap.Error(err))
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var venues []*entity.Venue
	for rows.Next() {
		var venue entity.Venue
		if err := rows.Scan(&venue.VenueID, &venue.Name, &venue.Location); err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, &venue)
	}

	return venues, nil
}

func (r *venueRepository) FindByID(ctx context.Context, id int64) (*entity.Venue, error) {
	query := `
		SELECT venue_id, name, location
		FROM venues
		WHERE venue_id = $1
	`

	var venue entity.Venue
	err := r.db.QueryRow(ctx, query, id).Scan(&venue.VenueID, &venue.Name, &venue.Location)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.Int64("venue_id", id),
		)
		return nil, fmt.Errorf("find venue by ID %d: %w", id, err)
	}

	return &venue, nil
}

// Create assigns the next sequential venue_id inside the INSERT itself; the
// primary key rejects a concurrent duplicate instead of committing it.
func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (venue_id, name, location)
		VALUES ((SELECT COALESCE(MAX(venue_id), 0) + 1 FROM venues), $1, $2)
		RETURNING venue_id
	`

	err := r.db.QueryRow(ctx, query, venue.Name, venue.Location).Scan(&venue.VenueID)
	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", venue.Name),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, err)
	}

	return nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	query := `UPDATE venues SET name = $2, location = $3 WHERE venue_id = $1`

	result, err := r.db.Exec(ctx, query, venue.VenueID, venue.Name, venue.Location)
	if err != nil {
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.Int64("venue_id", venue.VenueID),
		)
		return fmt.Errorf("update venue %d: %w", venue.VenueID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue %d not found", venue.VenueID)
	}

	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM venues WHERE venue_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.Int64("venue_id", id),
		)
		return fmt.Errorf("delete venue %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue %d not found", id)
	}

	r.log.Info("Venue deleted", zap.Int64("venue_id", id))
	return nil
}
