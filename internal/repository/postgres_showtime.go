package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

// PostgresShowtimeCatalog reads the catalog tables. This service never writes
// them.
type PostgresShowtimeCatalog struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeCatalog(db *pgxpool.Pool) *PostgresShowtimeCatalog {
	return &PostgresShowtimeCatalog{
		db: db,
	}
}

func (p *PostgresShowtimeCatalog) GetShowtime(ctx context.Context, id string) (*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theatre_id, show_date, price, total_capacity
		FROM showtimes
		WHERE id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.TheatreID,
		&showtime.ShowDate,
		&showtime.Price,
		&showtime.TotalCapacity,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeCatalog) GetTheatreLayout(ctx context.Context, theatreID string) (*domain.TheatreLayout, error) {
	query := `
		SELECT id, name, location, seat_rows, seats_per_row
		FROM theatres
		WHERE id = $1
	`

	var layout domain.TheatreLayout

	err := p.db.QueryRow(ctx, query, theatreID).Scan(
		&layout.TheatreID,
		&layout.Name,
		&layout.Location,
		&layout.Rows,
		&layout.SeatsPerRow,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &layout, nil
}
