package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

type PostgresInventoryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresInventoryRepository(db *pgxpool.Pool) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{
		db: db,
	}
}

func (p *PostgresInventoryRepository) CreateInventory(ctx context.Context, inventory *domain.Inventory) error {
	query := `
		INSERT INTO showtime_inventory (showtime_id, theatre_id, total_capacity, available_count)
		VALUES ($1, $2, $3, $4)
		RETURNING version, updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		inventory.ShowtimeID,
		inventory.TheatreID,
		inventory.TotalCapacity,
		inventory.AvailableCount).Scan(&inventory.Version, &inventory.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInventoryExists
		}

		return err
	}

	return nil
}

func (p *PostgresInventoryRepository) GetInventory(ctx context.Context, showtimeID string) (*domain.Inventory, error) {
	inventory, err := getInventory(ctx, p.db, showtimeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return inventory, nil
}

func (p *PostgresInventoryRepository) UpdateInventory(ctx context.Context, inventory *domain.Inventory) error {
	query := `
		UPDATE showtime_inventory
		SET available_count = $1, version = version + 1, updated_at = NOW()
		WHERE showtime_id = $2 AND version = $3
		RETURNING version, updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		inventory.AvailableCount,
		inventory.ShowtimeID,
		inventory.Version).Scan(&inventory.Version, &inventory.UpdatedAt)

	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.ErrEditConflict
		case isPgError(err, pgerrcode.CheckViolation):
			return fmt.Errorf("%w: %w", domain.ErrInvalidAdjustment, err)
		default:
			return err
		}
	}

	return nil
}

// Snapshot reads the inventory and the committed seats inside one
// repeatable-read transaction so both reflect the same commit.
func (p *PostgresInventoryRepository) Snapshot(ctx context.Context, showtimeID string) (*domain.ShowtimeSnapshot, error) {
	snapshot := &domain.ShowtimeSnapshot{}

	txOptions := pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}

	err := runInTx(ctx, p.db, txOptions, func(tx pgx.Tx) error {
		inventory, err := getInventory(ctx, tx, showtimeID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		snapshot.Inventory = inventory

		seats, err := listCommittedSeats(ctx, tx, showtimeID)
		if err != nil {
			return err
		}
		snapshot.CommittedSeats = seats

		return nil
	})

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getInventory(ctx context.Context, q querier, showtimeID string) (*domain.Inventory, error) {
	query := `
		SELECT showtime_id, theatre_id, total_capacity, available_count, version, updated_at
		FROM showtime_inventory
		WHERE showtime_id = $1
	`

	var inventory domain.Inventory

	err := q.QueryRow(ctx, query, showtimeID).Scan(
		&inventory.ShowtimeID,
		&inventory.TheatreID,
		&inventory.TotalCapacity,
		&inventory.AvailableCount,
		&inventory.Version,
		&inventory.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &inventory, nil
}
