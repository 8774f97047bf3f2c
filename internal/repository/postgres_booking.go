package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	err := runInTx(ctx, p.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (id, user_id, showtime_id, total_amount, status, created_at, cancelled_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		_, err := tx.Exec(
			ctx,
			query,
			booking.ID,
			booking.UserID,
			booking.ShowtimeID,
			booking.TotalAmount,
			booking.Status,
			booking.CreatedAt,
			booking.CancelledAt)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(booking.Seats))
		for i, seat := range booking.Seats {
			rows = append(rows, []any{
				booking.ID,
				i,
				booking.ShowtimeID,
				seat.Row,
				seat.Number,
				string(booking.Status),
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "position", "showtime_id", "seat_row", "seat_number", "status"},
			pgx.CopyFromRows(rows),
		)

		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", domain.ErrSeatConflict, err)
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) DeleteBooking(ctx context.Context, id string) error {
	if !isBookingID(id) {
		return domain.ErrRecordNotFound
	}

	result, err := p.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresBookingRepository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	if !isBookingID(id) {
		return nil, domain.ErrRecordNotFound
	}

	query := `
		SELECT id::text, user_id, showtime_id, total_amount, status, created_at, cancelled_at
		FROM bookings
		WHERE id = $1
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}

	bookings, err := p.collectBookings(ctx, rows)
	if err != nil {
		return nil, err
	}

	if len(bookings) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return &bookings[0], nil
}

func (p *PostgresBookingRepository) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	query := `
		SELECT id::text, user_id, showtime_id, total_amount, status, created_at, cancelled_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	return p.collectBookings(ctx, rows)
}

func (p *PostgresBookingRepository) ListCommittedSeats(ctx context.Context, showtimeID string) ([]domain.Seat, error) {
	return listCommittedSeats(ctx, p.db, showtimeID)
}

func (p *PostgresBookingRepository) UpdateBookingStatus(
	ctx context.Context,
	booking *domain.Booking,
	from domain.BookingStatus) error {

	err := runInTx(ctx, p.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query := `
			UPDATE bookings
			SET status = $1, cancelled_at = $2
			WHERE id = $3 AND status = $4
		`

		result, err := tx.Exec(ctx, query, booking.Status, booking.CancelledAt, booking.ID, from)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return domain.ErrEditConflict
		}

		_, err = tx.Exec(ctx, `UPDATE booking_seats SET status = $1 WHERE booking_id = $2`, booking.Status, booking.ID)

		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", domain.ErrSeatConflict, err)
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) collectBookings(ctx context.Context, rows pgx.Rows) ([]domain.Booking, error) {
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	index := make(map[string]int)

	for rows.Next() {
		var (
			booking     domain.Booking
			cancelledAt *time.Time
		)

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ShowtimeID,
			&booking.TotalAmount,
			&booking.Status,
			&booking.CreatedAt,
			&cancelledAt,
		)

		if err != nil {
			return nil, err
		}

		booking.CancelledAt = cancelledAt
		index[booking.ID] = len(bookings)
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(bookings) == 0 {
		return bookings, nil
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	seatRows, err := p.db.Query(ctx, `
		SELECT booking_id::text, seat_row, seat_number
		FROM booking_seats
		WHERE booking_id = ANY($1::uuid[])
		ORDER BY booking_id, position
	`, ids)

	if err != nil {
		return nil, err
	}
	defer seatRows.Close()

	for seatRows.Next() {
		var (
			bookingID string
			seat      domain.Seat
		)

		if err := seatRows.Scan(&bookingID, &seat.Row, &seat.Number); err != nil {
			return nil, err
		}

		seat.Status = domain.SeatStatusBooked

		i, ok := index[bookingID]
		if !ok {
			return nil, errors.New("booking seat references unknown booking " + bookingID)
		}
		bookings[i].Seats = append(bookings[i].Seats, seat)
	}

	if err := seatRows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func listCommittedSeats(ctx context.Context, q querier, showtimeID string) ([]domain.Seat, error) {
	query := `
		SELECT seat_row, seat_number
		FROM booking_seats
		WHERE showtime_id = $1 AND status = 'confirmed'
	`

	rows, err := q.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		seat := domain.Seat{Status: domain.SeatStatusBooked}

		if err := rows.Scan(&seat.Row, &seat.Number); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

// isBookingID reports whether id can be stored in the uuid key column. Any
// other id cannot match a row.
func isBookingID(id string) bool {
	return uuid.Validate(id) == nil
}
