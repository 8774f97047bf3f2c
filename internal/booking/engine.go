package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-reservation-engine/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	MaxSeatsPerBooking = 8

	instrumentationName = "github.com/metinatakli/seat-reservation-engine/internal/booking"
)

// Service is the booking surface the HTTP layer depends on.
type Service interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error)
	GetSeatMap(ctx context.Context, showtimeID string) (*domain.SeatMap, error)
	OpenShowtime(ctx context.Context, showtimeID string) (*domain.Inventory, error)
}

type CreateBookingParams struct {
	ShowtimeID  string
	UserID      string
	Seats       []domain.Seat
	TotalAmount decimal.Decimal
}

type Dependencies struct {
	Bookings  domain.BookingRepository
	Inventory domain.InventoryRepository
	Snapshots domain.SnapshotReader
	Catalog   domain.ShowtimeCatalog
	Locker    domain.ShowtimeLocker
	Publisher domain.EventPublisher
	Logger    *slog.Logger
}

// Engine coordinates bookings so that no seat is sold twice and each
// showtime's inventory matches its confirmed bookings. Every mutation of a
// showtime runs under that showtime's lock.
type Engine struct {
	bookings  domain.BookingRepository
	inventory domain.InventoryRepository
	snapshots domain.SnapshotReader
	catalog   domain.ShowtimeCatalog
	locker    domain.ShowtimeLocker
	publisher domain.EventPublisher
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *metrics

	now   func() time.Time
	newID func() string
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

func NewEngine(deps Dependencies, opts ...Option) (*Engine, error) {
	m, err := newMetrics(otel.GetMeterProvider().Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	e := &Engine{
		bookings:  deps.Bookings,
		inventory: deps.Inventory,
		snapshots: deps.Snapshots,
		catalog:   deps.Catalog,
		locker:    deps.Locker,
		publisher: deps.Publisher,
		logger:    deps.Logger,
		tracer:    otel.GetTracerProvider().Tracer(instrumentationName),
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// lockShowtime acquires the showtime lock and records how long it waited.
func (e *Engine) lockShowtime(ctx context.Context, showtimeID string) (func(), error) {
	start := time.Now()

	unlock, err := e.locker.Lock(ctx, showtimeID)
	e.metrics.recordLockWait(ctx, time.Since(start))

	return unlock, err
}

func (e *Engine) publish(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking) {
	if e.publisher == nil {
		return
	}

	event := domain.NewBookingEvent(eventType, booking, e.now())

	if err := e.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		e.logger.Warn("failed to publish booking event",
			"type", eventType,
			"booking_id", booking.ID,
			"error", err)
	}
}
