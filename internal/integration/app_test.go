package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-reservation-engine/internal/app"
	"github.com/metinatakli/seat-reservation-engine/internal/booking"
	"github.com/metinatakli/seat-reservation-engine/internal/lock"
	"github.com/metinatakli/seat-reservation-engine/internal/mocks"
	"github.com/metinatakli/seat-reservation-engine/internal/repository"
	appvalidator "github.com/metinatakli/seat-reservation-engine/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App       *app.Application
	Engine    *booking.Engine
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Publisher *mocks.MockEventPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	inventoryRepo := repository.NewPostgresInventoryRepository(db)
	publisher := &mocks.MockEventPublisher{}

	engine, err := booking.NewEngine(booking.Dependencies{
		Bookings:  repository.NewPostgresBookingRepository(db),
		Inventory: inventoryRepo,
		Snapshots: inventoryRepo,
		Catalog:   repository.NewPostgresShowtimeCatalog(db),
		Locker: lock.NewRedisLocker(redisClient, logger,
			lock.WithWaitTimeout(cfg.Lock.WaitTimeout),
			lock.WithLeaseTTL(cfg.Lock.LeaseTTL)),
		Publisher: publisher,
		Logger:    logger,
	})
	if err != nil {
		redisClient.Close()
		db.Close()
		return nil, err
	}

	application := app.NewApp(cfg, logger, db, redisClient, validator, engine)

	return &TestApp{
		App:       application,
		Engine:    engine,
		DB:        db,
		Redis:     redisClient,
		Publisher: publisher,
	}, nil
}

func (a *TestApp) Close() {
	a.Redis.Close()
	a.DB.Close()
}
