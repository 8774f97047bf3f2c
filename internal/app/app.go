package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/seat-reservation-engine/api"
	"github.com/metinatakli/seat-reservation-engine/internal/booking"
	"github.com/metinatakli/seat-reservation-engine/internal/broker"
	"github.com/metinatakli/seat-reservation-engine/internal/domain"
	"github.com/metinatakli/seat-reservation-engine/internal/lock"
	"github.com/metinatakli/seat-reservation-engine/internal/repository"
	appvalidator "github.com/metinatakli/seat-reservation-engine/internal/validator"
	"github.com/metinatakli/seat-reservation-engine/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "seat-reservation-engine"

var (
	version = vcs.Version()
)

var _ api.ServerInterface = (*Application)(nil)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	bookings  booking.Service
}

type Config struct {
	Port             int
	Env              string
	Store            string
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	Lock             LockConfig
	JWT              JWTConfig
	AMQP             AMQPConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type LockConfig struct {
	Backend     string
	WaitTimeout time.Duration
	LeaseTTL    time.Duration
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type AMQPConfig struct {
	URL string
}

func Run() error {
	// a missing .env file is fine, flags and the environment still apply
	_ = godotenv.Load()

	var cfg Config
	var env envLoader

	flag.IntVar(&cfg.Port, "port", env.Int("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", env.String("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.Store, "store", env.String("STORE", "postgres"), "Record store (postgres|memory)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", env.String("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector endpoint")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", env.String("DB_DSN", ""), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", env.Int("DB_MAX_OPEN_CONNS", 25), "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", env.Duration("DB_MAX_IDLE_TIME", 15*time.Minute), "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", env.String("REDIS_URL", ""), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", env.Int("REDIS_MAX_OPEN_CONNS", 25), "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", env.Int("REDIS_MAX_IDLE_CONNS", 10), "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", env.Duration("REDIS_MAX_IDLE_TIME", 2*time.Minute), "Redis max idle time for connections")

	flag.StringVar(&cfg.Lock.Backend, "lock-backend", env.String("LOCK_BACKEND", "redis"), "Showtime lock backend (redis|local)")
	flag.DurationVar(&cfg.Lock.WaitTimeout, "lock-wait-timeout", env.Duration("LOCK_WAIT_TIMEOUT", lock.DefaultWaitTimeout), "Max time to wait for a showtime lock")
	flag.DurationVar(&cfg.Lock.LeaseTTL, "lock-lease-ttl", env.Duration("LOCK_LEASE_TTL", lock.DefaultLeaseTTL), "Lifetime of a Redis showtime lock lease")

	flag.StringVar(&cfg.JWT.Secret, "jwt-secret", env.String("JWT_SECRET", ""), "HMAC secret of identity tokens")
	flag.StringVar(&cfg.JWT.Issuer, "jwt-issuer", env.String("JWT_ISSUER", ""), "Expected issuer of identity tokens")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", env.String("AMQP_URL", ""), "RabbitMQ URL, events are dropped when empty")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if err := env.Err(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret must be set")
	}

	app := &Application{
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(os.Stdout, nil)),
		validator: appvalidator.NewValidator(),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(
			slog.NewTextHandler(os.Stdout, nil),
			otelslog.NewHandler(serviceName),
		))
	}

	deps := booking.Dependencies{Logger: app.logger}

	switch cfg.Store {
	case "postgres":
		db, err := NewDatabasePool(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		app.db = db
		inventoryRepo := repository.NewPostgresInventoryRepository(db)
		deps.Bookings = repository.NewPostgresBookingRepository(db)
		deps.Inventory = inventoryRepo
		deps.Snapshots = inventoryRepo
		deps.Catalog = repository.NewPostgresShowtimeCatalog(db)
	case "memory":
		app.logger.Warn("using in-memory store, bookings are lost on restart")

		store := repository.NewMemoryStore()
		deps.Bookings = store
		deps.Inventory = store
		deps.Snapshots = store
		deps.Catalog = newDemoCatalog()
	default:
		return fmt.Errorf("unknown store %q", cfg.Store)
	}

	switch cfg.Lock.Backend {
	case "redis":
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		app.redis = redisClient
		deps.Locker = lock.NewRedisLocker(redisClient, app.logger,
			lock.WithWaitTimeout(cfg.Lock.WaitTimeout),
			lock.WithLeaseTTL(cfg.Lock.LeaseTTL))
	case "local":
		deps.Locker = lock.NewKeyedLocker(cfg.Lock.WaitTimeout)
	default:
		return fmt.Errorf("unknown lock backend %q", cfg.Lock.Backend)
	}

	if cfg.AMQP.URL != "" {
		publisher, err := broker.NewRabbitPublisher(cfg.AMQP.URL, app.logger)
		if err != nil {
			return err
		}
		defer publisher.Close()

		deps.Publisher = publisher
	} else {
		deps.Publisher = broker.NewNoopPublisher(app.logger)
	}

	engine, err := booking.NewEngine(deps)
	if err != nil {
		return err
	}
	app.bookings = engine

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redis redis.UniversalClient,
	validator *validator.Validate,
	bookings booking.Service) *Application {

	return &Application{
		config:    cfg,
		logger:    logger,
		db:        db,
		redis:     redis,
		validator: validator,
		bookings:  bookings,
	}
}

// newDemoCatalog backs the in-memory store with a single ten by ten theatre.
func newDemoCatalog() *repository.MemoryCatalog {
	catalog := repository.NewMemoryCatalog()

	catalog.AddTheatre(domain.TheatreLayout{
		TheatreID:   "demo-theatre",
		Name:        "Demo Theatre",
		Location:    "Hall 1",
		Rows:        10,
		SeatsPerRow: 10,
	})
	catalog.AddShowtime(domain.Showtime{
		ID:            "demo-showtime",
		MovieID:       "demo-movie",
		TheatreID:     "demo-theatre",
		ShowDate:      time.Now().Add(24 * time.Hour).Truncate(time.Hour),
		TotalCapacity: 100,
	})

	return catalog
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb)); err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(app.logRequest)
	r.Use(app.recoverPanic)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.authorizeOperation},
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
