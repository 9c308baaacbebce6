package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/skybooking/api"
	"github.com/Domenick1991/skybooking/config"
	"github.com/Domenick1991/skybooking/internal/bootstrap"
	"github.com/Domenick1991/skybooking/internal/cache"
	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/logger"
	"github.com/Domenick1991/skybooking/internal/metrics"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/service/admin"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	bootLog := logger.New("info")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		bootLog.Fatal("load config", "error", err)
	}
	log := logger.New(cfg.Log.Level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flightRepo, bookingRepo, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	cacheTTL := time.Duration(cfg.Booking.FlightsCacheTTL) * time.Second
	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache = cache.NewRedisCache(cfg.Redis, cacheTTL)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, running without cache and seat locks", "addr", cfg.Redis.Addr, "error", err)
			redisCache = nil
		}
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers, log.With("component", "kafka"))
		defer p.Close()
		producer = p
	}

	m := metrics.New("skybooking")

	var (
		flightCache flights.FlightCache
		invalidator admin.CacheInvalidator
		locks       booking.SeatLocker
	)
	if redisCache != nil {
		flightCache, invalidator, locks = redisCache, redisCache, redisCache
	}

	flightService := flights.NewFlightService(flightRepo, flightCache, cacheTTL,
		flights.WithLogger(log.With("service", "flights")),
		flights.WithMetrics(m),
	)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		locks,
		producer,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute,
		time.Duration(cfg.Booking.ConfirmationTTL)*time.Minute,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithLogger(log.With("service", "booking")),
		booking.WithMetrics(m),
	)
	adminService := admin.NewAdminService(flightRepo, invalidator,
		admin.WithLogger(log.With("service", "admin")),
		admin.WithMetrics(m),
	)

	// with in-memory storage nobody else can see the holds to expire them
	if cfg.Storage.Driver == config.StorageMemory {
		go sweepExpired(ctx, bookingService, time.Duration(cfg.Worker.ExpirationSweepMinutes)*time.Minute, log)
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.RouterConfig{
		Flights:    flightService,
		Bookings:   bookingService,
		Admin:      adminService,
		Log:        log,
		Metrics:    m,
		SwaggerDir: cfg.HTTP.SwaggerDir,
	})

	if err := bootstrap.Run(ctx, cfg, router, flightService, bookingService, log); err != nil {
		log.Fatal("server error", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.FlightRepository, repository.BookingRepository, func()) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Info("using in-memory catalog", "flights", len(catalog.Flights()))
		return repository.NewMemoryFlightRepository(catalog.Flights()), repository.NewMemoryBookingRepository(), func() {}
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("connect postgres", "error", err)
	}
	flightRepo := repository.NewFlightRepository(pool)
	if cfg.Storage.Seed {
		n, err := repository.SeedFlights(ctx, flightRepo, catalog.Flights())
		if err != nil {
			log.Fatal("seed flights", "error", err)
		}
		if n > 0 {
			log.Info("seeded flight catalog", "flights", n)
		}
	}
	return flightRepo, repository.NewBookingRepository(pool), pool.Close
}

func sweepExpired(ctx context.Context, svc booking.BookingUseCase, every time.Duration, log logger.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			expired, err := svc.ExpirePendingBookings(ctx)
			if err != nil {
				log.Error("expire bookings", "error", err)
				continue
			}
			if len(expired) > 0 {
				log.Info("expired bookings", "count", len(expired))
			}
		case <-ctx.Done():
			return
		}
	}
}
