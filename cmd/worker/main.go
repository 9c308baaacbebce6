package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/skybooking/config"
	"github.com/Domenick1991/skybooking/internal/cache"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/logger"
	"github.com/Domenick1991/skybooking/internal/notify"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.New("info").Fatal("load config", "error", err)
	}
	log := logger.New(cfg.Log.Level).With("component", "worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Pending holds live in the app's memory in the demo setup; only a
	// shared database gives the worker something to expire.
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Warn("expiration sweep needs postgres storage", "driver", cfg.Storage.Driver)
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn("no kafka brokers configured, notifications are disabled")
	} else {
		p := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer p.Close()
		producer = p

		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
		defer consumer.Close()
		go consumeNotifications(ctx, consumer, notify.NewSender(log), log)
	}

	if cfg.Storage.Driver != config.StoragePostgres {
		<-ctx.Done()
		return
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	var locks booking.SeatLocker
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
		defer redisCache.Close()
		locks = redisCache
	}

	bookingService := booking.NewBookingService(
		repository.NewBookingRepository(pool),
		repository.NewFlightRepository(pool),
		locks,
		producer,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute,
		time.Duration(cfg.Booking.ConfirmationTTL)*time.Minute,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithLogger(log),
	)

	expireTicker := time.NewTicker(time.Duration(cfg.Worker.ExpirationSweepMinutes) * time.Minute)
	defer expireTicker.Stop()

	for {
		select {
		case <-expireTicker.C:
			expired, err := bookingService.ExpirePendingBookings(ctx)
			if err != nil {
				log.Error("expire bookings", "error", err)
				continue
			}
			if len(expired) > 0 {
				log.Info("expired bookings", "count", len(expired))
			}
		case <-ctx.Done():
			log.Info("shutting down")
			return
		}
	}
}

func consumeNotifications(ctx context.Context, consumer *kafka.Consumer, sender *notify.Sender, log logger.Logger) {
	err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeBookingEvent(msg)
		if err != nil {
			log.Warn("decode event", "error", err, "offset", msg.Offset)
			return nil
		}
		return sender.Send(ctx, event)
	})
	if err != nil && ctx.Err() == nil {
		log.Error("consumer stopped", "error", err)
	}
}
