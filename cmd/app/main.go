package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/skybooking/api"
	"github.com/Domenick1991/skybooking/config"
	"github.com/Domenick1991/skybooking/internal/auth"
	"github.com/Domenick1991/skybooking/internal/bootstrap"
	"github.com/Domenick1991/skybooking/internal/cache"
	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/logger"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/Domenick1991/skybooking/internal/service/dashboard"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var guard booking.CheckoutGuard = booking.NewLocalGuard()
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			zlog.Fatal("connect redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		guard = redisCache
	}

	bookingOpts := []booking.BookingServiceOption{
		booking.WithLockTTL(cfg.Booking.CheckoutLockTTL),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, zlog)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			zlog.Warn("kafka not reachable, events may be lost", zap.Error(err))
		}
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	sortMode := flights.SortLegacy
	if cfg.Search.PreciseSort {
		sortMode = flights.SortPrecise
	}

	flightRepo := repository.NewFlightRepository(catalog.DefaultFlights())
	bookingRepo := repository.NewBookingRepository()

	flightService := flights.NewFlightService(flightRepo, flights.WithSortMode(sortMode), flights.WithLogger(zlog))
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		guard,
		booking.SimulatedGateway{Delay: cfg.Booking.PaymentDelay},
		zlog,
		bookingOpts...,
	)
	dashboardService := dashboard.NewDashboardService(bookingRepo, flightRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(
		api.RouterConfig{CORSOrigins: cfg.HTTP.CORSOrigins, RatePerMinute: cfg.HTTP.RatePerMinute},
		auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		api.Handlers{
			Flights:   api.NewFlightHandler(flightService, zlog),
			Bookings:  api.NewBookingHandler(bookingService, zlog),
			Dashboard: api.NewDashboardHandler(dashboardService, zlog),
		},
		zlog,
	)

	if err := bootstrap.Run(ctx, cfg, router, zlog); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
