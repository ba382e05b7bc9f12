package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"salone/internal/config"
	"salone/internal/database"
	"salone/internal/middleware"
	"salone/internal/modules/availability"
	"salone/internal/modules/booking"
	"salone/internal/modules/catalog"
	"salone/internal/pkg/logger"
	"salone/internal/ratelimit"
	"salone/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.AppEnv); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("migration failed", zap.Error(err))
	}

	store := repository.NewStore(db)

	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiter = ratelimit.NewRedisLimiter(rdb)
		logger.Log.Info("using redis rate limiter", zap.String("addr", cfg.RedisAddr))
	} else {
		limiter = ratelimit.NewMemoryLimiter()
	}

	catalogService := catalog.NewService(store.Services, store.Staff)
	catalogHandler := catalog.NewHandler(catalogService)

	availabilityService := availability.NewService(
		store.Settings, store.Schedule, catalogService, store.Bookings, store.Closures,
	)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(store)
	bookingHandler := booking.NewHandler(bookingService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)

		v1.GET("/availability",
			middleware.RateLimit(limiter, "availability", 60, time.Minute),
			availabilityHandler.GetAvailability,
		)

		v1.POST("/bookings",
			middleware.RateLimit(limiter, "booking:create", 30, time.Minute),
			bookingHandler.Create,
		)
		v1.GET("/bookings/:id",
			middleware.RateLimit(limiter, "booking:get", 60, time.Minute),
			bookingHandler.GetDetail,
		)
		v1.POST("/bookings/:id/cancel",
			middleware.RateLimit(limiter, "booking:cancel", 20, time.Minute),
			bookingHandler.Cancel,
		)
		v1.POST("/bookings/:id/reschedule",
			middleware.RateLimit(limiter, "booking:reschedule", 20, time.Minute),
			bookingHandler.Reschedule,
		)
	}

	logger.Log.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
