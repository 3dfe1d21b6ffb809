package main

import (
	_ "ai-tutor/cmd/api/docs"
	"ai-tutor/internal/adapter"
	"ai-tutor/internal/config"
	"ai-tutor/internal/dataset"
	"ai-tutor/internal/domain"
	"ai-tutor/internal/handler"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/middleware"
	"ai-tutor/internal/service"
	"ai-tutor/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// newApp wires services, handlers and middleware over holder. redisStorage may be nil.
func newApp(cfg *config.Config, holder *store.Holder, redisStorage *adapter.RedisStorage) *fiber.App {
	aggregator := domain.NewMasteryAggregator(dataset.Policy(cfg))
	analyticsService := service.NewAnalyticsService(holder, aggregator, cfg)
	authService := service.NewAuthService(holder, cfg)

	var healthPinger handler.Pinger
	if redisStorage != nil {
		healthPinger = redisStorage
	}
	handlers := handler.Handlers{
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Auth:      handler.NewAuthHandler(authService),
		Health:    handler.NewHealthHandler(analyticsService, healthPinger),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	var apiMiddleware []fiber.Handler
	if cfg.RateLimit.Enabled {
		apiMiddleware = append(apiMiddleware, newRateLimiter(cfg.RateLimit, redisStorage))
	}
	handler.SetupRoutes(app, handlers, apiMiddleware...)

	return app
}

func newRateLimiter(cfg config.RateLimitConfig, storage *adapter.RedisStorage) fiber.Handler {
	limiterCfg := limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Expiration,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(middleware.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "Too many requests",
				Status:  fiber.StatusTooManyRequests,
			})
		},
	}
	if storage != nil {
		limiterCfg.Storage = storage
	}
	logger.Get().Info("Rate limiting enabled",
		zap.Int("max", cfg.Max),
		zap.Duration("expiration", cfg.Expiration),
		zap.Bool("redis_storage", storage != nil),
	)
	return limiter.New(limiterCfg)
}
