package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/robiyakhmed13-ux/hamyon-api/internal/audit"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/config"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/export"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/router"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/stats"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/transactions"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware())
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	auditLog := audit.NewLogger(pool)
	usersHandler := users.NewHandler(users.NewRepo(pool), auditLog)
	txnHandler := transactions.NewHandler(transactions.NewRepo(pool), auditLog)
	statsHandler := stats.NewHandler(stats.NewRepo(pool))
	exportHandler := export.NewHandler(export.NewRepo(pool))

	r := &router.Router{
		UsersHandler:        usersHandler,
		TransactionsHandler: txnHandler,
		StatsHandler:        statsHandler,
		ExportHandler:       exportHandler,
		AuthMW:              router.RequireAPIKey(cfg.APIKey),
		WriteLimitMW:        rateLimitWrites(),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func rateLimitWrites() fiber.Handler {
	max := 60
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_TX_MAX")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			max = parsed
		}
	}

	window := time.Minute
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_TX_WINDOW_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			window = time.Duration(parsed) * time.Second
		}
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
	})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
