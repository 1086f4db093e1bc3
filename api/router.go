package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"srtf-simulator/config"
	"srtf-simulator/internal/session"
)

// NewApp wires the scheduler routes under /api/v1.
func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger(logger))

	handler := NewSchedulerHandlerImpl(cfg, session.NewStore(session.Limits{
		MaxProcesses: cfg.MaxProcesses,
		MaxTime:      cfg.MaxTime,
	}, logger), logger)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)

		sessions := v1.Group("/sessions")
		sessions.Post("/", handler.CreateSession)
		sessions.Get("/:id", handler.GetSession)
		sessions.Delete("/:id", handler.DeleteSession)
		sessions.Post("/:id/processes", handler.AddProcess)
		sessions.Delete("/:id/processes/:index", handler.RemoveProcess)
		sessions.Post("/:id/run", handler.RunSession)
		sessions.Post("/:id/reset", handler.ResetSession)
	}
	return app
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		// the error handler has not written the status yet
		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start))
		return err
	}
}

// Serve listens on the configured port until ctx is cancelled, then shuts
// the server down.
func Serve(ctx context.Context, cfg *config.SchedulerConfig, logger *slog.Logger) error {
	app := NewApp(cfg, logger)
	addr := fmt.Sprintf(":%d", cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()
	logger.Info("server started", "addr", addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}
