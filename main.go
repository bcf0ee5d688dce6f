package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"gameshub/config"
	"gameshub/di"
	"gameshub/driver/hub_db"
	"gameshub/rest"
	"gameshub/utils/logger"
	"gameshub/utils/otel"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger and tracing
	log := logger.InitLogger(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OTelEnabled: cfg.OTel.Enabled,
		ServiceName: cfg.OTel.ServiceName,
	})
	log.Info("starting games hub", "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := otel.InitProvider(ctx, cfg.OTel)
	if err != nil {
		return fmt.Errorf("init otel: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownOTel(flushCtx); err != nil {
			log.Warn("failed to flush telemetry", "error", err)
		}
	}()

	// 3. Database
	pool, err := hub_db.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := hub_db.RunMigrations(ctx, cfg.Database.URL); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	// 4. Components
	container, err := di.NewApplicationComponents(ctx, cfg, pool)
	if err != nil {
		return fmt.Errorf("wire components: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn("failed to close service stacks", "error", err)
		}
	}()

	// 5. Background work
	if cfg.Scheduler.Enabled {
		if err := container.FeedScheduler.Start(ctx); err != nil {
			return fmt.Errorf("start feed scheduler: %w", err)
		}
		defer container.FeedScheduler.Stop()
	}
	if cfg.Worker.Enabled {
		container.GameWorker.Start(ctx)
		defer container.GameWorker.Stop()
	}
	container.Maintenance.Start(ctx)
	defer container.Maintenance.Wait()

	// 6. HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("listening", "addr", addr, "genai_provider", container.GenAIProvider)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// 7. Graceful shutdown
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	log.Info("server stopped")
	return nil
}
