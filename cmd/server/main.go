package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"career-match/internal/app"
	"career-match/internal/config"
	"career-match/internal/logger"
)

func main() {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	c, err := app.NewContainer(cfg, l)
	if err != nil {
		l.Fatal("failed to init container", zap.Error(err))
	}
	defer func() {
		if err := c.Close(); err != nil {
			l.Warn("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		l.Fatal("invalid HTTP port", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go c.Hub.Run(ctx)

	srv := app.New(c)

	errCh := make(chan error, 1)
	go func() {
		l.Info("http server starting", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
		errCh <- srv.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Error("server error", zap.Error(err))
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			l.Warn("shutdown error", zap.Error(err))
		}
		l.Info("http server stopped")
	}
}
