// Package main запускает HTTP-сервер витрины Alimentos Vizcaya.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/vizcaya-system/internal/catalog"
	"github.com/mmeshcher/vizcaya-system/internal/config"
	"github.com/mmeshcher/vizcaya-system/internal/handler"
	"github.com/mmeshcher/vizcaya-system/internal/middleware"
	"github.com/mmeshcher/vizcaya-system/internal/repository"
	"github.com/mmeshcher/vizcaya-system/internal/service"
	"github.com/mmeshcher/vizcaya-system/internal/store"
	"github.com/mmeshcher/vizcaya-system/internal/whatsapp"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	// .env используется только при локальной разработке
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	var cat service.Catalog = catalog.NewStatic()
	if cfg.DatabaseURI != "" {
		repo, err := repository.NewPostgresCatalog(cfg.DatabaseURI)
		if err != nil {
			sugar.Fatalw("database initialization error", "error", err.Error())
		}
		defer repo.Close()
		cat = repo
	}

	var cartStore store.Store = store.NewMemory()
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisStore, err := store.NewRedis(ctx, cfg.RedisURL, cfg.CartTTL)
		cancel()
		if err != nil {
			sugar.Fatalw("redis initialization error", "error", err.Error())
		}
		defer redisStore.Close()
		cartStore = redisStore
	}

	link := whatsapp.NewLink("", cfg.WhatsAppPhone)
	svc := service.NewService(cat, cartStore, link, cfg.Rate)

	sessionMiddleware := middleware.NewSessionMiddleware(cfg.SessionSecret)
	h := handler.NewHandler(svc, logger, sessionMiddleware)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting vizcaya server",
			"addr", cfg.RunAddress,
			"rate", cfg.Rate.String(),
			"whatsapp", cfg.WhatsAppPhone,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
