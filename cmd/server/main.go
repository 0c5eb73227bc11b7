package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MostafaRhazlani/EventFlow/internal/adapters/httpapi"
	"github.com/MostafaRhazlani/EventFlow/internal/application"
	"github.com/MostafaRhazlani/EventFlow/internal/config"
	"github.com/MostafaRhazlani/EventFlow/internal/infrastructure/database"
	"github.com/MostafaRhazlani/EventFlow/internal/infrastructure/i18n"
	"github.com/MostafaRhazlani/EventFlow/internal/infrastructure/token"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("database connected")

	version, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}
	logger.Info("migrations applied", zap.Uint("version", version))

	eventRepo := database.NewEventRepository(pool)
	userRepo := database.NewUserRepository(pool)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	eventSvc := application.NewEventService(eventRepo)
	bookingSvc := application.NewBookingService(eventRepo)
	authSvc := application.NewAuthService(userRepo, tokens)

	handler := httpapi.NewHandler(eventSvc, bookingSvc, authSvc, tokens, translator, logger, cfg.UploadDir)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
