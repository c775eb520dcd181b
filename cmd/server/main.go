package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/socially/backend/internal/router"
	"github.com/anonto42/socially/backend/internal/services"
	"github.com/anonto42/socially/backend/pkg/config"
	"github.com/anonto42/socially/backend/pkg/firebase"
	"github.com/anonto42/socially/backend/pkg/logger"
	"github.com/anonto42/socially/backend/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(db, log)

	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, log)
	if err != nil {
		log.Fatal("failed to initialize firebase", zap.Error(err))
	}

	var revalidator services.Revalidator = services.NopRevalidator{}
	if rdb := config.InitRedis(ctx, cfg, log); rdb != nil {
		defer rdb.Close()
		revalidator = services.NewRedisRevalidator(rdb, cfg.RevalidateChannel, log.Named("revalidate"))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e, log)
	router.SetupRoutes(e, router.Deps{
		DB:          db,
		Verifier:    firebaseApp.AuthClient,
		Revalidator: revalidator,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		Logger:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", cfg.Port))

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
