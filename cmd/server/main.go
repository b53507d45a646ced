package main

import (
	"context"
	"errors"

	"moneymitra/internal/adapter/api"
	"moneymitra/internal/adapter/client"
	"moneymitra/internal/config"
	"moneymitra/internal/domain/entity"
	"moneymitra/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Capability check: a provider that cannot be built leaves the coach
	// unavailable instead of stopping the server.
	provider, err := client.NewProvider(context.Background(), cfg)
	switch {
	case errors.Is(err, entity.ErrProviderUnavailable):
		logger.WithError(err).Warn("completion provider unavailable, AI endpoints will degrade")
	case err != nil:
		logger.Fatalf("Failed to init completion provider: %v", err)
	default:
		logger.WithField("model", provider.Label()).Info("completion provider ready")
	}

	coach := usecase.NewCoach(provider, logger)
	handler := api.NewCoachHandler(coach, logger, cfg.AppVersion, cfg.APIPrefix)

	app := api.NewApp(logger)
	api.SetupRouter(app, handler, api.RouterConfig{
		Prefix:       cfg.APIPrefix,
		AllowOrigins: cfg.CORSOrigins,
	})

	logger.Infof("MoneyMitra API running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
