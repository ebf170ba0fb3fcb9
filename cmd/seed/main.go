package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/config"
	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	pginfra "github.com/oksasatya/go-ddd-resource-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-resource-api/internal/infrastructure/seed"
	"github.com/oksasatya/go-ddd-resource-api/pkg/helpers"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBMaxConnLife,
	})
	if err != nil {
		helpers.LogError(logger, "failed to connect to postgres", err, nil)
		os.Exit(1)
	}
	defer pool.Close()

	catalog, err := seed.LoadFile(cfg.FeatureSeedFile)
	if err != nil {
		helpers.LogError(logger, "failed to load feature catalog", err, logrus.Fields{"file": cfg.FeatureSeedFile})
		os.Exit(1)
	}
	features := application.NewFeatureService(pginfra.NewFeatureRepository(pool), nil, logger)
	created, updated, err := features.Seed(ctx, catalog.Inputs())
	if err != nil {
		helpers.LogError(logger, "failed to seed features", err, nil)
		os.Exit(1)
	}
	helpers.LogInfo(logger, "features seeded", logrus.Fields{"created": created, "updated": updated})

	jwt := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	accounts := application.NewAccountService(pginfra.NewAccountRepository(pool), jwt, nil, nil, logger)
	acc, err := accounts.Register(ctx, application.RegisterInput{
		Email:    demoEmail,
		Password: demoPassword,
		Document: map[string]any{"demo": true},
	})
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		helpers.LogInfo(logger, "demo account already present", logrus.Fields{"email": demoEmail})
	case err != nil:
		helpers.LogError(logger, "failed to seed demo account", err, nil)
		os.Exit(1)
	default:
		helpers.LogInfo(logger, "demo account seeded", logrus.Fields{"id": acc.IDAccount, "email": acc.Email, "password": demoPassword})
	}
}
