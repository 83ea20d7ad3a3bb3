package main

import (
	"context"
	"fieldservice/config"
	"fieldservice/di"
	_ "fieldservice/docs"
	"fieldservice/helper"
	"fieldservice/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	closeTimeout = 10 * time.Second
)

// @title Field Service API
// @version 1.0
// @description Customers, technicians, service requests, quotes and payments of a field-service company.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer access token from /v1/auth/login.
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	app := di.InitializeService()

	if err := app.Users.SeedAdmin(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed the initial admin")
	}

	if err := app.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	if err := app.HTTP.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with an error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	app.Close(ctx)
}
