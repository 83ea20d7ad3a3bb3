package di

import (
	"context"
	"fieldservice/infras/kafka"
	"fieldservice/infras/otel"
	"fieldservice/infras/postgres"
	userService "fieldservice/internal/domains/user/service"
	"fieldservice/transport/http"
	"fieldservice/transport/scheduler"

	"github.com/rs/zerolog/log"
)

// App is everything the entrypoints need to run and later release.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
	Users     userService.User
	Otel      otel.Otel
	Kafka     kafka.Client
	DB        *postgres.Connection
}

// Close releases the outbound connections. The HTTP server must already be stopped.
func (a *App) Close(ctx context.Context) {
	a.Scheduler.Stop(ctx)

	if err := a.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka writer")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}

	a.DB.Close()
}
