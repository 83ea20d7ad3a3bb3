package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fieldservice/config"
	"fieldservice/infras/kafka"
	"fieldservice/infras/otel"
	"fieldservice/internal/domains/notification/model"
	"fieldservice/shared/constant"
	"fieldservice/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Notifier interface {
	Publish(ctx context.Context, event model.Event) error
}

type serviceImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Publish sends event to the notification topic. OccurredAt and Actor are filled in when missing.
func (s *serviceImpl) Publish(ctx context.Context, event model.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	if event.Actor == "" {
		event.Actor, _ = ctx.Value(constant.ContextKeyUsername).(string)
	}

	if event.Actor == "" {
		event.Actor = constant.ContextSystem
	}

	scope.SetAttribute("event.type", event.Type)

	if err = s.client.SendMessages(ctx, s.cfg.Kafka.Topics.Notification, kafka.Message{Key: event.Key(), Value: event}); err != nil {
		log.Error().Err(err).Str("type", event.Type).Int64("entity_id", event.EntityID).Msg("failed to publish notification")

		return fmt.Errorf("failed to publish notification: %w", err)
	}

	log.Debug().Str("type", event.Type).Int64("entity_id", event.EntityID).Msg("notification published")

	return nil
}

// PublishAsync publishes event without holding up the caller. Failures are logged and dropped.
func PublishAsync(ctx context.Context, notifier Notifier, event model.Event) {
	go func() {
		if err := notifier.Publish(context.WithoutCancel(ctx), event); err != nil {
			log.Warn().Err(err).Str("type", event.Type).Msg("notification dropped")
		}
	}()
}
