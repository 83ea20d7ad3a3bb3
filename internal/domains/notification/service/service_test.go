package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fieldservice/config"
	"fieldservice/infras/kafka"
	kafkaMocks "fieldservice/infras/kafka/mocks"
	otelMocks "fieldservice/infras/otel/mocks"
	"fieldservice/internal/domains/notification/model"
	"fieldservice/internal/domains/notification/service"
	"fieldservice/shared/constant"
)

func newNotifier(t *testing.T) (*kafkaMocks.MockClient, service.Notifier) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Notification = "fieldservice.notifications"

	client := kafkaMocks.NewMockClient(ctrl)

	return client, service.New(client, cfg, otelMocks.NewOtel())
}

func TestNotifier_Publish(t *testing.T) {
	client, notifier := newNotifier(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "dispatcher")

	client.EXPECT().SendMessages(gomock.Any(), "fieldservice.notifications", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "quote:9", messages[0].Key)

			event, ok := messages[0].Value.(model.Event)
			require.True(t, ok)
			assert.Equal(t, "dispatcher", event.Actor)
			assert.False(t, event.OccurredAt.IsZero())

			return nil
		})

	err := notifier.Publish(ctx, model.Event{Type: model.EventQuoteApproved, Entity: "quote", EntityID: 9})

	assert.NoError(t, err)
}

func TestNotifier_PublishKeepsGivenFields(t *testing.T) {
	client, notifier := newNotifier(t)
	at := time.Date(2024, time.May, 1, 1, 0, 0, 0, time.UTC)

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			event, _ := messages[0].Value.(model.Event)
			assert.Equal(t, constant.ContextSystem, event.Actor)
			assert.Equal(t, at, event.OccurredAt)

			return nil
		})

	err := notifier.Publish(context.Background(), model.Event{Type: model.EventQuoteExpired, Entity: "quote", EntityID: 1, OccurredAt: at})

	assert.NoError(t, err)
}

func TestNotifier_PublishError(t *testing.T) {
	client, notifier := newNotifier(t)

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	err := notifier.Publish(context.Background(), model.Event{Type: model.EventPaymentCompleted, Entity: "payment", EntityID: 2})

	assert.Error(t, err)
}

func TestPublishAsync(t *testing.T) {
	client, notifier := newNotifier(t)
	sent := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...kafka.Message) error {
			assert.NoError(t, ctx.Err())
			close(sent)

			return errors.New("broker unavailable")
		})

	service.PublishAsync(ctx, notifier, model.Event{Type: model.EventPaymentCompleted, Entity: "payment", EntityID: 1})

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("notification was not published")
	}
}
