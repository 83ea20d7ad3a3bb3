package scheduler_test

import (
	"context"
	"errors"
	"fieldservice/config"
	otelMocks "fieldservice/infras/otel/mocks"
	quoteMocks "fieldservice/internal/domains/quote/mocks"
	"fieldservice/shared/constant"
	"fieldservice/transport/scheduler"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newScheduler(t *testing.T, enable bool, expression string) (*quoteMocks.MockQuote, *scheduler.Scheduler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	quote := quoteMocks.NewMockQuote(ctrl)

	cfg := &config.Config{}
	cfg.Scheduler.Enable = enable
	cfg.Scheduler.QuoteExpiryCron = expression

	return quote, scheduler.New(cfg, quote, otelMocks.NewOtel())
}

func TestStart(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		_, s := newScheduler(t, false, "0 1 * * *")

		assert.NoError(t, s.Start())
		assert.Equal(t, 0, s.Jobs())
	})

	t.Run("enabled", func(t *testing.T) {
		_, s := newScheduler(t, true, "0 1 * * *")

		assert.NoError(t, s.Start())
		assert.Equal(t, 1, s.Jobs())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		s.Stop(ctx)
	})

	t.Run("invalid cron expression", func(t *testing.T) {
		_, s := newScheduler(t, true, "every night")

		assert.Error(t, s.Start())
		assert.Equal(t, 0, s.Jobs())
	})
}

func TestExpireQuotes(t *testing.T) {
	t.Run("runs as system", func(t *testing.T) {
		quote, s := newScheduler(t, true, "0 1 * * *")

		quote.EXPECT().
			ExpirePending(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (int, error) {
				assert.Equal(t, constant.ContextSystem, ctx.Value(constant.ContextKeyUsername))

				return 3, nil
			})

		s.ExpireQuotes()
	})

	t.Run("partial failure is logged", func(t *testing.T) {
		quote, s := newScheduler(t, true, "0 1 * * *")

		quote.EXPECT().ExpirePending(gomock.Any()).Return(1, errors.New("quote 7: connection reset"))

		assert.NotPanics(t, s.ExpireQuotes)
	})
}
