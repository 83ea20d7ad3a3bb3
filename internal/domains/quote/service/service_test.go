package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fieldservice/config"
	otelMocks "fieldservice/infras/otel/mocks"
	notificationMocks "fieldservice/internal/domains/notification/mocks"
	notificationModel "fieldservice/internal/domains/notification/model"
	quoteMocks "fieldservice/internal/domains/quote/mocks"
	"fieldservice/internal/domains/quote/model"
	"fieldservice/internal/domains/quote/model/dto"
	"fieldservice/internal/domains/quote/service"
	requestMocks "fieldservice/internal/domains/servicerequest/mocks"
	requestModel "fieldservice/internal/domains/servicerequest/model"
	"fieldservice/shared"
	cacheMocks "fieldservice/shared/cache/mocks"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/listview"
	gRepo "fieldservice/shared/repository"
	"fieldservice/shared/timezone"
)

type fixture struct {
	repo        *quoteMocks.MockQuoteRepository
	requests    *requestMocks.MockServiceRequestRepository
	notifier    *notificationMocks.MockNotifier
	cache       *cacheMocks.MockRedisCache
	svc         service.Quote
	generations *[]string
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.App.Quote.ValidityMonths = 1

	f := fixture{
		generations: &[]string{},
		repo:        quoteMocks.NewMockQuoteRepository(ctrl),
		requests:    requestMocks.NewMockServiceRequestRepository(ctrl),
		notifier:    notificationMocks.NewMockNotifier(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.requests, f.notifier, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (int64, error) {
			*f.generations = append(*f.generations, key)

			return int64(len(*f.generations)), nil
		}).AnyTimes()

	for _, prefix := range []string{constant.CacheGetQuote, constant.CacheSnapshotQuote} {
		f.cache.EXPECT().Get(gomock.Any(), shared.GenerationKey(prefix), gomock.Any()).Return(redis.Nil).AnyTimes()
	}
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestQuoteService_Generate(t *testing.T) {
	t.Run("priced at total cost", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "estimator")
		today := timezone.Today()

		f.requests.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(requestModel.ServiceRequest{ID: 3, Description: "Boiler repair", TotalCost: 135.5}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, quote model.Quote) (int64, error) {
				assert.InDelta(t, 135.5, quote.Amount, 0.0001)
				assert.Equal(t, model.StatusPending, quote.Status)
				assert.True(t, today.Equal(quote.ValidFrom))
				assert.True(t, today.AddDate(0, 1, 0).Equal(quote.ValidUntil))

				return 21, nil
			})
		f.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event notificationModel.Event) error {
				assert.Equal(t, notificationModel.EventQuoteGenerated, event.Type)
				assert.Equal(t, int64(21), event.EntityID)

				return nil
			})

		res, err := f.svc.Generate(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(21), res.ID)
		assert.Equal(t, "Boiler repair", res.ServiceDescription)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("unknown service request", func(t *testing.T) {
		f := newFixture(t)

		f.requests.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(requestModel.ServiceRequest{}, nil)

		_, err := f.svc.Generate(context.Background(), 3)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestQuoteService_Create(t *testing.T) {
	req := dto.CreateQuoteRequest{ServiceRequestID: 3, Amount: 80, ValidFrom: "2024-06-01", ValidUntil: "2024-07-01"}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.requests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(4), nil)

		id, err := f.svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, int64(4), id)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("unknown service request", func(t *testing.T) {
		f := newFixture(t)

		f.requests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestQuoteService_GetAll(t *testing.T) {
	quotes := []model.Quote{
		{ID: 1, ServiceDescription: "Boiler repair", Status: model.StatusPending, ValidFrom: timezone.Date(2024, time.May, 1)},
		{ID: 2, ServiceDescription: "Roof", Status: model.StatusApproved, ValidFrom: timezone.Date(2024, time.June, 1)},
	}

	f := newFixture(t)

	f.repo.EXPECT().IsSortable(gomock.Any()).Return(true)
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.Nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(quotes, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, listview.Criteria{Status: model.StatusApproved})

	require.NoError(t, err)
	require.Len(t, res.Quotes, 1)
	assert.Equal(t, int64(2), res.Quotes[0].ID)

	time.Sleep(10 * time.Millisecond)
}

func TestQuoteService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "quote:get:g0:4", gomock.Any()).Return(redis.Nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Quote{
		ID: 4, ValidFrom: timezone.Date(2024, time.June, 1), ValidUntil: timezone.Date(2024, time.July, 1),
	}, nil)

	res, err := f.svc.Get(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", res.ValidUntil)

	time.Sleep(10 * time.Millisecond)
}

func TestQuoteService_Update(t *testing.T) {
	current := model.Quote{ID: 4, Status: model.StatusPending, ValidFrom: timezone.Date(2024, time.June, 1), ValidUntil: timezone.Date(2024, time.July, 1)}

	t.Run("pending quote", func(t *testing.T) {
		f := newFixture(t)
		until := "2024-08-01"
		amount := 90.0

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldValidUntil)
				assert.InDelta(t, 90.0, fields[model.FieldAmount], 0.0001)
				assert.NotContains(t, fields, model.FieldStatus)

				return nil
			})

		err := f.svc.Update(context.Background(), dto.UpdateQuoteRequest{Amount: &amount, ValidUntil: &until}, 4)

		require.NoError(t, err)
		assert.Equal(t, []string{shared.GenerationKey(constant.CacheGetQuote), shared.GenerationKey(constant.CacheSnapshotQuote)}, *f.generations)
	})

	t.Run("approved while editing", func(t *testing.T) {
		f := newFixture(t)
		notes := "late"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to update data (quotes): %w", gRepo.ErrNoRowsAffected))

		err := f.svc.Update(context.Background(), dto.UpdateQuoteRequest{Notes: &notes}, 4)

		assert.ErrorIs(t, err, service.ErrNotEditable)
		assert.Empty(t, *f.generations)
	})

	t.Run("approved quote", func(t *testing.T) {
		f := newFixture(t)
		approved := current
		approved.Status = model.StatusApproved
		notes := "late"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approved, nil)

		err := f.svc.Update(context.Background(), dto.UpdateQuoteRequest{Notes: &notes}, 4)

		assert.ErrorIs(t, err, service.ErrNotEditable)
	})

	t.Run("invalid validity", func(t *testing.T) {
		f := newFixture(t)
		until := "2024-05-01"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		err := f.svc.Update(context.Background(), dto.UpdateQuoteRequest{ValidUntil: &until}, 4)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestQuoteService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.svc.Delete(context.Background(), 4))
		assert.Contains(t, *f.generations, shared.GenerationKey(constant.CacheGetQuote))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(f.svc.Delete(context.Background(), 4)))
	})
}

func TestQuoteService_Actions(t *testing.T) {
	tests := []struct {
		name      string
		action    func(service.Quote, context.Context, int64) error
		want      string
		wantEvent string
	}{
		{name: "approve", action: service.Quote.Approve, want: model.StatusApproved, wantEvent: notificationModel.EventQuoteApproved},
		{name: "reject", action: service.Quote.Reject, want: model.StatusRejected, wantEvent: notificationModel.EventQuoteRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Quote{ID: 4, ServiceRequestID: 3, Status: model.StatusPending}, nil)
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
					assert.Equal(t, tt.want, fields[model.FieldStatus])
					assert.Len(t, filter.Filters, 2)

					return nil
				})
			f.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, event notificationModel.Event) error {
					assert.Equal(t, tt.wantEvent, event.Type)

					return nil
				})

			require.NoError(t, tt.action(f.svc, context.Background(), 4))

			time.Sleep(10 * time.Millisecond)
		})
	}

	for _, tt := range tests {
		t.Run(tt.name+" after a concurrent change", func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Quote{ID: 4, ServiceRequestID: 3, Status: model.StatusPending}, nil)
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(fmt.Errorf("failed to update data (quotes): %w", gRepo.ErrNoRowsAffected))

			err := tt.action(f.svc, context.Background(), 4)

			assert.ErrorIs(t, err, service.ErrInvalidTransition)
			assert.Empty(t, *f.generations)
		})
	}

	for _, status := range []string{model.StatusApproved, model.StatusRejected} {
		for _, tt := range tests {
			t.Run(tt.name+" "+status, func(t *testing.T) {
				f := newFixture(t)

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Quote{ID: 4, Status: status}, nil)

				err := tt.action(f.svc, context.Background(), 4)

				assert.ErrorIs(t, err, service.ErrInvalidTransition)
			})
		}
	}
}

func TestQuoteService_ExpirePending(t *testing.T) {
	t.Run("rejects every expired quote", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetExpiredPending(gomock.Any(), gomock.Any()).Return([]model.Quote{
			{ID: 1, Status: model.StatusPending},
			{ID: 2, Status: model.StatusPending},
		}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusRejected, fields[model.FieldStatus])
				assert.Equal(t, constant.ContextSystem, fields[constant.FieldModifiedBy])

				return nil
			}).Times(2)
		f.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event notificationModel.Event) error {
				assert.Equal(t, notificationModel.EventQuoteExpired, event.Type)

				return nil
			}).Times(2)

		expired, err := f.svc.ExpirePending(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, expired)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("continues after a failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetExpiredPending(gomock.Any(), gomock.Any()).Return([]model.Quote{
			{ID: 1, Status: model.StatusPending},
			{ID: 2, Status: model.StatusPending},
		}, nil)
		gomock.InOrder(
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock")),
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)
		f.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		expired, err := f.svc.ExpirePending(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quote 1")
		assert.Equal(t, 1, expired)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("nothing to expire", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetExpiredPending(gomock.Any(), gomock.Any()).Return([]model.Quote{}, nil)

		expired, err := f.svc.ExpirePending(context.Background())

		require.NoError(t, err)
		assert.Zero(t, expired)
	})
}
