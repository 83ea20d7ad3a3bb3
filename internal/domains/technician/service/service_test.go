package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fieldservice/config"
	otelMocks "fieldservice/infras/otel/mocks"
	technicianMocks "fieldservice/internal/domains/technician/mocks"
	"fieldservice/internal/domains/technician/model"
	"fieldservice/internal/domains/technician/model/dto"
	"fieldservice/internal/domains/technician/repository"
	"fieldservice/internal/domains/technician/service"
	"fieldservice/shared"
	cacheMocks "fieldservice/shared/cache/mocks"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/listview"
)

type fixture struct {
	repo        *technicianMocks.MockTechnicianRepository
	cache       *cacheMocks.MockRedisCache
	svc         service.Technician
	generations *[]string
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		generations: &[]string{},
		repo:        technicianMocks.NewMockTechnicianRepository(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (int64, error) {
			*f.generations = append(*f.generations, key)

			return int64(len(*f.generations)), nil
		}).AnyTimes()

	for _, prefix := range []string{constant.CacheGetTechnician, constant.CacheSnapshotTechnician} {
		f.cache.EXPECT().Get(gomock.Any(), shared.GenerationKey(prefix), gomock.Any()).Return(redis.Nil).AnyTimes()
	}
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestTechnicianService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "dispatcher")

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tech model.Technician) (int64, error) {
			assert.Equal(t, model.PayTypeHourly, tech.PayType)
			assert.True(t, tech.Active)
			assert.InDelta(t, 42.13, tech.HourlyRate, 0.0001)

			return 5, nil
		})

	id, err := f.svc.Create(ctx, dto.CreateTechnicianRequest{FirstName: "Nikola", LastName: "Tesla", HourlyRate: 42.129})

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	time.Sleep(10 * time.Millisecond)
}

func TestTechnicianService_GetAll(t *testing.T) {
	technicians := []model.Technician{
		{ID: 1, FirstName: "Nikola", LastName: "Tesla", CoverageArea: "North", Active: true},
		{ID: 2, FirstName: "Thomas", LastName: "Edison", CoverageArea: "North", Active: false},
		{ID: 3, FirstName: "Marie", LastName: "Curie", CoverageArea: "South", Active: true},
	}

	tests := []struct {
		name     string
		criteria listview.Criteria
		wantIDs  []int64
	}{
		{name: "no criteria", criteria: listview.Criteria{}, wantIDs: []int64{1, 2, 3}},
		{name: "active only", criteria: listview.Criteria{Status: model.StatusActive}, wantIDs: []int64{1, 3}},
		{name: "all status", criteria: listview.Criteria{Status: listview.StatusAll}, wantIDs: []int64{1, 2, 3}},
		{name: "search and status", criteria: listview.Criteria{Search: "north", Status: model.StatusInactive}, wantIDs: []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().IsSortable(gomock.Any()).Return(true)
			f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.Nil)
			f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(technicians, nil)

			res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, tt.criteria)
			require.NoError(t, err)

			ids := make([]int64, len(res.Technicians))
			for i, tech := range res.Technicians {
				ids[i] = tech.ID
			}

			assert.Equal(t, tt.wantIDs, ids)

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestTechnicianService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "technician:get:g0:1", gomock.Any()).Return(redis.Nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Technician{ID: 1, FirstName: "Nikola", Active: true}, nil)

	res, err := f.svc.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, res.Status)

	time.Sleep(10 * time.Millisecond)
}

func TestTechnicianService_Update(t *testing.T) {
	rate := 10.556

	t.Run("empty", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateTechnicianRequest{}, 1)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rounds hourly rate", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.InDelta(t, 10.56, fields["hourly_rate"], 0.0001)

				return nil
			})

		require.NoError(t, f.svc.Update(context.Background(), dto.UpdateTechnicianRequest{HourlyRate: &rate}, 1))

		time.Sleep(10 * time.Millisecond)
	})
}

func TestTechnicianService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		wantErr  error
		wantCode int
	}{
		{
			name: "assigned technician is rejected",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(repository.ErrTechnicianAssigned)
			},
			wantErr:  repository.ErrTechnicianAssigned,
			wantCode: http.StatusConflict,
		},
		{
			name: "not found",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "deleted",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Delete(context.Background(), 1)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
