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
	userMocks "fieldservice/internal/domains/user/mocks"
	"fieldservice/internal/domains/user/model"
	"fieldservice/internal/domains/user/model/dto"
	"fieldservice/internal/domains/user/service"
	"fieldservice/shared"
	cacheMocks "fieldservice/shared/cache/mocks"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/listview"
	gModel "fieldservice/shared/model"
	"fieldservice/shared/timezone"
)

type fixture struct {
	repo        *userMocks.MockUserRepository
	cache       *cacheMocks.MockRedisCache
	cfg         *config.Config
	svc         service.User
	generations *[]string
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		generations: &[]string{},
		repo:        userMocks.NewMockUserRepository(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		cfg:         &config.Config{},
	}
	f.cfg.Cache.TTL = 60
	f.svc = service.New(f.repo, f.cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (int64, error) {
			*f.generations = append(*f.generations, key)

			return int64(len(*f.generations)), nil
		}).AnyTimes()

	for _, prefix := range []string{constant.CacheGetUser, constant.CacheSnapshotUser} {
		f.cache.EXPECT().Get(gomock.Any(), shared.GenerationKey(prefix), gomock.Any()).Return(redis.Nil).AnyTimes()
	}
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func asUser(id int64, username string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUsername, username)
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		wantID   int64
		wantCode int
	}{
		{
			name: "creates user with hashed password",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u model.User) (int64, error) {
						assert.Equal(t, "dispatcher", u.Username)
						assert.NotEqual(t, "secret-password", u.Password)
						assert.Equal(t, "admin", u.CreatedBy)

						return 7, nil
					})
			},
			wantID: 7,
		},
		{
			name: "duplicate username",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "exist check fails",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			id, err := f.svc.Create(asUser(1, "admin"), dto.CreateUserRequest{Username: "dispatcher", Password: "secret-password"})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	now := timezone.Now()
	users := []model.User{
		{ID: 1, Username: "admin", IsAdmin: true, Metadata: gModel.Metadata{CreatedAt: now}},
		{ID: 2, Username: "dispatcher", Metadata: gModel.Metadata{CreatedAt: now}},
		{ID: 3, Username: "dispatch-two", Metadata: gModel.Metadata{CreatedAt: now}},
	}

	t.Run("filters snapshot by role and search", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().IsSortable(constant.DefaultValueSortBy).Return(true)
		f.cache.EXPECT().Get(gomock.Any(), "user:snapshot:g0:created_at:DESC", gomock.Any()).Return(redis.Nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{}, gomock.Any()).Return(users, nil)

		params := gDto.QueryParams{Page: 1, Limit: 1, SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}

		res, err := f.svc.GetAll(context.Background(), params, listview.Criteria{Search: "DISPATCH", Status: constant.RoleUser})

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Users, 1)
		assert.Equal(t, "dispatcher", res.Users[0].Username)
		assert.Equal(t, constant.RoleUser, res.Users[0].Role)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("rejects unknown sort column", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().IsSortable("password; DROP").Return(false)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{SortBy: "password; DROP"}, listview.Criteria{})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "user:get:g0:2", gomock.Any()).Return(redis.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{ID: 2, Username: "dispatcher"}, nil)

		res, err := f.svc.Get(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, int64(2), res.ID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.Get(context.Background(), 9)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	demote := false
	promote := true

	tests := []struct {
		name     string
		req      dto.UpdateUserRequest
		id       int64
		setup    func(f fixture)
		wantCode int
	}{
		{
			name:     "empty request",
			id:       2,
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "cannot demote self",
			req:      dto.UpdateUserRequest{IsAdmin: &demote},
			id:       1,
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateUserRequest{IsAdmin: &promote},
			id:   5,
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "resets password",
			req:  dto.UpdateUserRequest{Password: "new-password"},
			id:   2,
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.NotEqual(t, "new-password", fields[model.FieldPassword])
						assert.Equal(t, "admin", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Update(asUser(1, "admin"), tt.req, tt.id)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("cannot delete self", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Delete(asUser(1, "admin"), 1)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("deletes other user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.svc.Delete(asUser(1, "admin"), 2))

		time.Sleep(10 * time.Millisecond)
	})
}

func TestUserService_SeedAdmin(t *testing.T) {
	t.Run("skips without credentials", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.svc.SeedAdmin(context.Background()))
	})

	t.Run("skips existing admin", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.App.Admin.Username = "admin"
		f.cfg.App.Admin.Password = "admin-password"

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		require.NoError(t, f.svc.SeedAdmin(context.Background()))
	})

	t.Run("inserts admin", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.App.Admin.Username = "admin"
		f.cfg.App.Admin.Password = "admin-password"

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u model.User) (int64, error) {
				assert.True(t, u.IsAdmin)
				assert.Equal(t, constant.ContextSystem, u.CreatedBy)

				return 1, nil
			})

		require.NoError(t, f.svc.SeedAdmin(context.Background()))
	})
}
