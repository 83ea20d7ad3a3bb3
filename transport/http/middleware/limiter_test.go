package middleware_test

import (
	"errors"
	"fieldservice/config"
	otelMocks "fieldservice/infras/otel/mocks"
	cacheMocks "fieldservice/shared/cache/mocks"
	"fieldservice/shared/constant"
	"fieldservice/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLimited(t *testing.T, enable bool) (*cacheMocks.MockRedisCache, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return redisCache, mw.Tracing(mw.RateLimit()(next))
}

func request() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
	req.Header.Set(constant.RequestHeaderUserAgent, "curl/8.0")

	return req
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		_, handler := newLimited(t, false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("first request opens the window", func(t *testing.T) {
		redisCache, handler := newLimited(t, true)

		gomock.InOrder(
			redisCache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:curl/8.0").Return(int64(1), nil),
			redisCache.EXPECT().Expire(gomock.Any(), "limiter:10.0.0.1:curl/8.0", 60).Return(nil),
		)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRateLimitWindow))
	})

	t.Run("last allowed request", func(t *testing.T) {
		redisCache, handler := newLimited(t, true)

		redisCache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(2), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("limit exceeded", func(t *testing.T) {
		redisCache, handler := newLimited(t, true)

		redisCache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(3), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("window not opened", func(t *testing.T) {
		redisCache, handler := newLimited(t, true)

		redisCache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		redisCache.EXPECT().Expire(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("READONLY"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("cache down", func(t *testing.T) {
		redisCache, handler := newLimited(t, true)

		redisCache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("dial tcp: connection refused"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("real ip without forwarding", func(t *testing.T) {
		redisCache, handler := newLimited(t, true)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
		req.Header.Set(constant.RequestHeaderRealIP, " 10.0.0.9 ")

		redisCache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.9:unknown").Return(int64(2), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
