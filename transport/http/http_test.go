package http_test

import (
	"fieldservice/config"
	jwtMocks "fieldservice/infras/jwt/mocks"
	otelMocks "fieldservice/infras/otel/mocks"
	"fieldservice/permissions"
	cacheMocks "fieldservice/shared/cache/mocks"
	transport "fieldservice/transport/http"
	"fieldservice/transport/http/middleware"
	"fieldservice/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, cfg *config.Config) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := otelMocks.NewOtel()

	appMiddleware := middleware.NewAppMiddleware(otel, cfg, cacheMocks.NewMockRedisCache(ctrl))
	authMiddleware := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), otel, permissions.Get(), cfg)

	return transport.New(cfg, router.New(router.DomainHandlers{}), appMiddleware, authMiddleware)
}

func TestHealth(t *testing.T) {
	server := newServer(t, &config.Config{})
	handler := server.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	handler := newServer(t, &config.Config{}).Handler()

	for _, target := range []string{"/v1/customers", "/v1/service-requests/1/balance", "/v1/quotes"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://office.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	handler := newServer(t, cfg).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/v1/customers", nil)
	req.Header.Set("Origin", "https://office.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://office.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
