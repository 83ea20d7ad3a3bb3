package middleware_test

import (
	"fieldservice/config"
	"fieldservice/infras/jwt"
	jwtMocks "fieldservice/infras/jwt/mocks"
	otelMocks "fieldservice/infras/otel/mocks"
	"fieldservice/permissions"
	"fieldservice/shared/constant"
	"fieldservice/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	jwt    *jwtMocks.MockJWT
	router chi.Router
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
			{Path: "/v1/users", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin}},
		},
	}

	mw := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), perms, cfg)

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(mw.APIKey, mw.Auth, mw.RBAC)

		r.Route("/v1", func(r chi.Router) {
			r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/", func(w http.ResponseWriter, r *http.Request) {
					username, _ := r.Context().Value(constant.ContextKeyUsername).(string)
					_, _ = w.Write([]byte(username))
				})
			})
			r.Get("/customers", func(w http.ResponseWriter, r *http.Request) {
				userID, _ := r.Context().Value(constant.ContextKeyUserID).(int64)
				if userID == 0 {
					w.WriteHeader(http.StatusTeapot)

					return
				}

				username, _ := r.Context().Value(constant.ContextKeyUsername).(string)
				_, _ = w.Write([]byte(username))
			})
		})
	})

	return authFixture{jwt: jwtService, router: router}
}

func (f authFixture) do(method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{constant.RequestHeaderAuthorization: "Bearer " + token}
}

func TestAuth(t *testing.T) {
	t.Run("skipped route", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := f.do(http.MethodPost, "/v1/auth/login", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := f.do(http.MethodGet, "/v1/customers", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing authorization header")
	})

	t.Run("malformed header", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := f.do(http.MethodGet, "/v1/customers", map[string]string{constant.RequestHeaderAuthorization: "Token abc"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

		rec := f.do(http.MethodGet, "/v1/customers", bearer("expired"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token has expired")
	})

	t.Run("empty claims", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("token", jwt.AccessToken).Return(&jwt.Claims{}, nil)

		rec := f.do(http.MethodGet, "/v1/customers", bearer("token"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			ValidateToken("token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: 4, Username: "dispatcher", Role: constant.RoleUser}, nil)

		rec := f.do(http.MethodGet, "/v1/customers", bearer("token"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dispatcher", rec.Body.String())
	})
}

func TestRBAC(t *testing.T) {
	t.Run("admin allowed", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			ValidateToken("token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: 1, Username: "admin", Role: constant.RoleAdmin}, nil)

		rec := f.do(http.MethodGet, "/v1/users", bearer("token"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user forbidden", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			ValidateToken("token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: 4, Username: "dispatcher", Role: constant.RoleUser}, nil)

		rec := f.do(http.MethodGet, "/v1/users", bearer("token"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAPIKey(t *testing.T) {
	t.Run("valid key skips token checks", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := f.do(http.MethodGet, "/v1/users", map[string]string{constant.RequestHeaderAPIKey: "internal-key"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContextSystem, rec.Body.String())
	})

	t.Run("wrong key", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := f.do(http.MethodGet, "/v1/users", map[string]string{constant.RequestHeaderAPIKey: "guess"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
