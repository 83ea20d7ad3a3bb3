package auth_test

import (
	"context"
	"encoding/json"
	"fieldservice/infras/otel/mocks"
	authMocks "fieldservice/internal/domains/auth/mocks"
	"fieldservice/internal/domains/auth/model/dto"
	"fieldservice/internal/handlers/auth"
	"fieldservice/shared/constant"
	"fieldservice/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*authMocks.MockAuth, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := authMocks.NewMockAuth(ctrl)

	handler := auth.New(service, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return service, router
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, router := setup(t)

		service.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Username: "admin", Password: "secret123"}).
			Return(dto.LoginResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", Role: "admin"}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"secret123"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.LoginResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "access", body.Data.AccessToken)
		assert.Equal(t, "admin", body.Data.Role)
	})

	t.Run("missing password", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		service, router := setup(t)

		service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.Unauthorized("invalid username or password"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid username or password")
	})
}

func TestRefreshToken(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().
		RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "refresh"}).
		Return(dto.RefreshTokenResponse{AccessToken: "new-access"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", strings.NewReader(`{"refresh_token":"refresh"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestChangePassword(t *testing.T) {
	body := `{"current_password":"oldpassword","new_password":"newpassword"}`

	t.Run("success", func(t *testing.T) {
		service, router := setup(t)

		service.EXPECT().
			ChangePassword(gomock.Any(), dto.ChangePasswordRequest{CurrentPassword: "oldpassword", NewPassword: "newpassword"}, int64(7)).
			Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
		req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, int64(7)))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("same password", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(`{"current_password":"samepassword","new_password":"samepassword"}`))
		req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, int64(7)))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
