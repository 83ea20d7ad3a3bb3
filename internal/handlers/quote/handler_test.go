package quote_test

import (
	"fieldservice/infras/otel/mocks"
	quoteMocks "fieldservice/internal/domains/quote/mocks"
	"fieldservice/internal/domains/quote/model/dto"
	"fieldservice/internal/domains/quote/service"
	"fieldservice/internal/handlers/quote"
	"fieldservice/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*quoteMocks.MockQuote, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := quoteMocks.NewMockQuote(ctrl)

	handler := quote.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreateQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), dto.CreateQuoteRequest{ServiceRequestID: 1, Amount: 250, ValidFrom: "2026-03-01", ValidUntil: "2026-04-01"}).
			Return(int64(6), nil)

		rec := serve(router, http.MethodPost, "/quotes", `{"service_request_id":1,"amount":250,"valid_from":"2026-03-01","valid_until":"2026-04-01"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing validity", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, http.MethodPost, "/quotes", `{"service_request_id":1,"amount":250}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validity reversed", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), failure.BadRequestFromString("valid_until must not be before valid_from"))

		rec := serve(router, http.MethodPost, "/quotes", `{"service_request_id":1,"amount":250,"valid_from":"2026-04-01","valid_until":"2026-03-01"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetQuotes(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dto.GetQuotesResponse{Quotes: []dto.QuoteResponse{{ID: 6, Status: "Approved"}}, TotalPage: 1, TotalData: 1}, nil)

	rec := serve(router, http.MethodGet, "/quotes?status=Approved", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Approved")
}

func TestGetQuoteByID(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Get(gomock.Any(), int64(6)).Return(dto.QuoteResponse{ID: 6, ValidUntil: "2026-04-01"}, nil)

	rec := serve(router, http.MethodGet, "/quotes/6", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2026-04-01")
}

func TestUpdateQuote(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any(), int64(6)).Return(service.ErrNotEditable)

	rec := serve(router, http.MethodPatch, "/quotes/6", `{"amount":300}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteQuote(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Delete(gomock.Any(), int64(6)).Return(nil)

	rec := serve(router, http.MethodDelete, "/quotes/6", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQuoteActions(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		mock     func(svc *quoteMocks.MockQuote)
		wantCode int
	}{
		{
			name:   "approve",
			target: "/quotes/6/approve",
			mock: func(svc *quoteMocks.MockQuote) {
				svc.EXPECT().Approve(gomock.Any(), int64(6)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "reject",
			target: "/quotes/6/reject",
			mock: func(svc *quoteMocks.MockQuote) {
				svc.EXPECT().Reject(gomock.Any(), int64(6)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "approve twice",
			target: "/quotes/6/approve",
			mock: func(svc *quoteMocks.MockQuote) {
				svc.EXPECT().Approve(gomock.Any(), int64(6)).Return(service.ErrInvalidTransition)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "invalid id",
			target:   "/quotes/0/reject",
			mock:     func(*quoteMocks.MockQuote) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.mock(svc)

			rec := serve(router, http.MethodPost, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
