package servicerequest_test

import (
	"encoding/json"
	"fieldservice/infras/otel/mocks"
	quoteMocks "fieldservice/internal/domains/quote/mocks"
	quoteDto "fieldservice/internal/domains/quote/model/dto"
	requestMocks "fieldservice/internal/domains/servicerequest/mocks"
	"fieldservice/internal/domains/servicerequest/model/dto"
	technicianDto "fieldservice/internal/domains/technician/model/dto"
	"fieldservice/internal/handlers/servicerequest"
	"fieldservice/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service      *requestMocks.MockServiceRequest
	quoteService *quoteMocks.MockQuote
	router       chi.Router
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		service:      requestMocks.NewMockServiceRequest(ctrl),
		quoteService: quoteMocks.NewMockQuote(ctrl),
		router:       chi.NewRouter(),
	}

	handler := servicerequest.New(f.service, f.quoteService, mocks.NewOtel())
	handler.Router(f.router)

	return f
}

func (f fixture) serve(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreateServiceRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(f fixture)
		wantCode int
	}{
		{
			name: "success",
			body: `{"customer_id":1,"description":"Fix leaking pipe","service_date":"2026-03-14","service_time":"09:30","service_cost":100,"parking_fees":12.5}`,
			mock: func(f fixture) {
				f.service.EXPECT().
					Create(gomock.Any(), dto.CreateServiceRequestRequest{
						CustomerID: 1, Description: "Fix leaking pipe", ServiceDate: "2026-03-14",
						ServiceTime: "09:30", ServiceCost: 100, ParkingFees: 12.5,
					}).
					Return(int64(21), nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing description",
			body:     `{"customer_id":1,"service_date":"2026-03-14"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid date",
			body:     `{"customer_id":1,"description":"Fix","service_date":"14/03/2026"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid time",
			body:     `{"customer_id":1,"description":"Fix","service_date":"2026-03-14","service_time":"25:00"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative cost",
			body:     `{"customer_id":1,"description":"Fix","service_date":"2026-03-14","added_cost":-3}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown customer",
			body: `{"customer_id":99,"description":"Fix","service_date":"2026-03-14"}`,
			mock: func(f fixture) {
				f.service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), failure.BadRequestFromString("customer does not exist"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			if tt.mock != nil {
				tt.mock(f)
			}

			rec := f.serve(http.MethodPost, "/service-requests", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetServiceRequests(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dto.GetServiceRequestsResponse{ServiceRequests: []dto.ServiceRequestResponse{{ID: 1, Status: "Pending"}}, TotalPage: 1, TotalData: 1}, nil)

	rec := f.serve(http.MethodGet, "/service-requests?status=Pending&from=2026-03-01&to=2026-03-31", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_data":1`)
}

func TestGetServiceRequestByID(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Get(gomock.Any(), int64(1)).Return(dto.ServiceRequestResponse{ID: 1, Customer: dto.CustomerResponse{Name: "Ada Lovelace"}}, nil)

	rec := f.serve(http.MethodGet, "/service-requests/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
}

func TestUpdateServiceRequest(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).Return(nil)

	rec := f.serve(http.MethodPatch, "/service-requests/1", `{"added_cost":25,"status":"In Progress"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteServiceRequest(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Delete(gomock.Any(), int64(1)).Return(failure.NotFound("service request not found"))

	rec := f.serve(http.MethodDelete, "/service-requests/1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBalance(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().
		GetBalance(gomock.Any(), int64(1)).
		Return(dto.BalanceResponse{ServiceRequestID: 1, TotalCost: 150, PaidAmount: 100, RemainingBalance: 50}, nil)

	rec := f.serve(http.MethodGet, "/service-requests/1/balance", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.BalanceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 50, body.Data.RemainingBalance, 0.001)
}

func TestGenerateQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := setup(t)

		f.quoteService.EXPECT().
			Generate(gomock.Any(), int64(1)).
			Return(quoteDto.QuoteResponse{ID: 4, ServiceRequestID: 1, Amount: 150, Status: "Pending"}, nil)

		rec := f.serve(http.MethodPost, "/service-requests/1/quotes/generate", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"Pending"`)
	})

	t.Run("missing service request", func(t *testing.T) {
		f := setup(t)

		f.quoteService.EXPECT().Generate(gomock.Any(), int64(1)).Return(quoteDto.QuoteResponse{}, failure.NotFound("service request not found"))

		rec := f.serve(http.MethodPost, "/service-requests/1/quotes/generate", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAssignTechnicians(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().
			AssignTechnicians(gomock.Any(), dto.AssignTechniciansRequest{TechnicianIDs: []int64{3, 2}}, int64(1)).
			Return(nil)

		rec := f.serve(http.MethodPut, "/service-requests/1/technicians", `{"technician_ids":[3,2]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid technician id", func(t *testing.T) {
		f := setup(t)

		rec := f.serve(http.MethodPut, "/service-requests/1/technicians", `{"technician_ids":[0]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTechnicians(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().
		GetTechnicians(gomock.Any(), int64(1)).
		Return([]technicianDto.TechnicianResponse{{ID: 3, FullName: "Grace Hopper"}}, nil)

	rec := f.serve(http.MethodGet, "/service-requests/1/technicians", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grace Hopper")
}
