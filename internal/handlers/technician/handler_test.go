package technician_test

import (
	"errors"
	"fieldservice/infras/otel/mocks"
	requestMocks "fieldservice/internal/domains/servicerequest/mocks"
	requestDto "fieldservice/internal/domains/servicerequest/model/dto"
	technicianMocks "fieldservice/internal/domains/technician/mocks"
	"fieldservice/internal/domains/technician/model/dto"
	"fieldservice/internal/domains/technician/repository"
	"fieldservice/internal/handlers/technician"
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
	service        *technicianMocks.MockTechnician
	requestService *requestMocks.MockServiceRequest
	router         chi.Router
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		service:        technicianMocks.NewMockTechnician(ctrl),
		requestService: requestMocks.NewMockServiceRequest(ctrl),
		router:         chi.NewRouter(),
	}

	handler := technician.New(f.service, f.requestService, mocks.NewOtel())
	handler.Router(f.router)

	return f
}

func (f fixture) serve(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreateTechnician(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().
			Create(gomock.Any(), dto.CreateTechnicianRequest{FirstName: "Grace", LastName: "Hopper", HourlyRate: 42.5, PayType: "Hourly"}).
			Return(int64(2), nil)

		rec := f.serve(http.MethodPost, "/technicians", `{"first_name":"Grace","last_name":"Hopper","hourly_rate":42.5,"pay_type":"Hourly"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("negative rate", func(t *testing.T) {
		f := setup(t)

		rec := f.serve(http.MethodPost, "/technicians", `{"first_name":"Grace","last_name":"Hopper","hourly_rate":-1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown pay type", func(t *testing.T) {
		f := setup(t)

		rec := f.serve(http.MethodPost, "/technicians", `{"first_name":"Grace","last_name":"Hopper","pay_type":"Barter"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTechnicians(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dto.GetTechniciansResponse{Technicians: []dto.TechnicianResponse{{ID: 2, FullName: "Grace Hopper"}}, TotalPage: 1, TotalData: 1}, nil)

	rec := f.serve(http.MethodGet, "/technicians?status=Active", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grace Hopper")
}

func TestGetTechnicianByID(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Get(gomock.Any(), int64(2)).Return(dto.TechnicianResponse{}, failure.NotFound("technician not found"))

	rec := f.serve(http.MethodGet, "/technicians/2", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTechnician(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Update(gomock.Any(), gomock.Any(), int64(2)).Return(nil)

	rec := f.serve(http.MethodPatch, "/technicians/2", `{"active":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteTechnician(t *testing.T) {
	t.Run("assigned", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Delete(gomock.Any(), int64(2)).Return(repository.ErrTechnicianAssigned)

		rec := f.serve(http.MethodDelete, "/technicians/2", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Delete(gomock.Any(), int64(2)).Return(errors.New("connection reset"))

		rec := f.serve(http.MethodDelete, "/technicians/2", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestGetServiceRequests(t *testing.T) {
	f := setup(t)

	f.requestService.EXPECT().
		GetByTechnician(gomock.Any(), int64(2)).
		Return([]requestDto.ServiceRequestResponse{{ID: 8, Description: "Replace water heater"}}, nil)

	rec := f.serve(http.MethodGet, "/technicians/2/service-requests", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Replace water heater")
}
