package response_test

import (
	"errors"
	"fieldservice/shared/failure"
	"fieldservice/transport/http/response"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string]float64{"remaining_balance": 40})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"remaining_balance":40}}`, recorder.Body.String())
}

func TestWithMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithMessage(recorder, http.StatusCreated, "Customer created successfully")

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"message":"Customer created successfully"}`, recorder.Body.String())
}

func TestWithCreated(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithCreated(recorder, 12, "Quote generated successfully")

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"id":12,"message":"Quote generated successfully"}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "failure",
			err:  failure.NotFound("quote not found"),
			code: http.StatusNotFound,
			body: `{"error":"quote not found"}`,
		},
		{
			name: "wrapped failure",
			err:  fmt.Errorf("failed to delete technician: %w", failure.Conflict("technician is assigned to service requests")),
			code: http.StatusConflict,
			body: `{"error":"technician is assigned to service requests"}`,
		},
		{
			name: "plain error hides details",
			err:  errors.New("pq: relation does not exist"),
			code: http.StatusInternalServerError,
			body: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}

func TestDefaultResponses(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithRequestLimitExceeded(recorder)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

	recorder = httptest.NewRecorder()
	response.WithPreparingShutdown(recorder)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	recorder = httptest.NewRecorder()
	response.WithUnhealthy(recorder)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
