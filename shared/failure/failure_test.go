package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fieldservice/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "zip_code is invalid",
	}

	if f.Error() != "zip_code is invalid" {
		t.Errorf("expected error message to be 'zip_code is invalid', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, code: http.StatusBadRequest},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest},
		{name: "InvalidIDParam", failure: failure.InvalidIDParam, code: http.StatusBadRequest},
		{name: "EmptyUpdateRequest", failure: failure.EmptyUpdateRequest, code: http.StatusBadRequest},
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
		{name: "ReferencedError", failure: failure.ReferencedError, code: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest, message: "bad"},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("phone is invalid"), code: http.StatusBadRequest, message: "phone is invalid"},
		{name: "Unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "InternalError", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, message: "db down"},
		{name: "NotFound", err: failure.NotFound("customer not found"), code: http.StatusNotFound, message: "customer not found"},
		{name: "Conflict", err: failure.Conflict("technician is assigned"), code: http.StatusConflict, message: "technician is assigned"},
		{name: "Forbidden", err: failure.Forbidden("admins only"), code: http.StatusForbidden, message: "admins only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code || f.Message != tt.message {
				t.Errorf("expected {%d %s}, got {%d %s}", tt.code, tt.message, f.Code, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "failure", err: failure.NotFound("quote not found"), code: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("get quote: %w", failure.Conflict("quote is approved")), code: http.StatusConflict},
		{name: "plain error", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected %d, got %d", tt.code, got)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("delete technician: %w", failure.Conflict("assigned"))

	if !failure.IsCode(err, http.StatusConflict) {
		t.Error("expected wrapped conflict to match")
	}

	if failure.IsCode(err, http.StatusNotFound) {
		t.Error("expected conflict not to match not found")
	}

	if failure.IsCode(errors.New("plain"), http.StatusInternalServerError) {
		t.Error("expected plain error not to be a failure")
	}
}
