package failure_test

import (
	"errors"
	"net/http"
	"testing"
	"village/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "booking date must be in the future",
	}

	if f.Error() != "booking date must be in the future" {
		t.Errorf("expected error message to be 'booking date must be in the future', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("invalid date format"),
			code:    http.StatusBadRequest,
			message: "invalid date format",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("cannot book your own service"),
			code:    http.StatusForbidden,
			message: "cannot book your own service",
		},
		{
			name:    "InvalidState",
			err:     failure.InvalidState("cannot accept booking with status: accepted"),
			code:    http.StatusBadRequest,
			message: "cannot accept booking with status: accepted",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("seller profile already exists"),
			code:    http.StatusConflict,
			message: "seller profile already exists",
		},
		{
			name:    "Unimplemented",
			err:     failure.Unimplemented("CancelBooking"),
			code:    http.StatusNotImplemented,
			message: "CancelBooking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}

	result := failure.BadRequest(errors.New("validation failed"))

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest || f.Message != "validation failed" {
		t.Errorf("unexpected failure %+v", f)
	}
}

func TestInternalError(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil input")
	}

	result := failure.InternalError(errors.New("database connection failed"))

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, f.Code)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.NotFound("service not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := failure.GetCode(tt.input); result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
