package validator_test

import (
	"strings"
	"testing"
	"village/shared/validator"
)

type bookingPayload struct {
	ServiceID string `validate:"required" json:"service_id"`
	Date      string `validate:"required" json:"date"`
	Time      string `validate:"required" json:"time"`
	Status    string `validate:"omitempty,oneof=pending" json:"status"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        bookingPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: bookingPayload{
				ServiceID: "550e8400-e29b-41d4-a716-446655440000",
				Date:      "2025-06-16",
				Time:      "14:00",
			},
			expectError: false,
		},
		{
			name: "explicit pending status is allowed",
			data: bookingPayload{
				ServiceID: "550e8400-e29b-41d4-a716-446655440000",
				Date:      "2025-06-16",
				Time:      "14:00",
				Status:    "pending",
			},
			expectError: false,
		},
		{
			name: "non-pending status is rejected",
			data: bookingPayload{
				ServiceID: "550e8400-e29b-41d4-a716-446655440000",
				Date:      "2025-06-16",
				Time:      "14:00",
				Status:    "accepted",
			},
			expectError: true,
		},
		{
			name: "missing service id",
			data: bookingPayload{
				Date: "2025-06-16",
				Time: "14:00",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"service_id":"550e8400-e29b-41d4-a716-446655440000","date":"2025-06-16","time":"14:00"}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"service_id":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingPayload
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("buyer", "oneof=buyer seller"); err != nil {
		t.Errorf("expected no validation error, got: %v", err)
	}

	if err := validator.ValidateVar("admin", "oneof=buyer seller"); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestValidationMessages(t *testing.T) {
	data := bookingPayload{}

	err := validator.ValidateStruct(&data)
	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected descriptive error message containing 'required', got: %s", err.Error())
	}
}
