package validator_test

import (
	"strings"
	"testing"

	"aset/shared/validator"
)

type createRequest struct {
	Email      string `json:"email"       validate:"required,email"`
	Role       string `json:"role"        validate:"required,oneof=superadmin hotel_manager supervisor staff"`
	PropertyID string `json:"property_id" validate:"omitempty,uuid"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"email":"test@example.com","role":"staff"}`,
			wantErr: false,
		},
		{
			name:    "valid body with uuid",
			body:    `{"email":"test@example.com","role":"staff","property_id":"4a8f6c1e-2f6b-4c8e-9d3a-1b2c3d4e5f60"}`,
			wantErr: false,
		},
		{
			name:    "malformed json",
			body:    `{"email":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"email":"test@example.com"}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"email":"not-an-email","role":"staff"}`,
			wantErr: true,
		},
		{
			name:    "role outside the allowed set",
			body:    `{"email":"test@example.com","role":"guest"}`,
			wantErr: true,
		},
		{
			name:    "invalid uuid",
			body:    `{"email":"test@example.com","role":"staff","property_id":"not-a-uuid"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := createRequest{Email: "test@example.com", Role: "supervisor"}
	if err := validator.ValidateStruct(&valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	invalid := createRequest{Email: "test@example.com"}
	if err := validator.ValidateStruct(&invalid); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("4a8f6c1e-2f6b-4c8e-9d3a-1b2c3d4e5f60", "uuid"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("not-a-uuid", "uuid"); err == nil {
		t.Error("expected error, got nil")
	}
}
