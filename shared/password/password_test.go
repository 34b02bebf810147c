package password_test

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"aset/shared/password"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid login code",
			password:    "validCode123",
			expectError: false,
		},
		{
			name:        "empty login code",
			password:    "",
			expectError: true,
		},
		{
			name:        "short login code",
			password:    "abc",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if hash == "" {
				t.Error("expected non-empty hash")
			}

			if hash == tt.password {
				t.Error("hash must not equal the plain value")
			}
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correctCode")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectError error
	}{
		{
			name:        "matching login code",
			password:    "correctCode",
			hash:        hash,
			expectError: nil,
		},
		{
			name:        "wrong login code",
			password:    "wrongCode",
			hash:        hash,
			expectError: password.ErrInvalidPassword,
		},
		{
			name:        "empty login code",
			password:    "",
			hash:        hash,
			expectError: password.ErrInvalidPassword,
		},
		{
			name:        "empty hash",
			password:    "correctCode",
			hash:        "",
			expectError: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectError == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.expectError) {
				t.Errorf("expected %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("sameCode")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	second, err := password.Hash("sameCode")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	if first == second {
		t.Error("expected different hashes for the same input")
	}
}
