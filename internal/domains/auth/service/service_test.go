package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aset/config"
	"aset/infras/jwt"
	jwtMocks "aset/infras/jwt/mocks"
	"aset/infras/otel/mocks"
	"aset/internal/domains/auth/model/dto"
	"aset/internal/domains/auth/service"
	userMocks "aset/internal/domains/user/mocks"
	userModel "aset/internal/domains/user/model"
	"aset/shared/constant"
	gModel "aset/shared/model"
	"aset/shared/timezone"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := userMocks.NewMockProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockProfileRepo, cfg, mockOtel, mockJWT)

	// Valid profile for successful login
	validProfile := userModel.Profile{
		ID:        "user-id-123",
		Email:     "test@example.com",
		FullName:  "Test User",
		Role:      constant.RoleStaff,
		LoginCode: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:     "test@example.com",
				LoginCode: "password",
			},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProfile, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validProfile.ID, validProfile.Email, validProfile.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "non-existent email",
			req: dto.LoginRequest{
				Email:     "nonexistent@example.com",
				LoginCode: "password",
			},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.Profile{}, nil)
			},
			wantErr: true,
		},
		{
			name: "database error",
			req: dto.LoginRequest{
				Email:     "test@example.com",
				LoginCode: "password",
			},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.Profile{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "wrong login code",
			req: dto.LoginRequest{
				Email:     "test@example.com",
				LoginCode: "wrongcode",
			},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProfile, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Email:     "test@example.com",
				LoginCode: "password",
			},
			setupMock: func() {
				inactiveProfile := validProfile
				inactiveProfile.Active = false

				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactiveProfile, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:     "test@example.com",
				LoginCode: "password",
			},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validProfile, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validProfile.ID, validProfile.Email, validProfile.Role).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, validProfile.ID, res.UserID)
			assert.Equal(t, validProfile.Role, res.Role)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := userMocks.NewMockProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockProfileRepo, cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "expired-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("expired-token").
					Return(nil, jwt.ErrExpiredToken)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "new-access-token", res.AccessToken)
		})
	}
}
