package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"aset/config"
	"aset/infras/jwt"
	"aset/infras/otel"
	"aset/internal/domains/auth/model/dto"
	userModel "aset/internal/domains/user/model"
	userRepo "aset/internal/domains/user/repository"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/failure"
	"aset/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	profileRepo userRepo.Profile
	cfg         *config.Config
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(profileRepo userRepo.Profile, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		profileRepo: profileRepo,
		cfg:         cfg,
		otel:        otel,
		jwtService:  jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(req.Email),
				Table:    userModel.TableName,
			},
		},
	}

	profile, err := s.profileRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or login code")
	}

	if err := password.Verify(req.LoginCode, profile.LoginCode); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong login code")

		return res, failure.BadRequestFromString("invalid email or login code")
	}

	if !profile.Active {
		return res, failure.BadRequestFromString("user account is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(profile.ID, profile.Email, profile.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.UserID = profile.ID
	res.Email = profile.Email
	res.FullName = profile.FullName
	res.Role = profile.Role

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
