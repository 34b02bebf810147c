package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"aset/config"
	"aset/infras/otel"
	"aset/internal/domains/user/model"
	"aset/internal/domains/user/model/dto"
	"aset/internal/domains/user/repository"
	"aset/permissions"
	"aset/shared"
	"aset/shared/cache"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/failure"
	"aset/shared/password"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllUser = "user:gets"
	cacheCountUser  = "user:count"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.CreateUserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, req dto.DeleteUserRequest) (dto.DeleteUserResponse, error)
}

type serviceImpl struct {
	profileRepo    repository.Profile
	assignmentRepo repository.Assignment
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(profileRepo repository.Profile, assignmentRepo repository.Assignment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		profileRepo:    profileRepo,
		assignmentRepo: assignmentRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.CreateUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageUsersAndProperties(role) {
		return res, failure.ForbiddenError
	}

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(req.Email),
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.profileRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("email already registered")
	}

	hashedLoginCode, err := password.Hash(req.LoginCode)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash login code")

		return res, fmt.Errorf("failed to hash login code: %w", err)
	}

	profile := req.ToModel(user, hashedLoginCode)

	tx, err := s.profileRepo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.profileRepo.InsertTx(ctx, tx, profile); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	if len(req.PropertyIDs) > 0 {
		if err = s.assignmentRepo.InsertBulkTx(ctx, tx, req.ToAssignments(profile.ID, user)); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
				return res, failure.BadRequestFromString("property does not exist") // nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to create property assignments")

			return res, fmt.Errorf("failed to create property assignments: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return res, fmt.Errorf("failed to commit transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
		shared.InvalidateCaches(c, s.cache, cacheCountUser)
	}()

	res.Success = true
	res.UserID = profile.ID

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageUsersAndProperties(role) {
		return res, failure.ForbiddenError
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	profiles, err := s.profileRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	assignments, err := s.assignmentsByUser(ctx, profiles)
	if err != nil {
		return res, err
	}

	res.FromModels(profiles, assignments, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountUser, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.profileRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteUserRequest) (res dto.DeleteUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageUsersAndProperties(role) {
		return res, failure.ForbiddenError
	}

	profileFilter := shared.FilterByID(req.UserID, model.FieldID, model.TableName)

	exist, err := s.profileRepo.Exist(ctx, profileFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check user existence")

		return res, fmt.Errorf("failed to check user existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	tx, err := s.profileRepo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	assignmentFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.UserID,
				Table:    model.AssignmentTableName,
			},
		},
	}

	if err = s.assignmentRepo.DeleteTx(ctx, tx, assignmentFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete property assignments")

		return res, fmt.Errorf("failed to delete property assignments: %w", err)
	}

	if err = s.profileRepo.DeleteTx(ctx, tx, profileFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return res, fmt.Errorf("failed to delete user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return res, fmt.Errorf("failed to commit transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
		shared.InvalidateCaches(c, s.cache, cacheCountUser)
	}()

	res.Success = true

	return res, nil
}

func (s *serviceImpl) assignmentsByUser(ctx context.Context, profiles []model.Profile) (map[string][]string, error) {
	result := map[string][]string{}

	if len(profiles) == 0 {
		return result, nil
	}

	ids := make([]string, len(profiles))
	for i, profile := range profiles {
		ids[i] = profile.ID
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    model.AssignmentTableName,
			},
		},
	}

	assignments, err := s.assignmentRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property assignments")

		return nil, fmt.Errorf("failed to get property assignments: %w", err)
	}

	for _, assignment := range assignments {
		result[assignment.UserID] = append(result[assignment.UserID], assignment.PropertyID)
	}

	return result, nil
}
