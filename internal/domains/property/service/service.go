package service

import (
	"context"
	"fmt"

	"aset/config"
	"aset/infras/otel"
	"aset/internal/access"
	"aset/internal/domains/property/model"
	"aset/internal/domains/property/model/dto"
	"aset/internal/domains/property/repository"
	"aset/permissions"
	"aset/shared"
	"aset/shared/cache"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/failure"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProperty    = "property:get"
	cacheGetAllProperty = "property:gets"
	cacheCountProperty  = "property:count"
)

type Property interface {
	Create(ctx context.Context, req dto.CreatePropertyRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPropertiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PropertyResponse, error)
	Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Property
	checker access.Checker
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Property, checker access.Checker, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Property {
	return &serviceImpl{
		repo:    repo,
		checker: checker,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePropertyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageUsersAndProperties(role) {
		return failure.ForbiddenError
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err = s.scopeToVisible(ctx, filter)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	allowed, err := s.checker.CanAccessProperty(ctx, user, role, id)
	if err != nil {
		return res, err
	}

	if !allowed {
		return res, failure.ResourceRestrictedError
	}

	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	property, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	res.FromModel(property)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageUsersAndProperties(role) {
		return failure.ForbiddenError
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check property existence")

		return fmt.Errorf("failed to check property existence: %w", err)
	}

	if !exist {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update property")

		return fmt.Errorf("failed to update property: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete property cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageUsersAndProperties(role) {
		return failure.ForbiddenError
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check property existence")

		return fmt.Errorf("failed to check property existence: %w", err)
	}

	if !exist {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("property still has locations, assets, or maintenance orders") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete property")

		return fmt.Errorf("failed to delete property: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete property from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
	}()

	return nil
}

// scopeToVisible narrows the list filter to the caller's assigned properties.
func (s *serviceImpl) scopeToVisible(ctx context.Context, filter gDto.FilterGroup) (gDto.FilterGroup, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	ids, all, err := s.checker.VisiblePropertyIDs(ctx, user, role)
	if err != nil {
		return filter, err
	}

	if all {
		return filter, nil
	}

	if len(ids) == 0 {
		ids = []string{constant.Empty}
	}

	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldID,
		ArgName:  "visible_property_id",
		Operator: gDto.FilterOperatorIn,
		Value:    ids,
		Table:    model.TableName,
	})

	return filter, nil
}
