package service

import (
	"context"
	"fmt"

	"aset/config"
	"aset/infras/otel"
	"aset/internal/access"
	"aset/internal/domains/location/model"
	"aset/internal/domains/location/model/dto"
	"aset/internal/domains/location/repository"
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
	cacheGetLocation    = "location:get"
	cacheGetAllLocation = "location:gets"
	cacheCountLocation  = "location:count"
)

type Location interface {
	Create(ctx context.Context, req dto.CreateLocationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLocationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.LocationResponse, error)
	Update(ctx context.Context, req dto.UpdateLocationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Location
	checker access.Checker
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Location, checker access.Checker, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Location {
	return &serviceImpl{
		repo:    repo,
		checker: checker,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLocationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageCatalog(role) {
		return failure.ForbiddenError
	}

	allowed, err := s.checker.CanAccessProperty(ctx, user, role, req.PropertyID)
	if err != nil {
		return err
	}

	if !allowed {
		return failure.ResourceRestrictedError
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.BadRequestFromString("property does not exist") // nolint:wrapcheck
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLocation)
		shared.InvalidateCaches(c, s.cache, cacheCountLocation)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err = scopeToVisible(ctx, s.checker, filter)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLocation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for locations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count locations")

		return res, fmt.Errorf("failed to count locations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get locations")

		return res, fmt.Errorf("failed to get locations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save locations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountLocation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count locations")

		return res, fmt.Errorf("failed to count locations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save location count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	location, err := s.getAccessible(ctx, id)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetLocation, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for location")

		return res, nil
	}

	res.FromModel(location)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save location to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateLocationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageCatalog(role) {
		return failure.ForbiddenError
	}

	if _, err = s.getAccessible(ctx, id); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update location")

		return fmt.Errorf("failed to update location: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLocation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete location cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLocation)
		shared.InvalidateCaches(c, s.cache, cacheCountLocation)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanDeleteCatalog(role) {
		return failure.ForbiddenError
	}

	if _, err = s.getAccessible(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("location still has assets or maintenance orders") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete location")

		return fmt.Errorf("failed to delete location: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLocation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete location from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLocation)
		shared.InvalidateCaches(c, s.cache, cacheCountLocation)
	}()

	return nil
}

// getAccessible loads the location and verifies the caller may touch its property.
func (s *serviceImpl) getAccessible(ctx context.Context, id string) (model.Location, error) {
	location, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get location")

		return location, fmt.Errorf("failed to get location: %w", err)
	}

	if location.ID == constant.Empty {
		return location, failure.NotFound("location not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	allowed, err := s.checker.CanAccessProperty(ctx, user, role, location.PropertyID)
	if err != nil {
		return location, err
	}

	if !allowed {
		return location, failure.ResourceRestrictedError
	}

	return location, nil
}

// scopeToVisible narrows a list filter to properties the caller may see.
func scopeToVisible(ctx context.Context, checker access.Checker, filter gDto.FilterGroup) (gDto.FilterGroup, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	ids, all, err := checker.VisiblePropertyIDs(ctx, user, role)
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
		Field:    model.FieldPropertyID,
		ArgName:  "visible_property_id",
		Operator: gDto.FilterOperatorIn,
		Value:    ids,
		Table:    model.TableName,
	})

	return filter, nil
}
