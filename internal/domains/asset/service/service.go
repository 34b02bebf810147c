package service

import (
	"context"
	"database/sql"
	"fmt"

	"aset/config"
	"aset/infras/otel"
	"aset/internal/access"
	"aset/internal/domains/asset/model"
	"aset/internal/domains/asset/model/dto"
	"aset/internal/domains/asset/repository"
	locationModel "aset/internal/domains/location/model"
	locationRepo "aset/internal/domains/location/repository"
	"aset/permissions"
	"aset/shared"
	"aset/shared/cache"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/failure"
	"aset/shared/timezone"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAsset    = "asset:get"
	cacheGetAllAsset = "asset:gets"
	cacheCountAsset  = "asset:count"
)

type Asset interface {
	Create(ctx context.Context, req dto.CreateAssetRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAssetsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AssetResponse, error)
	Update(ctx context.Context, req dto.UpdateAssetRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Asset
	locations locationRepo.Location
	checker   access.Checker
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Asset, locations locationRepo.Location, checker access.Checker, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Asset {
	return &serviceImpl{
		repo:      repo,
		locations: locations,
		checker:   checker,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAssetRequest) (err error) {
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

	// Movable assets carry no location.
	if req.LocationID != constant.Empty {
		if err = s.checkLocationInProperty(ctx, req.LocationID, req.PropertyID); err != nil {
			return err
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.BadRequestFromString("property or location does not exist") // nolint:wrapcheck
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAsset)
		shared.InvalidateCaches(c, s.cache, cacheCountAsset)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAssetsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err = scopeToVisible(ctx, s.checker, filter)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAsset, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for assets")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count assets")

		return res, fmt.Errorf("failed to count assets: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assets")

		return res, fmt.Errorf("failed to get assets: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save assets to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAsset, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count assets")

		return res, fmt.Errorf("failed to count assets: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save asset count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AssetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	asset, err := s.getAccessible(ctx, id)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetAsset, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for asset")

		return res, nil
	}

	res.FromModel(asset)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save asset to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAssetRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanManageCatalog(role) {
		return failure.ForbiddenError
	}

	asset, err := s.getAccessible(ctx, id)
	if err != nil {
		return err
	}

	if req.LocationID != constant.Empty && req.LocationID != asset.LocationID.String {
		if err = s.checkLocationInProperty(ctx, req.LocationID, asset.PropertyID); err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if req.PurchaseDate != constant.Empty {
		if parsed, parseErr := timezone.Parse(constant.DateOnlyFormat, req.PurchaseDate); parseErr == nil {
			updatedFields[model.FieldPurchaseDate] = sql.NullTime{Time: parsed, Valid: true}
		}
	}

	if req.PurchasePrice != nil {
		updatedFields[model.FieldPurchasePrice] = sql.NullFloat64{Float64: *req.PurchasePrice, Valid: true}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update asset")

		return fmt.Errorf("failed to update asset: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAsset, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete asset cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAsset)
		shared.InvalidateCaches(c, s.cache, cacheCountAsset)
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
			return failure.Conflict("asset is referenced by maintenance orders") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete asset")

		return fmt.Errorf("failed to delete asset: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAsset, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete asset from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAsset)
		shared.InvalidateCaches(c, s.cache, cacheCountAsset)
	}()

	return nil
}

func (s *serviceImpl) getAccessible(ctx context.Context, id string) (model.Asset, error) {
	asset, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get asset")

		return asset, fmt.Errorf("failed to get asset: %w", err)
	}

	if asset.ID == constant.Empty {
		return asset, failure.NotFound("asset not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	allowed, err := s.checker.CanAccessProperty(ctx, user, role, asset.PropertyID)
	if err != nil {
		return asset, err
	}

	if !allowed {
		return asset, failure.ResourceRestrictedError
	}

	return asset, nil
}

// checkLocationInProperty rejects locations that belong to another property.
func (s *serviceImpl) checkLocationInProperty(ctx context.Context, locationID, propertyID string) error {
	location, err := s.locations.Get(ctx, shared.FilterByID(locationID, locationModel.FieldID, locationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get location")

		return fmt.Errorf("failed to get location: %w", err)
	}

	if location.ID == constant.Empty {
		return failure.BadRequestFromString("location does not exist") // nolint:wrapcheck
	}

	if location.PropertyID != propertyID {
		return failure.BadRequestFromString("location belongs to a different property") // nolint:wrapcheck
	}

	return nil
}

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
