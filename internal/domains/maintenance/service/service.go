package service

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"aset/config"
	"aset/infras/kafka"
	"aset/infras/otel"
	"aset/infras/s3"
	"aset/internal/access"
	assetModel "aset/internal/domains/asset/model"
	assetRepo "aset/internal/domains/asset/repository"
	locationModel "aset/internal/domains/location/model"
	locationRepo "aset/internal/domains/location/repository"
	"aset/internal/domains/maintenance/model"
	"aset/internal/domains/maintenance/model/dto"
	"aset/internal/domains/maintenance/repository"
	"aset/permissions"
	"aset/shared"
	"aset/shared/cache"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/failure"
	"aset/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetMaintenance    = "maintenance:get"
	cacheGetAllMaintenance = "maintenance:gets"
	cacheCountMaintenance  = "maintenance:count"

	evidenceRootDirectory = "properties"
)

// EvidenceFile pairs an opened multipart file with its header.
type EvidenceFile struct {
	File   multipart.File
	Header *multipart.FileHeader
}

type Maintenance interface {
	Create(ctx context.Context, req dto.CreateMaintenanceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMaintenanceResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MaintenanceResponse, error)
	Update(ctx context.Context, req dto.UpdateMaintenanceRequest, id string) error
	UpdateProgress(ctx context.Context, req dto.UpdateProgressRequest, id string) error
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, req dto.RejectMaintenanceRequest, id string) error
	UploadEvidence(ctx context.Context, id string, files []EvidenceFile) (dto.UploadEvidenceResponse, error)
}

type serviceImpl struct {
	repo      repository.Maintenance
	assets    assetRepo.Asset
	locations locationRepo.Location
	checker   access.Checker
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	kafka     kafka.Client
}

func New(
	repo repository.Maintenance,
	assets assetRepo.Asset,
	locations locationRepo.Location,
	checker access.Checker,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	kafka kafka.Client,
) Maintenance {
	return &serviceImpl{
		repo:      repo,
		assets:    assets,
		locations: locations,
		checker:   checker,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		kafka:     kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMaintenanceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanCreateMaintenance(role) {
		return failure.ForbiddenError
	}

	allowed, err := s.checker.CanAccessProperty(ctx, user, role, req.PropertyID)
	if err != nil {
		return err
	}

	if !allowed {
		return failure.ResourceRestrictedError
	}

	if err = s.checkTarget(ctx, req.MaintenanceType, req.AssetID, req.LocationID, req.PropertyID); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err = scopeToVisible(ctx, s.checker, filter)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMaintenance, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance orders")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance orders")

		return res, fmt.Errorf("failed to count maintenance orders: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance orders")

		return res, fmt.Errorf("failed to get maintenance orders: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance orders to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMaintenance, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance orders")

		return res, fmt.Errorf("failed to count maintenance orders: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.getAccessible(ctx, id)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetMaintenance, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance order")

		return res, nil
	}

	res.FromModel(order)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance order to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMaintenanceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	order, err := s.getAccessible(ctx, id)
	if err != nil {
		return err
	}

	if !permissions.CanManageMaintenanceFull(role, order.ApprovalStatus) {
		return failure.ForbiddenError
	}

	maintenanceType := order.MaintenanceType
	if req.MaintenanceType != constant.Empty {
		maintenanceType = req.MaintenanceType
	}

	updatedFields := shared.TransformFields(req, user)

	if req.AssetID != constant.Empty || req.LocationID != constant.Empty || req.MaintenanceType != constant.Empty {
		assetID := req.AssetID
		if assetID == constant.Empty {
			assetID = order.AssetID.String
		}

		locationID := req.LocationID
		if locationID == constant.Empty {
			locationID = order.LocationID.String
		}

		if err = s.checkTarget(ctx, maintenanceType, assetID, locationID, order.PropertyID); err != nil {
			return err
		}

		// An order targets exactly one of an asset or a location. Writing
		// the resolved side also nulls the other so a type change never
		// leaves a stale reference.
		switch maintenanceType {
		case model.TypePerbaikanAset:
			updatedFields[model.FieldAssetID] = sql.NullString{String: assetID, Valid: true}
			updatedFields[model.FieldLocationID] = sql.NullString{}
		case model.TypeRenovasiLokasi:
			updatedFields[model.FieldLocationID] = sql.NullString{String: locationID, Valid: true}
			updatedFields[model.FieldAssetID] = sql.NullString{}
		}
	}

	applyDateFields(updatedFields, req.StartDate, req.EndDate)

	if req.Cost != nil {
		updatedFields[model.FieldCost] = sql.NullFloat64{Float64: *req.Cost, Valid: true}
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update maintenance order")

		return fmt.Errorf("failed to update maintenance order: %w", err)
	}

	s.invalidateOrderCaches(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateProgress(ctx context.Context, req dto.UpdateProgressRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProgress")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanEditMaintenanceLimited(role) {
		return failure.ForbiddenError
	}

	order, err := s.getAccessible(ctx, id)
	if err != nil {
		return err
	}

	// Field edits only exist on approved orders. Pending orders wait for a
	// decision and rejected orders are read-only except delete.
	if order.ApprovalStatus != model.ApprovalApproved {
		return failure.ForbiddenError
	}

	updatedFields := shared.TransformFields(req, user)
	applyDateFields(updatedFields, req.StartDate, req.EndDate)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update maintenance progress")

		return fmt.Errorf("failed to update maintenance progress: %w", err)
	}

	s.invalidateOrderCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanDeleteMaintenance(role) {
		return failure.ForbiddenError
	}

	if _, err = s.getAccessible(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete maintenance order")

		return fmt.Errorf("failed to delete maintenance order: %w", err)
	}

	s.invalidateOrderCaches(ctx, id)

	return nil
}

// Approve moves a pending order to approved. Approved and rejected are
// terminal, so the transition is a conditional update: zero affected rows
// means another decision already landed.
func (s *serviceImpl) Approve(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.decide(ctx, id, model.ApprovalApproved, constant.Empty)

	return err
}

// Reject moves a pending order to rejected, recording an optional reason.
// Rejected orders are not resubmittable; a new order must be created.
func (s *serviceImpl) Reject(ctx context.Context, req dto.RejectMaintenanceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.decide(ctx, id, model.ApprovalRejected, req.RejectionReason)

	return err
}

func (s *serviceImpl) decide(ctx context.Context, id, decision, reason string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.CanApproveMaintenance(role) {
		return failure.ForbiddenError
	}

	order, err := s.getAccessible(ctx, id)
	if err != nil {
		return err
	}

	if order.ApprovalStatus != model.ApprovalPending {
		return failure.Conflict("maintenance order has already been decided") // nolint:wrapcheck
	}

	decidedAt := timezone.Now()

	updatedFields := map[string]any{
		model.FieldApprovalStatus: decision,
		model.FieldApprovedBy:     sql.NullString{String: user, Valid: true},
		model.FieldApprovedAt:     sql.NullTime{Time: decidedAt, Valid: true},
		constant.FieldModifiedAt:  decidedAt,
		constant.FieldModifiedBy:  user,
	}

	if decision == model.ApprovalRejected && reason != constant.Empty {
		updatedFields[model.FieldRejectionReason] = sql.NullString{String: reason, Valid: true}
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldApprovalStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.ApprovalPending,
				Table:    model.TableName,
			},
		},
	}

	affected, err := s.repo.UpdateChecked(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to record approval decision")

		return fmt.Errorf("failed to record approval decision: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("maintenance order has already been decided") // nolint:wrapcheck
	}

	s.invalidateOrderCaches(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.ApprovalEvent{
			OrderID:    order.ID,
			Code:       order.Code,
			PropertyID: order.PropertyID,
			Decision:   decision,
			Actor:      user,
			DecidedAt:  timezone.Format(decidedAt, constant.DateFormat),
			Reason:     reason,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.ApprovalTopic, kafka.Message{Key: order.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("order_id", order.ID).Msg("failed to publish approval event")
		}
	}()

	return nil
}

// UploadEvidence uploads the files one by one and appends the resulting URLs
// to the order. A failing file does not abort the batch; its error is
// reported per file name.
func (s *serviceImpl) UploadEvidence(ctx context.Context, id string, files []EvidenceFile) (res dto.UploadEvidenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadEvidence")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	order, err := s.getAccessible(ctx, id)
	if err != nil {
		return res, err
	}

	if order.ApprovalStatus != model.ApprovalApproved {
		return res, failure.ForbiddenError
	}

	bucketName := s.cfg.External.S3.EvidenceBucket
	directory := path.Join(evidenceRootDirectory, order.PropertyID, model.EntityName, order.ID)

	res.Uploaded = []string{}
	res.Failed = map[string]string{}

	for _, file := range files {
		filename := uuid.NewString()

		parts := strings.Split(file.Header.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, uploadErr := s.s3.UploadFile(ctx, bucketName, directory, file.File, file.Header, filename)
		if uploadErr != nil {
			log.Error().Err(uploadErr).Str("file", file.Header.Filename).Msg("failed to upload evidence file")
			res.Failed[file.Header.Filename] = uploadErr.Error()

			continue
		}

		res.Uploaded = append(res.Uploaded, url)
	}

	if len(res.Failed) == 0 {
		res.Failed = nil
	}

	if len(res.Uploaded) == 0 {
		return res, nil
	}

	urls := append(pq.StringArray{}, order.EvidenceURLs...)
	urls = append(urls, res.Uploaded...)

	updatedFields := map[string]any{
		model.FieldEvidenceURLs:  urls,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to attach evidence to maintenance order")

		return res, fmt.Errorf("failed to attach evidence to maintenance order: %w", err)
	}

	s.invalidateOrderCaches(ctx, id)

	return res, nil
}

func (s *serviceImpl) getAccessible(ctx context.Context, id string) (model.MaintenanceOrder, error) {
	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance order")

		return order, fmt.Errorf("failed to get maintenance order: %w", err)
	}

	if order.ID == constant.Empty {
		return order, failure.NotFound("maintenance order not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	allowed, err := s.checker.CanAccessProperty(ctx, user, role, order.PropertyID)
	if err != nil {
		return order, err
	}

	if !allowed {
		return order, failure.ResourceRestrictedError
	}

	return order, nil
}

// checkTarget enforces that a renovation targets a location and a repair
// targets an asset, and that the target lives in the order's property.
func (s *serviceImpl) checkTarget(ctx context.Context, maintenanceType, assetID, locationID, propertyID string) error {
	switch maintenanceType {
	case model.TypePerbaikanAset:
		if assetID == constant.Empty {
			return failure.BadRequestFromString("asset_id is required for perbaikan_aset") // nolint:wrapcheck
		}

		asset, err := s.assets.Get(ctx, shared.FilterByID(assetID, assetModel.FieldID, assetModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get asset: %w", err)
		}

		if asset.ID == constant.Empty {
			return failure.BadRequestFromString("asset does not exist") // nolint:wrapcheck
		}

		if asset.PropertyID != propertyID {
			return failure.BadRequestFromString("asset belongs to a different property") // nolint:wrapcheck
		}
	case model.TypeRenovasiLokasi:
		if locationID == constant.Empty {
			return failure.BadRequestFromString("location_id is required for renovasi_lokasi") // nolint:wrapcheck
		}

		location, err := s.locations.Get(ctx, shared.FilterByID(locationID, locationModel.FieldID, locationModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get location: %w", err)
		}

		if location.ID == constant.Empty {
			return failure.BadRequestFromString("location does not exist") // nolint:wrapcheck
		}

		if location.PropertyID != propertyID {
			return failure.BadRequestFromString("location belongs to a different property") // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) invalidateOrderCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMaintenance, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete maintenance order cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()
}

func applyDateFields(updatedFields map[string]any, startDate, endDate string) {
	if startDate != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, startDate); err == nil {
			updatedFields[model.FieldStartDate] = sql.NullTime{Time: parsed, Valid: true}
		}
	}

	if endDate != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, endDate); err == nil {
			updatedFields[model.FieldEndDate] = sql.NullTime{Time: parsed, Valid: true}
		}
	}
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
