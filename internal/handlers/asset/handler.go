package asset

import (
	"net/http"

	"aset/infras/otel"
	"aset/internal/domains/asset/model"
	"aset/internal/domains/asset/model/dto"
	"aset/internal/domains/asset/service"
	"aset/shared"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/validator"
	"aset/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Asset
	otel    otel.Otel
}

func New(service service.Asset, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assets", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAsset)
		routerGroup.Get("/", handler.GetAssets)
		routerGroup.Get("/{id}", handler.GetAssetByID)
		routerGroup.Put("/{id}", handler.UpdateAsset)
		routerGroup.Delete("/{id}", handler.DeleteAsset)
	})
}

// CreateAsset handles the creation of a new asset.
// @Summary Create a new asset
// @Description Register an asset under a property and location. The asset code is assigned server-side.
// @Tags Asset
// @Accept json
// @Produce json
// @Param request body dto.CreateAssetRequest true "Asset payload"
// @Success 201 {object} response.Message "Asset created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assets [post]
// @Security BearerAuth
func (handler *Handler) CreateAsset(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAsset")
	defer scope.End()

	var req dto.CreateAssetRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create asset")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Asset created successfully")

	response.WithMessage(writer, http.StatusCreated, "Asset created successfully")
}

// GetAssets retrieves assets visible to the caller.
// @Summary Get all assets
// @Description Retrieve assets with optional filtering and pagination.
// @Tags Asset
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param location_id query string false "Filter by location"
// @Param category query string false "Filter by category"
// @Param condition query string false "Filter by condition"
// @Param status query string false "Filter by status"
// @Param search query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetAssetsResponse] "List of assets"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assets [get]
// @Security BearerAuth
func (handler *Handler) GetAssets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssets")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := buildListFilter(r)

	assets, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assets")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assets retrieved successfully")

	response.WithJSON(w, http.StatusOK, assets)
}

// GetAssetByID retrieves an asset by its ID.
// @Summary Get an asset by ID
// @Description Retrieve an asset by its unique identifier.
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} response.Data[dto.AssetResponse] "Asset details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assets/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssetByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	asset, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get asset by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Asset retrieved successfully")

	response.WithJSON(w, http.StatusOK, asset)
}

// UpdateAsset updates an existing asset by its ID.
// @Summary Update an asset by ID
// @Description Update the mutable fields of an asset. The asset code never changes.
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param request body dto.UpdateAssetRequest true "Asset payload"
// @Success 200 {object} response.Message "Asset updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assets/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAsset")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateAssetRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update asset")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Asset updated successfully")

	response.WithMessage(w, http.StatusOK, "Asset updated successfully")
}

// DeleteAsset deletes an asset by its ID.
// @Summary Delete an asset by ID
// @Description Delete an existing asset.
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} response.Message "Asset deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assets/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAsset")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete asset")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Asset deleted successfully")

	response.WithMessage(w, http.StatusOK, "Asset deleted successfully")
}

func buildListFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	query := r.URL.Query()

	eqFilters := []struct {
		field string
		value string
	}{
		{model.FieldPropertyID, query.Get(constant.RequestParamPropertyID)},
		{model.FieldLocationID, query.Get(model.FieldLocationID)},
		{model.FieldCategory, query.Get(model.FieldCategory)},
		{model.FieldCondition, query.Get(model.FieldCondition)},
		{model.FieldStatus, query.Get(model.FieldStatus)},
	}

	for _, eq := range eqFilters {
		if eq.value == constant.Empty {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    eq.field,
			Operator: gDto.FilterOperatorEq,
			Value:    eq.value,
			Table:    model.TableName,
		})
	}

	if search := shared.SanitizeSearch(query.Get(constant.RequestParamSearch)); search != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
