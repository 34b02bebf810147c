package location

import (
	"net/http"

	"aset/infras/otel"
	"aset/internal/domains/location/model"
	"aset/internal/domains/location/model/dto"
	"aset/internal/domains/location/service"
	"aset/shared"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/validator"
	"aset/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Location
	otel    otel.Otel
}

func New(service service.Location, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/locations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLocation)
		routerGroup.Get("/", handler.GetLocations)
		routerGroup.Get("/{id}", handler.GetLocationByID)
		routerGroup.Put("/{id}", handler.UpdateLocation)
		routerGroup.Delete("/{id}", handler.DeleteLocation)
	})
}

// CreateLocation handles the creation of a new location.
// @Summary Create a new location
// @Description Create a new location inside a property.
// @Tags Location
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "Location payload"
// @Success 201 {object} response.Message "Location created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/locations [post]
// @Security BearerAuth
func (handler *Handler) CreateLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLocation")
	defer scope.End()

	var req dto.CreateLocationRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create location")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Location created successfully")

	response.WithMessage(writer, http.StatusCreated, "Location created successfully")
}

// GetLocations retrieves locations visible to the caller.
// @Summary Get all locations
// @Description Retrieve locations with optional filtering and pagination.
// @Tags Location
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param location_type query string false "Filter by type"
// @Param search query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetLocationsResponse] "List of locations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/locations [get]
// @Security BearerAuth
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if propertyID := r.URL.Query().Get(constant.RequestParamPropertyID); propertyID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    model.TableName,
		})
	}

	if locationType := r.URL.Query().Get(model.FieldLocationType); locationType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocationType,
			Operator: gDto.FilterOperatorEq,
			Value:    locationType,
			Table:    model.TableName,
		})
	}

	if search := shared.SanitizeSearch(r.URL.Query().Get(constant.RequestParamSearch)); search != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	locations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Locations retrieved successfully")

	response.WithJSON(w, http.StatusOK, locations)
}

// GetLocationByID retrieves a location by its ID.
// @Summary Get a location by ID
// @Description Retrieve a location by its unique identifier.
// @Tags Location
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Data[dto.LocationResponse] "Location details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/locations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	location, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get location by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Location retrieved successfully")

	response.WithJSON(w, http.StatusOK, location)
}

// UpdateLocation updates an existing location by its ID.
// @Summary Update a location by ID
// @Description Update the details of an existing location.
// @Tags Location
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body dto.UpdateLocationRequest true "Location payload"
// @Success 200 {object} response.Message "Location updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/locations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLocation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateLocationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Location updated successfully")

	response.WithMessage(w, http.StatusOK, "Location updated successfully")
}

// DeleteLocation deletes a location by its ID.
// @Summary Delete a location by ID
// @Description Delete an existing location.
// @Tags Location
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Message "Location deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/locations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLocation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Location deleted successfully")

	response.WithMessage(w, http.StatusOK, "Location deleted successfully")
}
