package property

import (
	"net/http"

	"aset/infras/otel"
	"aset/internal/domains/property/model"
	"aset/internal/domains/property/model/dto"
	"aset/internal/domains/property/service"
	"aset/shared"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/validator"
	"aset/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Property
	otel    otel.Otel
}

func New(service service.Property, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProperty)
		routerGroup.Get("/", handler.GetProperties)
		routerGroup.Get("/{id}", handler.GetPropertyByID)
		routerGroup.Put("/{id}", handler.UpdateProperty)
		routerGroup.Delete("/{id}", handler.DeleteProperty)
	})
}

// CreateProperty handles the creation of a new property.
// @Summary Create a new property
// @Description Create a new hotel property.
// @Tags Property
// @Accept json
// @Produce json
// @Param request body dto.CreatePropertyRequest true "Property payload"
// @Success 201 {object} response.Message "Property created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [post]
// @Security BearerAuth
func (handler *Handler) CreateProperty(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProperty")
	defer scope.End()

	var req dto.CreatePropertyRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create property")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Property created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Property created successfully")
}

// GetProperties retrieves all properties visible to the caller.
// @Summary Get all properties
// @Description Retrieve all properties with optional filtering and pagination.
// @Tags Property
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "List of properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [get]
// @Security BearerAuth
func (handler *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if search := shared.SanitizeSearch(r.URL.Query().Get(constant.RequestParamSearch)); search != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	properties, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Properties retrieved successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// GetPropertyByID retrieves a property by its ID.
// @Summary Get a property by ID
// @Description Retrieve a property by its unique identifier.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyResponse] "Property details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	property, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property retrieved successfully")

	response.WithJSON(w, http.StatusOK, property)
}

// UpdateProperty updates an existing property by its ID.
// @Summary Update a property by ID
// @Description Update the details of an existing property.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Property payload"
// @Success 200 {object} response.Message "Property updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdatePropertyRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property updated successfully")

	response.WithMessage(w, http.StatusOK, "Property updated successfully")
}

// DeleteProperty deletes a property by its ID.
// @Summary Delete a property by ID
// @Description Delete an existing property.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Message "Property deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property deleted successfully")

	response.WithMessage(w, http.StatusOK, "Property deleted successfully")
}
