package maintenance

import (
	"net/http"

	"aset/infras/otel"
	"aset/internal/domains/maintenance/model"
	"aset/internal/domains/maintenance/model/dto"
	"aset/internal/domains/maintenance/service"
	"aset/shared"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/failure"
	"aset/shared/timezone"
	"aset/shared/validator"
	"aset/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMaintenance)
		routerGroup.Get("/", handler.GetMaintenanceOrders)
		routerGroup.Get("/{id}", handler.GetMaintenanceByID)
		routerGroup.Put("/{id}", handler.UpdateMaintenance)
		routerGroup.Put("/{id}/progress", handler.UpdateProgress)
		routerGroup.Delete("/{id}", handler.DeleteMaintenance)
		routerGroup.Post("/{id}/approve", handler.ApproveMaintenance)
		routerGroup.Post("/{id}/reject", handler.RejectMaintenance)
		routerGroup.Post("/{id}/evidence", handler.UploadEvidence)
	})
}

// CreateMaintenance files a new maintenance order.
// @Summary Create a maintenance order
// @Description File a maintenance order for an asset repair or a location renovation. The order starts pending approval.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Maintenance payload"
// @Success 201 {object} response.Message "Maintenance order created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [post]
// @Security BearerAuth
func (handler *Handler) CreateMaintenance(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaintenance")
	defer scope.End()

	var req dto.CreateMaintenanceRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Maintenance order created successfully")

	response.WithMessage(writer, http.StatusCreated, "Maintenance order created successfully")
}

// GetMaintenanceOrders retrieves maintenance orders visible to the caller.
// @Summary Get maintenance orders
// @Description Retrieve maintenance orders with optional filtering and pagination.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param maintenance_type query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Param approval_status query string false "Filter by approval status"
// @Param search query string false "Filter by title"
// @Param date_from query string false "Start date lower bound (inclusive)"
// @Param date_to query string false "Start date upper bound (inclusive)"
// @Success 200 {object} response.Data[dto.GetMaintenanceResponse] "List of maintenance orders"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [get]
// @Security BearerAuth
func (handler *Handler) GetMaintenanceOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := buildListFilter(r)

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// GetMaintenanceByID retrieves a maintenance order by its ID.
// @Summary Get a maintenance order by ID
// @Description Retrieve a maintenance order by its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance order ID"
// @Success 200 {object} response.Data[dto.MaintenanceResponse] "Maintenance order details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMaintenanceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	order, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance order by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance order retrieved successfully")

	response.WithJSON(w, http.StatusOK, order)
}

// UpdateMaintenance performs the full edit of a maintenance order.
// @Summary Update a maintenance order
// @Description Edit every field of an approved order, including cost, target, and type.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance order ID"
// @Param request body dto.UpdateMaintenanceRequest true "Maintenance payload"
// @Success 200 {object} response.Message "Maintenance order updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMaintenance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateMaintenanceRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance order updated successfully")

	response.WithMessage(w, http.StatusOK, "Maintenance order updated successfully")
}

// UpdateProgress performs the limited staff edit of a maintenance order.
// @Summary Update maintenance progress
// @Description Update status and dates only, regardless of approval status.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance order ID"
// @Param request body dto.UpdateProgressRequest true "Progress payload"
// @Success 200 {object} response.Message "Maintenance progress updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id}/progress [put]
// @Security BearerAuth
func (handler *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProgress")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateProgressRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProgress(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance progress")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance progress updated successfully")

	response.WithMessage(w, http.StatusOK, "Maintenance progress updated successfully")
}

// DeleteMaintenance deletes a maintenance order by its ID.
// @Summary Delete a maintenance order
// @Description Delete an existing maintenance order.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance order ID"
// @Success 200 {object} response.Message "Maintenance order deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMaintenance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete maintenance order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance order deleted successfully")

	response.WithMessage(w, http.StatusOK, "Maintenance order deleted successfully")
}

// ApproveMaintenance approves a pending maintenance order.
// @Summary Approve a maintenance order
// @Description Approve a pending order. Approval is terminal; a second decision gets a conflict.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance order ID"
// @Success 200 {object} response.Message "Maintenance order approved successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveMaintenance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Approve(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve maintenance order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance order approved successfully")

	response.WithMessage(w, http.StatusOK, "Maintenance order approved successfully")
}

// RejectMaintenance rejects a pending maintenance order.
// @Summary Reject a maintenance order
// @Description Reject a pending order with an optional reason. Rejection is terminal; a new order must be filed instead.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance order ID"
// @Param request body dto.RejectMaintenanceRequest false "Rejection payload"
// @Success 200 {object} response.Message "Maintenance order rejected successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectMaintenance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RejectMaintenanceRequest{}
	if r.Body != nil && r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	}

	if err := handler.service.Reject(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject maintenance order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance order rejected successfully")

	response.WithMessage(w, http.StatusOK, "Maintenance order rejected successfully")
}

// UploadEvidence attaches evidence photos to a maintenance order.
// @Summary Upload maintenance evidence
// @Description Upload one or more evidence files. Files are processed sequentially and failures are reported per file.
// @Tags Maintenance
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Maintenance order ID"
// @Param files formData file true "Evidence files"
// @Success 200 {object} response.Data[dto.UploadEvidenceResponse] "Upload result"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id}/evidence [post]
// @Security BearerAuth
func (handler *Handler) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadEvidence")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[constant.FormFiles]) == 0 {
		response.WithError(w, failure.BadRequestFromString("no files provided"))

		return
	}

	files := make([]service.EvidenceFile, 0, len(r.MultipartForm.File[constant.FormFiles]))

	for _, header := range r.MultipartForm.File[constant.FormFiles] {
		file, err := header.Open()
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("file", header.Filename).Msg("failed to open uploaded file")

			response.WithError(w, err)

			return
		}

		defer file.Close()

		files = append(files, service.EvidenceFile{File: file, Header: header})
	}

	res, err := handler.service.UploadEvidence(ctx, id, files)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload evidence")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Evidence uploaded")

	response.WithJSON(w, http.StatusOK, res)
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
		{model.FieldMaintenanceType, query.Get(model.FieldMaintenanceType)},
		{model.FieldStatus, query.Get(model.FieldStatus)},
		{model.FieldApprovalStatus, query.Get(model.FieldApprovalStatus)},
		{model.FieldAssetID, query.Get(model.FieldAssetID)},
		{model.FieldLocationID, query.Get(model.FieldLocationID)},
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
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	if from := query.Get(constant.RequestParamDateFrom); from != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, from); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				ArgName:  "start_date_from",
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    parsed,
				Table:    model.TableName,
			})
		}
	}

	if to := query.Get(constant.RequestParamDateTo); to != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, to); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				ArgName:  "start_date_to",
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    parsed,
				Table:    model.TableName,
			})
		}
	}

	return filterGroup
}
