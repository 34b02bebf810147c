package report

import (
	"fmt"
	"net/http"

	"aset/infras/otel"
	"aset/internal/domains/report/model/dto"
	"aset/internal/domains/report/service"
	"aset/shared/constant"
	"aset/shared/validator"
	"aset/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const noDataMessage = "No data matches the report filters"

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/assets", handler.GetAssetReport)
		routerGroup.Get("/assets/export", handler.ExportAssetReport)
		routerGroup.Get("/maintenance", handler.GetMaintenanceReport)
		routerGroup.Get("/maintenance/export", handler.ExportMaintenanceReport)
	})
}

// GetAssetReport builds the asset report projection.
// @Summary Get the asset report
// @Description Build the filtered asset report with translated labels.
// @Tags Report
// @Accept json
// @Produce json
// @Param scope query string false "Property scope (current or all)"
// @Param property_id query string false "Property to report on (scope=current)"
// @Param location_id query string false "Filter by location"
// @Param category query string false "Filter by category"
// @Param condition query string false "Filter by condition"
// @Param status query string false "Filter by status"
// @Param search query string false "Filter by name"
// @Param ids query []string false "Export exactly these asset IDs"
// @Success 200 {object} response.Data[dto.AssetReportResponse] "Asset report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/assets [get]
// @Security BearerAuth
func (handler *Handler) GetAssetReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssetReport")
	defer scope.End()

	req, err := assetRequestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Assets(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build asset report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Asset report built successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ExportAssetReport renders the asset report as a downloadable file.
// @Summary Export the asset report
// @Description Render the filtered asset report as an xlsx or pdf download.
// @Tags Report
// @Accept json
// @Produce application/octet-stream
// @Param format query string false "Export format (xlsx or pdf, default xlsx)"
// @Param scope query string false "Property scope (current or all)"
// @Param property_id query string false "Property to report on (scope=current)"
// @Success 200 {file} file "Rendered report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/assets/export [get]
// @Security BearerAuth
func (handler *Handler) ExportAssetReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportAssetReport")
	defer scope.End()

	req, err := assetRequestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	file, err := handler.service.ExportAssets(ctx, req, exportFormat(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export asset report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Asset report exported successfully")

	writeExport(w, file)
}

// GetMaintenanceReport builds the maintenance report projection.
// @Summary Get the maintenance report
// @Description Build the filtered maintenance report with translated labels.
// @Tags Report
// @Accept json
// @Produce json
// @Param scope query string false "Property scope (current or all)"
// @Param property_id query string false "Property to report on (scope=current)"
// @Param maintenance_type query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Param approval_status query string false "Filter by approval status"
// @Param search query string false "Filter by title"
// @Param date_from query string false "Start date lower bound (inclusive)"
// @Param date_to query string false "Start date upper bound (inclusive)"
// @Param ids query []string false "Export exactly these order IDs"
// @Success 200 {object} response.Data[dto.MaintenanceReportResponse] "Maintenance report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/maintenance [get]
// @Security BearerAuth
func (handler *Handler) GetMaintenanceReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceReport")
	defer scope.End()

	req, err := maintenanceRequestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Maintenance(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build maintenance report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance report built successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ExportMaintenanceReport renders the maintenance report as a downloadable file.
// @Summary Export the maintenance report
// @Description Render the filtered maintenance report as an xlsx or pdf download.
// @Tags Report
// @Accept json
// @Produce application/octet-stream
// @Param format query string false "Export format (xlsx or pdf, default xlsx)"
// @Param scope query string false "Property scope (current or all)"
// @Param property_id query string false "Property to report on (scope=current)"
// @Success 200 {file} file "Rendered report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/maintenance/export [get]
// @Security BearerAuth
func (handler *Handler) ExportMaintenanceReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportMaintenanceReport")
	defer scope.End()

	req, err := maintenanceRequestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	file, err := handler.service.ExportMaintenance(ctx, req, exportFormat(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export maintenance report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance report exported successfully")

	writeExport(w, file)
}

func assetRequestFromQuery(r *http.Request) (dto.AssetReportRequest, error) {
	query := r.URL.Query()

	req := dto.AssetReportRequest{
		Scope:      query.Get(constant.RequestParamScope),
		PropertyID: query.Get(constant.RequestParamPropertyID),
		LocationID: query.Get("location_id"),
		Category:   query.Get("category"),
		Condition:  query.Get("condition"),
		Status:     query.Get("status"),
		Search:     query.Get(constant.RequestParamSearch),
		IDs:        query["ids"],
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, err
	}

	return req, nil
}

func maintenanceRequestFromQuery(r *http.Request) (dto.MaintenanceReportRequest, error) {
	query := r.URL.Query()

	req := dto.MaintenanceReportRequest{
		Scope:           query.Get(constant.RequestParamScope),
		PropertyID:      query.Get(constant.RequestParamPropertyID),
		MaintenanceType: query.Get("maintenance_type"),
		Status:          query.Get("status"),
		ApprovalStatus:  query.Get("approval_status"),
		Search:          query.Get(constant.RequestParamSearch),
		DateFrom:        query.Get(constant.RequestParamDateFrom),
		DateTo:          query.Get(constant.RequestParamDateTo),
		IDs:             query["ids"],
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, err
	}

	return req, nil
}

func exportFormat(r *http.Request) string {
	format := r.URL.Query().Get("format")
	if format == constant.Empty {
		return service.FormatXLSX
	}

	return format
}

func writeExport(w http.ResponseWriter, file dto.ExportFile) {
	if file.FileName == constant.Empty {
		response.WithMessage(w, http.StatusOK, noDataMessage)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, file.ContentType)
	w.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(file.Content); err != nil {
		log.Error().Err(err).Msg("failed to write export response")
	}
}
