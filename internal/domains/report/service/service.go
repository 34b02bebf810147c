package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"aset/infras/otel"
	"aset/internal/access"
	assetModel "aset/internal/domains/asset/model"
	assetRepo "aset/internal/domains/asset/repository"
	locationModel "aset/internal/domains/location/model"
	locationRepo "aset/internal/domains/location/repository"
	maintenanceModel "aset/internal/domains/maintenance/model"
	maintenanceRepo "aset/internal/domains/maintenance/repository"
	propertyModel "aset/internal/domains/property/model"
	propertyRepo "aset/internal/domains/property/repository"
	"aset/internal/domains/report/model/dto"
	"aset/shared"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	"aset/shared/failure"
	"aset/shared/timezone"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"

	assetReportTitle       = "Laporan Aset"
	maintenanceReportTitle = "Laporan Pemeliharaan"

	allPropertiesLabel = "Semua Properti"
	allPropertiesSlug  = "all_properties"
)

type Report interface {
	Assets(ctx context.Context, req dto.AssetReportRequest) (dto.AssetReportResponse, error)
	Maintenance(ctx context.Context, req dto.MaintenanceReportRequest) (dto.MaintenanceReportResponse, error)
	ExportAssets(ctx context.Context, req dto.AssetReportRequest, format string) (dto.ExportFile, error)
	ExportMaintenance(ctx context.Context, req dto.MaintenanceReportRequest, format string) (dto.ExportFile, error)
}

type serviceImpl struct {
	assets      assetRepo.Asset
	maintenance maintenanceRepo.Maintenance
	properties  propertyRepo.Property
	locations   locationRepo.Location
	checker     access.Checker
	otel        otel.Otel
}

func New(assets assetRepo.Asset, maintenance maintenanceRepo.Maintenance, properties propertyRepo.Property, locations locationRepo.Location, checker access.Checker, otel otel.Otel) Report {
	return &serviceImpl{
		assets:      assets,
		maintenance: maintenance,
		properties:  properties,
		locations:   locations,
		checker:     checker,
		otel:        otel,
	}
}

// reportScope is the resolved property scope of one report request.
type reportScope struct {
	propertyID string
	title      string
	slug       string
}

func (s *serviceImpl) Assets(ctx context.Context, req dto.AssetReportRequest) (res dto.AssetReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assets")
	defer scope.End()
	defer scope.TraceIfError(err)

	rScope, err := s.resolveScope(ctx, req.Scope, req.PropertyID)
	if err != nil {
		return res, err
	}

	rows, err := s.assetRows(ctx, req, rScope)
	if err != nil {
		return res, err
	}

	res.Title = fmt.Sprintf("%s - %s", assetReportTitle, rScope.title)
	res.Rows = rows
	res.TotalData = len(rows)

	return res, nil
}

func (s *serviceImpl) Maintenance(ctx context.Context, req dto.MaintenanceReportRequest) (res dto.MaintenanceReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Maintenance")
	defer scope.End()
	defer scope.TraceIfError(err)

	rScope, err := s.resolveScope(ctx, req.Scope, req.PropertyID)
	if err != nil {
		return res, err
	}

	rows, err := s.maintenanceRows(ctx, req, rScope)
	if err != nil {
		return res, err
	}

	res.Title = fmt.Sprintf("%s - %s", maintenanceReportTitle, rScope.title)
	res.Rows = rows
	res.TotalData = len(rows)

	return res, nil
}

func (s *serviceImpl) ExportAssets(ctx context.Context, req dto.AssetReportRequest, format string) (file dto.ExportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportAssets")
	defer scope.End()
	defer scope.TraceIfError(err)

	rScope, err := s.resolveScope(ctx, req.Scope, req.PropertyID)
	if err != nil {
		return file, err
	}

	rows, err := s.assetRows(ctx, req, rScope)
	if err != nil {
		return file, err
	}

	if len(rows) == 0 {
		return file, nil
	}

	title := fmt.Sprintf("%s - %s", assetReportTitle, rScope.title)
	headers := []string{"Kode", "Nama", "Properti", "Lokasi", "Kategori", "Kondisi", "Status", "Tanggal Pembelian", "Harga Pembelian"}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{
			row.Code,
			row.Name,
			row.Property,
			row.Location,
			row.Category,
			row.Condition,
			row.Status,
			row.PurchaseDate,
			formatPrice(row.PurchasePrice),
		}
	}

	return renderExport(format, fmt.Sprintf("assets_%s", rScope.slug), title, headers, cells)
}

func (s *serviceImpl) ExportMaintenance(ctx context.Context, req dto.MaintenanceReportRequest, format string) (file dto.ExportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportMaintenance")
	defer scope.End()
	defer scope.TraceIfError(err)

	rScope, err := s.resolveScope(ctx, req.Scope, req.PropertyID)
	if err != nil {
		return file, err
	}

	rows, err := s.maintenanceRows(ctx, req, rScope)
	if err != nil {
		return file, err
	}

	if len(rows) == 0 {
		return file, nil
	}

	title := fmt.Sprintf("%s - %s", maintenanceReportTitle, rScope.title)
	headers := []string{"Kode", "Judul", "Properti", "Jenis", "Status", "Persetujuan", "Tanggal Mulai", "Tanggal Selesai", "Biaya"}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{
			row.Code,
			row.Title,
			row.Property,
			row.MaintenanceType,
			row.Status,
			row.ApprovalStatus,
			row.StartDate,
			row.EndDate,
			formatPrice(row.Cost),
		}
	}

	return renderExport(format, fmt.Sprintf("maintenance_%s", rScope.slug), title, headers, cells)
}

func (s *serviceImpl) resolveScope(ctx context.Context, requestScope, propertyID string) (reportScope, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if requestScope == dto.ScopeAll {
		if role != constant.RoleSuperAdmin {
			return reportScope{}, failure.ForbiddenError
		}

		return reportScope{title: allPropertiesLabel, slug: allPropertiesSlug}, nil
	}

	if propertyID == constant.Empty {
		return reportScope{}, failure.BadRequestFromString("property_id is required") // nolint:wrapcheck
	}

	allowed, err := s.checker.CanAccessProperty(ctx, user, role, propertyID)
	if err != nil {
		return reportScope{}, err
	}

	if !allowed {
		return reportScope{}, failure.ResourceRestrictedError
	}

	property, err := s.properties.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return reportScope{}, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return reportScope{}, failure.NotFound("property not found") // nolint:wrapcheck
	}

	return reportScope{
		propertyID: propertyID,
		title:      property.Name,
		slug:       slugify(property.Name),
	}, nil
}

func (s *serviceImpl) assetRows(ctx context.Context, req dto.AssetReportRequest, rScope reportScope) ([]dto.AssetReportRow, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if rScope.propertyID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    assetModel.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    rScope.propertyID,
			Table:    assetModel.TableName,
		})
	}

	if len(req.IDs) > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "selected_id",
			Field:    assetModel.FieldID,
			Operator: gDto.FilterOperatorIn,
			Value:    req.IDs,
			Table:    assetModel.TableName,
		})
	} else {
		eqFilters := []struct {
			field string
			value string
		}{
			{assetModel.FieldLocationID, req.LocationID},
			{assetModel.FieldCategory, req.Category},
			{assetModel.FieldCondition, req.Condition},
			{assetModel.FieldStatus, req.Status},
		}

		for _, eq := range eqFilters {
			if eq.value == constant.Empty {
				continue
			}

			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    eq.field,
				Operator: gDto.FilterOperatorEq,
				Value:    eq.value,
				Table:    assetModel.TableName,
			})
		}

		if search := shared.SanitizeSearch(req.Search); search != constant.Empty {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    assetModel.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    search,
				Table:    assetModel.TableName,
			})
		}
	}

	assets, err := s.assets.GetAll(ctx, gDto.QueryParams{SortBy: assetModel.FieldCode, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assets for report")

		return nil, fmt.Errorf("failed to get assets for report: %w", err)
	}

	propertyNames, err := s.propertyNames(ctx)
	if err != nil {
		return nil, err
	}

	locationNames, err := s.locationNames(ctx, rScope.propertyID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AssetReportRow, len(assets))
	for i, asset := range assets {
		row := dto.AssetReportRow{
			Code:      asset.Code,
			Name:      asset.Name,
			Property:  propertyNames[asset.PropertyID],
			Location:  locationNames[asset.LocationID.String],
			Category:  labelOr(assetModel.CategoryLabels, asset.Category),
			Condition: labelOr(assetModel.ConditionLabels, asset.Condition),
			Status:    labelOr(assetModel.StatusLabels, asset.Status),
		}

		if asset.PurchaseDate.Valid {
			row.PurchaseDate = timezone.Format(asset.PurchaseDate.Time, constant.DateOnlyFormat)
		}

		if asset.PurchasePrice.Valid {
			price := asset.PurchasePrice.Float64
			row.PurchasePrice = &price
		}

		rows[i] = row
	}

	return rows, nil
}

func (s *serviceImpl) maintenanceRows(ctx context.Context, req dto.MaintenanceReportRequest, rScope reportScope) ([]dto.MaintenanceReportRow, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if rScope.propertyID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    maintenanceModel.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    rScope.propertyID,
			Table:    maintenanceModel.TableName,
		})
	}

	if len(req.IDs) > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "selected_id",
			Field:    maintenanceModel.FieldID,
			Operator: gDto.FilterOperatorIn,
			Value:    req.IDs,
			Table:    maintenanceModel.TableName,
		})
	} else {
		eqFilters := []struct {
			field string
			value string
		}{
			{maintenanceModel.FieldMaintenanceType, req.MaintenanceType},
			{maintenanceModel.FieldStatus, req.Status},
			{maintenanceModel.FieldApprovalStatus, req.ApprovalStatus},
		}

		for _, eq := range eqFilters {
			if eq.value == constant.Empty {
				continue
			}

			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    eq.field,
				Operator: gDto.FilterOperatorEq,
				Value:    eq.value,
				Table:    maintenanceModel.TableName,
			})
		}

		if search := shared.SanitizeSearch(req.Search); search != constant.Empty {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    maintenanceModel.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    search,
				Table:    maintenanceModel.TableName,
			})
		}

		if req.DateFrom != constant.Empty {
			if parsed, err := timezone.Parse(constant.DateOnlyFormat, req.DateFrom); err == nil {
				filter.Filters = append(filter.Filters, gDto.Filter{
					ArgName:  "start_date_from",
					Field:    maintenanceModel.FieldStartDate,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    parsed,
					Table:    maintenanceModel.TableName,
				})
			}
		}

		if req.DateTo != constant.Empty {
			if parsed, err := timezone.Parse(constant.DateOnlyFormat, req.DateTo); err == nil {
				filter.Filters = append(filter.Filters, gDto.Filter{
					ArgName:  "start_date_to",
					Field:    maintenanceModel.FieldStartDate,
					Operator: gDto.FilterOperatorLessEq,
					Value:    parsed,
					Table:    maintenanceModel.TableName,
				})
			}
		}
	}

	orders, err := s.maintenance.GetAll(ctx, gDto.QueryParams{SortBy: maintenanceModel.FieldCode, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance orders for report")

		return nil, fmt.Errorf("failed to get maintenance orders for report: %w", err)
	}

	propertyNames, err := s.propertyNames(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.MaintenanceReportRow, len(orders))
	for i, order := range orders {
		row := dto.MaintenanceReportRow{
			Code:            order.Code,
			Title:           order.Title,
			Property:        propertyNames[order.PropertyID],
			MaintenanceType: labelOr(maintenanceModel.TypeLabels, order.MaintenanceType),
			Status:          labelOr(maintenanceModel.StatusLabels, order.Status),
			ApprovalStatus:  labelOr(maintenanceModel.ApprovalLabels, order.ApprovalStatus),
		}

		if order.StartDate.Valid {
			row.StartDate = timezone.Format(order.StartDate.Time, constant.DateOnlyFormat)
		}

		if order.EndDate.Valid {
			row.EndDate = timezone.Format(order.EndDate.Time, constant.DateOnlyFormat)
		}

		if order.Cost.Valid {
			cost := order.Cost.Float64
			row.Cost = &cost
		}

		rows[i] = row
	}

	return rows, nil
}

func (s *serviceImpl) propertyNames(ctx context.Context) (map[string]string, error) {
	properties, err := s.properties.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties for report")

		return nil, fmt.Errorf("failed to get properties for report: %w", err)
	}

	names := make(map[string]string, len(properties))
	for _, property := range properties {
		names[property.ID] = property.Name
	}

	return names, nil
}

func (s *serviceImpl) locationNames(ctx context.Context, propertyID string) (map[string]string, error) {
	filter := gDto.FilterGroup{}

	if propertyID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    locationModel.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    locationModel.TableName,
		})
	}

	locations, err := s.locations.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get locations for report")

		return nil, fmt.Errorf("failed to get locations for report: %w", err)
	}

	names := make(map[string]string, len(locations))
	for _, location := range locations {
		names[location.ID] = location.Name
	}

	return names, nil
}

// labelOr translates an enum code and falls back to the raw value for
// codes that predate the label table.
func labelOr(labels map[string]string, code string) string {
	if label, ok := labels[code]; ok {
		return label
	}

	return code
}

func formatPrice(price *float64) string {
	if price == nil {
		return constant.Empty
	}

	return fmt.Sprintf("%.2f", *price)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "_")

	return slug
}

func renderExport(format, baseName, title string, headers []string, rows [][]string) (dto.ExportFile, error) {
	switch format {
	case FormatPDF:
		content, err := renderPDF(title, headers, rows)
		if err != nil {
			return dto.ExportFile{}, err
		}

		return dto.ExportFile{
			FileName:    baseName + ".pdf",
			ContentType: contentTypePDF,
			Content:     content,
		}, nil
	case FormatXLSX:
		content, err := renderXLSX(title, headers, rows)
		if err != nil {
			return dto.ExportFile{}, err
		}

		return dto.ExportFile{
			FileName:    baseName + ".xlsx",
			ContentType: contentTypeXLSX,
			Content:     content,
		}, nil
	default:
		return dto.ExportFile{}, failure.BadRequestFromString("unsupported export format") // nolint:wrapcheck
	}
}

func renderXLSX(title string, headers []string, rows [][]string) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	if err := file.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("failed to write sheet title: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve header cell: %w", err)
		}

		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+3)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve data cell: %w", err)
			}

			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

func renderPDF(title string, headers []string, rows [][]string) ([]byte, error) {
	pdf := fpdf.New(fpdf.OrientationLandscape, "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(headers))

	pdf.SetFont("Arial", "B", 9)

	for _, header := range headers {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "C", false, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 8)

	for _, row := range rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, value, "1", 0, "L", false, 0, "")
		}

		pdf.Ln(-1)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buffer.Bytes(), nil
}
