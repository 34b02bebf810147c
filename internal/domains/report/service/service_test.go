package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aset/infras/otel/mocks"
	accessMocks "aset/internal/access/mocks"
	assetMocks "aset/internal/domains/asset/mocks"
	assetModel "aset/internal/domains/asset/model"
	locationMocks "aset/internal/domains/location/mocks"
	locationModel "aset/internal/domains/location/model"
	maintenanceMocks "aset/internal/domains/maintenance/mocks"
	maintenanceModel "aset/internal/domains/maintenance/model"
	propertyMocks "aset/internal/domains/property/mocks"
	propertyModel "aset/internal/domains/property/model"
	"aset/internal/domains/report/model/dto"
	"aset/internal/domains/report/service"
	"aset/shared/constant"
	gDto "aset/shared/dto"
)

func TestReportService_Assets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockMaintenance := maintenanceMocks.NewMockMaintenance(ctrl)
	mockProperties := propertyMocks.NewMockProperty(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockAssets, mockMaintenance, mockProperties, mockLocations, mockChecker, mockOtel)

	property := propertyModel.Property{
		ID:   "property-id-123",
		Name: "Hotel Melati",
	}

	asset := assetModel.Asset{
		ID:            "asset-id-123",
		PropertyID:    "property-id-123",
		LocationID:    sql.NullString{String: "location-id-123", Valid: true},
		Code:          "AST-001",
		Name:          "AC Split 1PK",
		Category:      assetModel.CategoryPeralatanKamar,
		Condition:     assetModel.ConditionBaik,
		Status:        assetModel.StatusAktif,
		PurchasePrice: sql.NullFloat64{Float64: 3500000, Valid: true},
	}

	location := locationModel.Location{
		ID:         "location-id-123",
		PropertyID: "property-id-123",
		Name:       "Kamar 101",
	}

	tests := []struct {
		name      string
		role      string
		req       dto.AssetReportRequest
		setupMock func()
		wantErr   bool
		wantTitle string
		wantRows  int
	}{
		{
			name: "all properties as superadmin",
			role: constant.RoleSuperAdmin,
			req:  dto.AssetReportRequest{Scope: dto.ScopeAll},
			setupMock: func() {
				mockAssets.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]assetModel.Asset{asset}, nil)

				mockProperties.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]propertyModel.Property{property}, nil)

				mockLocations.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]locationModel.Location{location}, nil)
			},
			wantErr:   false,
			wantTitle: "Laporan Aset - Semua Properti",
			wantRows:  1,
		},
		{
			name:      "all properties forbidden for hotel manager",
			role:      constant.RoleHotelManager,
			req:       dto.AssetReportRequest{Scope: dto.ScopeAll},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "current scope without property id",
			role:      constant.RoleHotelManager,
			req:       dto.AssetReportRequest{Scope: dto.ScopeCurrent},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "restricted property",
			role: constant.RoleStaff,
			req:  dto.AssetReportRequest{Scope: dto.ScopeCurrent, PropertyID: "property-id-123"},
			setupMock: func() {
				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleStaff, "property-id-123").
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "current property scope",
			role: constant.RoleHotelManager,
			req:  dto.AssetReportRequest{Scope: dto.ScopeCurrent, PropertyID: "property-id-123"},
			setupMock: func() {
				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleHotelManager, "property-id-123").
					Return(true, nil)

				mockProperties.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(property, nil)

				mockAssets.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]assetModel.Asset{asset}, nil)

				mockProperties.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]propertyModel.Property{property}, nil)

				mockLocations.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]locationModel.Location{location}, nil)
			},
			wantErr:   false,
			wantTitle: "Laporan Aset - Hotel Melati",
			wantRows:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			res, err := svc.Assets(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTitle, res.Title)
			assert.Len(t, res.Rows, tt.wantRows)
			assert.Equal(t, "Hotel Melati", res.Rows[0].Property)
			assert.Equal(t, "Kamar 101", res.Rows[0].Location)
		})
	}
}

func TestReportService_AssetSelectionOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockMaintenance := maintenanceMocks.NewMockMaintenance(ctrl)
	mockProperties := propertyMocks.NewMockProperty(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockAssets, mockMaintenance, mockProperties, mockLocations, mockChecker, mockOtel)

	assets := []assetModel.Asset{
		{ID: "asset-id-1", PropertyID: "property-id-123", Code: "AST-001", Name: "AC Split 1PK"},
		{ID: "asset-id-2", PropertyID: "property-id-123", Code: "AST-002", Name: "Kulkas Mini"},
		{ID: "asset-id-3", PropertyID: "property-id-123", Code: "AST-003", Name: "TV LED 32"},
	}

	setupNames := func() {
		mockProperties.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]propertyModel.Property{}, nil)

		mockLocations.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]locationModel.Location{}, nil)
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

	t.Run("checked selection exports exactly the selected rows", func(t *testing.T) {
		mockAssets.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]assetModel.Asset, error) {
				var hasSelection, hasCategory bool

				for _, f := range filter.Filters {
					fl, ok := f.(gDto.Filter)
					if !ok {
						continue
					}

					if fl.Field == assetModel.FieldID && fl.Operator == gDto.FilterOperatorIn {
						hasSelection = true

						assert.Equal(t, []string{"asset-id-2"}, fl.Value)
					}

					if fl.Field == assetModel.FieldCategory {
						hasCategory = true
					}
				}

				assert.True(t, hasSelection)
				assert.False(t, hasCategory)

				return assets[1:2], nil
			})

		setupNames()

		res, err := svc.Assets(ctx, dto.AssetReportRequest{
			Scope:    dto.ScopeAll,
			Category: assetModel.CategoryPeralatanDapur,
			IDs:      []string{"asset-id-2"},
		})

		assert.NoError(t, err)
		assert.Len(t, res.Rows, 1)
		assert.Equal(t, "AST-002", res.Rows[0].Code)
	})

	t.Run("empty selection keeps the filtered set", func(t *testing.T) {
		mockAssets.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]assetModel.Asset, error) {
				var hasSelection, hasCategory bool

				for _, f := range filter.Filters {
					fl, ok := f.(gDto.Filter)
					if !ok {
						continue
					}

					if fl.Field == assetModel.FieldID && fl.Operator == gDto.FilterOperatorIn {
						hasSelection = true
					}

					if fl.Field == assetModel.FieldCategory {
						hasCategory = true
					}
				}

				assert.False(t, hasSelection)
				assert.True(t, hasCategory)

				return assets, nil
			})

		setupNames()

		res, err := svc.Assets(ctx, dto.AssetReportRequest{
			Scope:    dto.ScopeAll,
			Category: assetModel.CategoryPeralatanDapur,
		})

		assert.NoError(t, err)
		assert.Len(t, res.Rows, 3)
	})
}

func TestReportService_ExportAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockMaintenance := maintenanceMocks.NewMockMaintenance(ctrl)
	mockProperties := propertyMocks.NewMockProperty(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockAssets, mockMaintenance, mockProperties, mockLocations, mockChecker, mockOtel)

	asset := assetModel.Asset{
		ID:         "asset-id-123",
		PropertyID: "property-id-123",
		Code:       "AST-001",
		Name:       "AC Split 1PK",
	}

	setupRows := func(assets []assetModel.Asset) func() {
		return func() {
			mockAssets.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(assets, nil)

			mockProperties.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]propertyModel.Property{}, nil)

			mockLocations.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]locationModel.Location{}, nil)
		}
	}

	tests := []struct {
		name         string
		format       string
		setupMock    func()
		wantErr      bool
		wantFileName string
	}{
		{
			name:         "xlsx export",
			format:       service.FormatXLSX,
			setupMock:    setupRows([]assetModel.Asset{asset}),
			wantErr:      false,
			wantFileName: "assets_all_properties.xlsx",
		},
		{
			name:         "pdf export",
			format:       service.FormatPDF,
			setupMock:    setupRows([]assetModel.Asset{asset}),
			wantErr:      false,
			wantFileName: "assets_all_properties.pdf",
		},
		{
			name:         "no matching rows yields empty file",
			format:       service.FormatXLSX,
			setupMock:    setupRows([]assetModel.Asset{}),
			wantErr:      false,
			wantFileName: "",
		},
		{
			name:      "unsupported format",
			format:    "csv",
			setupMock: setupRows([]assetModel.Asset{asset}),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

			file, err := svc.ExportAssets(ctx, dto.AssetReportRequest{Scope: dto.ScopeAll}, tt.format)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFileName, file.FileName)

			if tt.wantFileName != "" {
				assert.NotEmpty(t, file.Content)
				assert.NotEmpty(t, file.ContentType)
			} else {
				assert.Empty(t, file.Content)
			}
		})
	}
}

func TestReportService_ExportMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockMaintenance := maintenanceMocks.NewMockMaintenance(ctrl)
	mockProperties := propertyMocks.NewMockProperty(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockAssets, mockMaintenance, mockProperties, mockLocations, mockChecker, mockOtel)

	order := maintenanceModel.MaintenanceOrder{
		ID:              "order-id-123",
		PropertyID:      "property-id-123",
		Code:            "MNT-20260115-0001",
		Title:           "Perbaikan AC kamar 101",
		MaintenanceType: maintenanceModel.TypePerbaikanAset,
		Status:          maintenanceModel.StatusCompleted,
		ApprovalStatus:  maintenanceModel.ApprovalApproved,
	}

	mockMaintenance.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]maintenanceModel.MaintenanceOrder{order}, nil)

	mockProperties.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]propertyModel.Property{{ID: "property-id-123", Name: "Hotel Melati"}}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

	file, err := svc.ExportMaintenance(ctx, dto.MaintenanceReportRequest{Scope: dto.ScopeAll}, service.FormatXLSX)

	assert.NoError(t, err)
	assert.Equal(t, "maintenance_all_properties.xlsx", file.FileName)
	assert.NotEmpty(t, file.Content)
}
