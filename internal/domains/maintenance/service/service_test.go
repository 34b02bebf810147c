package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aset/config"
	kafkaMocks "aset/infras/kafka/mocks"
	"aset/infras/otel/mocks"
	s3Mocks "aset/infras/s3/mocks"
	accessMocks "aset/internal/access/mocks"
	assetMocks "aset/internal/domains/asset/mocks"
	assetModel "aset/internal/domains/asset/model"
	locationMocks "aset/internal/domains/location/mocks"
	locationModel "aset/internal/domains/location/model"
	maintenanceMocks "aset/internal/domains/maintenance/mocks"
	"aset/internal/domains/maintenance/model"
	"aset/internal/domains/maintenance/model/dto"
	"aset/internal/domains/maintenance/service"
	cacheMocks "aset/shared/cache/mocks"
	"aset/shared/constant"
	gDto "aset/shared/dto"
)

func TestMaintenanceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAssets, mockLocations, mockChecker, cfg, mockCache, mockOtel, mockS3, mockKafka)

	validAsset := assetModel.Asset{
		ID:         "asset-id-123",
		PropertyID: "property-id-123",
		Code:       "AST-001",
		Name:       "AC Split 1PK",
	}

	tests := []struct {
		name      string
		role      string
		req       dto.CreateMaintenanceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful repair order by staff",
			role: constant.RoleStaff,
			req: dto.CreateMaintenanceRequest{
				PropertyID:      "property-id-123",
				Title:           "Perbaikan AC kamar 101",
				MaintenanceType: model.TypePerbaikanAset,
				AssetID:         "asset-id-123",
			},
			setupMock: func() {
				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleStaff, "property-id-123").
					Return(true, nil)

				mockAssets.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAsset, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "property not assigned to user",
			role: constant.RoleStaff,
			req: dto.CreateMaintenanceRequest{
				PropertyID:      "other-property-id",
				Title:           "Perbaikan AC",
				MaintenanceType: model.TypePerbaikanAset,
				AssetID:         "asset-id-123",
			},
			setupMock: func() {
				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleStaff, "other-property-id").
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "asset belongs to a different property",
			role: constant.RoleSupervisor,
			req: dto.CreateMaintenanceRequest{
				PropertyID:      "property-id-456",
				Title:           "Perbaikan AC",
				MaintenanceType: model.TypePerbaikanAset,
				AssetID:         "asset-id-123",
			},
			setupMock: func() {
				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleSupervisor, "property-id-456").
					Return(true, nil)

				mockAssets.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAsset, nil)
			},
			wantErr: true,
		},
		{
			name: "renovation without location",
			role: constant.RoleSupervisor,
			req: dto.CreateMaintenanceRequest{
				PropertyID:      "property-id-123",
				Title:           "Renovasi lobby",
				MaintenanceType: model.TypeRenovasiLokasi,
			},
			setupMock: func() {
				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleSupervisor, "property-id-123").
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			role: constant.RoleHotelManager,
			req: dto.CreateMaintenanceRequest{
				PropertyID:      "property-id-123",
				Title:           "Perbaikan AC",
				MaintenanceType: model.TypePerbaikanAset,
				AssetID:         "asset-id-123",
			},
			setupMock: func() {
				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleHotelManager, "property-id-123").
					Return(true, nil)

				mockAssets.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAsset, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaintenanceService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.ApprovalTopic = "maintenance-approvals"

	svc := service.New(mockRepo, mockAssets, mockLocations, mockChecker, cfg, mockCache, mockOtel, mockS3, mockKafka)

	pendingOrder := model.MaintenanceOrder{
		ID:              "order-id-123",
		PropertyID:      "property-id-123",
		Code:            "MNT-20260115-0001",
		Title:           "Perbaikan AC kamar 101",
		MaintenanceType: model.TypePerbaikanAset,
		Status:          model.StatusPending,
		ApprovalStatus:  model.ApprovalPending,
	}

	approvedOrder := pendingOrder
	approvedOrder.ApprovalStatus = model.ApprovalApproved

	tests := []struct {
		name      string
		role      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful approval by supervisor",
			role: constant.RoleSupervisor,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleSupervisor, "property-id-123").
					Return(true, nil)

				mockRepo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "maintenance-approvals", gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "hotel manager cannot approve",
			role:      constant.RoleHotelManager,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "staff cannot approve",
			role:      constant.RoleStaff,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "order not found",
			role: constant.RoleSuperAdmin,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.MaintenanceOrder{}, nil)
			},
			wantErr: true,
		},
		{
			name: "order already decided",
			role: constant.RoleSupervisor,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedOrder, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleSupervisor, "property-id-123").
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "concurrent decision already landed",
			role: constant.RoleSupervisor,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleSupervisor, "property-id-123").
					Return(true, nil)

				mockRepo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: true,
		},
		{
			name: "order in a restricted property",
			role: constant.RoleSupervisor,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleSupervisor, "property-id-123").
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.Approve(ctx, "order-id-123")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaintenanceService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.ApprovalTopic = "maintenance-approvals"

	svc := service.New(mockRepo, mockAssets, mockLocations, mockChecker, cfg, mockCache, mockOtel, mockS3, mockKafka)

	pendingOrder := model.MaintenanceOrder{
		ID:             "order-id-123",
		PropertyID:     "property-id-123",
		Code:           "MNT-20260115-0001",
		ApprovalStatus: model.ApprovalPending,
	}

	tests := []struct {
		name      string
		role      string
		req       dto.RejectMaintenanceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful rejection with reason",
			role: constant.RoleSuperAdmin,
			req:  dto.RejectMaintenanceRequest{RejectionReason: "anggaran tidak tersedia"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleSuperAdmin, "property-id-123").
					Return(true, nil)

				mockRepo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "maintenance-approvals", gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "staff cannot reject",
			role:      constant.RoleStaff,
			req:       dto.RejectMaintenanceRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.Reject(ctx, tt.req, "order-id-123")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaintenanceService_UpdateProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAssets, mockLocations, mockChecker, cfg, mockCache, mockOtel, mockS3, mockKafka)

	approvedOrder := model.MaintenanceOrder{
		ID:             "order-id-123",
		PropertyID:     "property-id-123",
		Title:          "Perbaikan AC kamar 101",
		ApprovalStatus: model.ApprovalApproved,
	}

	pendingOrder := approvedOrder
	pendingOrder.ApprovalStatus = model.ApprovalPending

	rejectedOrder := approvedOrder
	rejectedOrder.ApprovalStatus = model.ApprovalRejected

	tests := []struct {
		name      string
		role      string
		req       dto.UpdateProgressRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "staff updates status on an approved order",
			role: constant.RoleStaff,
			req:  dto.UpdateProgressRequest{Status: model.StatusInProgress},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedOrder, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleStaff, "property-id-123").
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updatedFields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusInProgress, updatedFields[model.FieldStatus])
						assert.NotContains(t, updatedFields, model.FieldTitle)
						assert.NotContains(t, updatedFields, model.FieldCost)

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "order still awaiting approval",
			role: constant.RoleStaff,
			req:  dto.UpdateProgressRequest{Status: model.StatusCompleted},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleStaff, "property-id-123").
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "rejected order is read-only",
			role: constant.RoleStaff,
			req:  dto.UpdateProgressRequest{Status: model.StatusCancelled},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rejectedOrder, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleStaff, "property-id-123").
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name:      "supervisor takes the full edit path instead",
			role:      constant.RoleSupervisor,
			req:       dto.UpdateProgressRequest{Status: model.StatusCompleted},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.UpdateProgress(ctx, tt.req, "order-id-123")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaintenanceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAssets, mockLocations, mockChecker, cfg, mockCache, mockOtel, mockS3, mockKafka)

	approvedRepair := model.MaintenanceOrder{
		ID:              "order-id-123",
		PropertyID:      "property-id-123",
		Title:           "Perbaikan AC kamar 101",
		MaintenanceType: model.TypePerbaikanAset,
		AssetID:         sql.NullString{String: "asset-id-123", Valid: true},
		ApprovalStatus:  model.ApprovalApproved,
	}

	pendingRepair := approvedRepair
	pendingRepair.ApprovalStatus = model.ApprovalPending

	location := locationModel.Location{
		ID:         "location-id-456",
		PropertyID: "property-id-123",
		Name:       "Lobby",
	}

	tests := []struct {
		name      string
		role      string
		req       dto.UpdateMaintenanceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "type change to renovation nulls the asset reference",
			role: constant.RoleHotelManager,
			req: dto.UpdateMaintenanceRequest{
				MaintenanceType: model.TypeRenovasiLokasi,
				LocationID:      "location-id-456",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedRepair, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleHotelManager, "property-id-123").
					Return(true, nil)

				mockLocations.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(location, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updatedFields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, sql.NullString{String: "location-id-456", Valid: true}, updatedFields[model.FieldLocationID])
						assert.Equal(t, sql.NullString{}, updatedFields[model.FieldAssetID])

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "full edit rejected while awaiting approval",
			role: constant.RoleHotelManager,
			req:  dto.UpdateMaintenanceRequest{Title: "Judul baru"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingRepair, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleHotelManager, "property-id-123").
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "staff cannot take the full edit path",
			role: constant.RoleStaff,
			req:  dto.UpdateMaintenanceRequest{Title: "Judul baru"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedRepair, nil)

				mockChecker.EXPECT().
					CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleStaff, "property-id-123").
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			err := svc.Update(ctx, tt.req, "order-id-123")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaintenanceService_UploadEvidence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockAssets := assetMocks.NewMockAsset(ctrl)
	mockLocations := locationMocks.NewMockLocation(ctrl)
	mockChecker := accessMocks.NewMockChecker(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAssets, mockLocations, mockChecker, cfg, mockCache, mockOtel, mockS3, mockKafka)

	pendingOrder := model.MaintenanceOrder{
		ID:             "order-id-123",
		PropertyID:     "property-id-123",
		ApprovalStatus: model.ApprovalPending,
	}

	rejectedOrder := pendingOrder
	rejectedOrder.ApprovalStatus = model.ApprovalRejected

	tests := []struct {
		name    string
		order   model.MaintenanceOrder
		wantErr bool
	}{
		{
			name:    "pending order accepts no evidence",
			order:   pendingOrder,
			wantErr: true,
		},
		{
			name:    "rejected order accepts no evidence",
			order:   rejectedOrder,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.order, nil)

			mockChecker.EXPECT().
				CanAccessProperty(gomock.Any(), "test-user-id", constant.RoleStaff, "property-id-123").
				Return(true, nil)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleStaff)

			_, err := svc.UploadEvidence(ctx, "order-id-123", nil)

			if tt.wantErr {
				assert.Error(t, err)
			}
		})
	}
}
