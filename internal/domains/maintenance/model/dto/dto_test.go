package dto_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aset/internal/domains/maintenance/model"
	"aset/internal/domains/maintenance/model/dto"
	"aset/shared/timezone"
)

func TestGenerateCode(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	code := dto.GenerateCode(now)

	assert.Regexp(t, regexp.MustCompile(`^MNT-20260115-\d{4}$`), code)
}

func TestCreateMaintenanceRequest_ToModel(t *testing.T) {
	cost := 1500000.0

	req := dto.CreateMaintenanceRequest{
		PropertyID:      "property-id-123",
		Title:           "Perbaikan AC kamar 101",
		MaintenanceType: model.TypePerbaikanAset,
		AssetID:         "asset-id-123",
		Description:     "AC tidak dingin",
		StartDate:       "2026-01-20",
		Cost:            &cost,
	}

	order := req.ToModel("user-id-123")

	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.Code)
	assert.Equal(t, "property-id-123", order.PropertyID)
	assert.Equal(t, model.TypePerbaikanAset, order.MaintenanceType)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, model.ApprovalPending, order.ApprovalStatus)
	assert.Equal(t, sql.NullString{String: "asset-id-123", Valid: true}, order.AssetID)
	assert.False(t, order.LocationID.Valid)
	assert.True(t, order.StartDate.Valid)
	assert.False(t, order.EndDate.Valid)
	assert.Equal(t, sql.NullFloat64{Float64: cost, Valid: true}, order.Cost)
	assert.NotNil(t, order.EvidenceURLs)
	assert.Empty(t, order.EvidenceURLs)
	assert.Equal(t, "user-id-123", order.CreatedBy)
	assert.Equal(t, "user-id-123", order.ModifiedBy)
}

func TestCreateMaintenanceRequest_ToModelTargetExclusive(t *testing.T) {
	t.Run("repair order drops a stray location reference", func(t *testing.T) {
		req := dto.CreateMaintenanceRequest{
			PropertyID:      "property-id-123",
			Title:           "Perbaikan AC kamar 101",
			MaintenanceType: model.TypePerbaikanAset,
			AssetID:         "asset-id-123",
			LocationID:      "location-id-456",
		}

		order := req.ToModel("user-id-123")

		assert.True(t, order.AssetID.Valid)
		assert.False(t, order.LocationID.Valid)
	})

	t.Run("renovation order drops a stray asset reference", func(t *testing.T) {
		req := dto.CreateMaintenanceRequest{
			PropertyID:      "property-id-123",
			Title:           "Renovasi lobby",
			MaintenanceType: model.TypeRenovasiLokasi,
			AssetID:         "asset-id-123",
			LocationID:      "location-id-456",
		}

		order := req.ToModel("user-id-123")

		assert.False(t, order.AssetID.Valid)
		assert.True(t, order.LocationID.Valid)
	})
}

func TestMaintenanceResponse_FromModel(t *testing.T) {
	t.Run("fresh order with null optionals", func(t *testing.T) {
		order := model.MaintenanceOrder{
			ID:              "order-id-123",
			PropertyID:      "property-id-123",
			Code:            "MNT-20260115-0001",
			Title:           "Renovasi lobby",
			MaintenanceType: model.TypeRenovasiLokasi,
			Status:          model.StatusPending,
			ApprovalStatus:  model.ApprovalPending,
		}

		var res dto.MaintenanceResponse
		res.FromModel(order)

		assert.Equal(t, "order-id-123", res.ID)
		assert.Equal(t, "MNT-20260115-0001", res.Code)
		assert.Empty(t, res.AssetID)
		assert.Empty(t, res.LocationID)
		assert.Empty(t, res.StartDate)
		assert.Nil(t, res.Cost)
		assert.Empty(t, res.ApprovedBy)
		assert.Empty(t, res.RejectionReason)
		assert.NotNil(t, res.EvidenceURLs)
		assert.Empty(t, res.EvidenceURLs)
	})

	t.Run("decided order carries approval fields", func(t *testing.T) {
		decidedAt := timezone.Now()

		order := model.MaintenanceOrder{
			ID:              "order-id-123",
			PropertyID:      "property-id-123",
			Code:            "MNT-20260115-0002",
			Title:           "Perbaikan lift",
			MaintenanceType: model.TypePerbaikanAset,
			AssetID:         sql.NullString{String: "asset-id-123", Valid: true},
			Status:          model.StatusInProgress,
			ApprovalStatus:  model.ApprovalRejected,
			ApprovedBy:      sql.NullString{String: "supervisor-id", Valid: true},
			ApprovedAt:      sql.NullTime{Time: decidedAt, Valid: true},
			RejectionReason: sql.NullString{String: "anggaran tidak tersedia", Valid: true},
			EvidenceURLs:    []string{"https://cdn.example.com/evidence/1.jpg"},
		}

		var res dto.MaintenanceResponse
		res.FromModel(order)

		assert.Equal(t, "asset-id-123", res.AssetID)
		assert.Equal(t, model.ApprovalRejected, res.ApprovalStatus)
		assert.Equal(t, "supervisor-id", res.ApprovedBy)
		assert.NotEmpty(t, res.ApprovedAt)
		assert.Equal(t, "anggaran tidak tersedia", res.RejectionReason)
		assert.Len(t, res.EvidenceURLs, 1)
	})
}

func TestGetMaintenanceResponse_FromModels(t *testing.T) {
	models := []model.MaintenanceOrder{
		{ID: "order-1", Code: "MNT-20260115-0001"},
		{ID: "order-2", Code: "MNT-20260115-0002"},
	}

	var res dto.GetMaintenanceResponse
	res.FromModels(models, 12, 5)

	assert.Len(t, res.Orders, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
