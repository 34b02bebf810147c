package dto_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"aset/internal/domains/asset/model"
	"aset/internal/domains/asset/model/dto"
	"aset/shared/validator"
)

func TestCreateAssetRequest_ToModel(t *testing.T) {
	t.Run("fixed asset keeps its location", func(t *testing.T) {
		req := dto.CreateAssetRequest{
			PropertyID: "property-id-123",
			LocationID: "location-id-123",
			Name:       "AC Split 1PK",
			Category:   model.CategoryPeralatanKamar,
			Condition:  model.ConditionBaik,
		}

		asset := req.ToModel("user-id-123")

		assert.NotEmpty(t, asset.ID)
		assert.NotEmpty(t, asset.Code)
		assert.Equal(t, sql.NullString{String: "location-id-123", Valid: true}, asset.LocationID)
		assert.Equal(t, model.StatusAktif, asset.Status)
		assert.Equal(t, "user-id-123", asset.CreatedBy)
	})

	t.Run("movable asset has no location", func(t *testing.T) {
		req := dto.CreateAssetRequest{
			PropertyID: "property-id-123",
			Name:       "Mobil operasional",
			Category:   model.CategoryKendaraanOperasional,
			Condition:  model.ConditionBaik,
		}

		asset := req.ToModel("user-id-123")

		assert.False(t, asset.LocationID.Valid)
	})
}

func TestCreateAssetRequest_MovableValidation(t *testing.T) {
	req := dto.CreateAssetRequest{
		PropertyID: "4a8f6c1e-2f6b-4c8e-9d3a-1b2c3d4e5f60",
		Name:       "Mobil operasional",
		Category:   model.CategoryKendaraanOperasional,
		Condition:  model.ConditionBaik,
	}

	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestAssetResponse_FromModel(t *testing.T) {
	t.Run("located asset", func(t *testing.T) {
		asset := model.Asset{
			ID:         "asset-id-123",
			PropertyID: "property-id-123",
			LocationID: sql.NullString{String: "location-id-123", Valid: true},
			Code:       "AST-001",
			Name:       "AC Split 1PK",
		}

		var res dto.AssetResponse
		res.FromModel(asset)

		assert.Equal(t, "location-id-123", res.LocationID)
	})

	t.Run("movable asset leaves location empty", func(t *testing.T) {
		asset := model.Asset{
			ID:         "asset-id-456",
			PropertyID: "property-id-123",
			Code:       "AST-002",
			Name:       "Mobil operasional",
		}

		var res dto.AssetResponse
		res.FromModel(asset)

		assert.Empty(t, res.LocationID)
	})
}
