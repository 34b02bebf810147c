package dto

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"aset/internal/domains/asset/model"
	"aset/shared"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	gModel "aset/shared/model"
	"aset/shared/timezone"

	"github.com/google/uuid"
)

const codeSuffixBound = 10000

type CreateAssetRequest struct {
	PropertyID    string   `json:"property_id"    validate:"required,uuid"`
	LocationID    string   `json:"location_id"    validate:"omitempty,uuid"`
	Name          string   `json:"name"           validate:"required,max=150"`
	Category      string   `json:"category"       validate:"required,oneof=peralatan_kamar peralatan_dapur mesin_laundry_housekeeping kendaraan_operasional peralatan_kantor_it peralatan_rekreasi_leisure infrastruktur"`
	Condition     string   `json:"condition"      validate:"required,oneof=baik cukup perlu_perbaikan rusak"`
	Status        string   `json:"status"         validate:"omitempty,oneof=aktif dalam_perbaikan tidak_aktif dihapuskan"`
	PurchaseDate  string   `json:"purchase_date"  validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice *float64 `json:"purchase_price" validate:"omitempty,gte=0"`
	Description   string   `json:"description"    validate:"omitempty,max=500"`
}

// GenerateCode builds the immutable asset code assigned at creation.
func GenerateCode(now time.Time) string {
	return fmt.Sprintf("AST-%s-%04d", now.Format(constant.OrderCodeFormat), rand.Intn(codeSuffixBound)) //nolint:gosec
}

func (c *CreateAssetRequest) ToModel(user string) model.Asset {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusAktif
	}

	asset := model.Asset{
		ID:          uuid.NewString(),
		PropertyID:  c.PropertyID,
		Code:        GenerateCode(timezone.Now()),
		Name:        c.Name,
		Category:    c.Category,
		Condition:   c.Condition,
		Status:      status,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	// A movable asset has no fixed location, so the reference stays null.
	if c.LocationID != constant.Empty {
		asset.LocationID = sql.NullString{String: c.LocationID, Valid: true}
	}

	if c.PurchaseDate != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, c.PurchaseDate); err == nil {
			asset.PurchaseDate = sql.NullTime{Time: parsed, Valid: true}
		}
	}

	if c.PurchasePrice != nil {
		asset.PurchasePrice = sql.NullFloat64{Float64: *c.PurchasePrice, Valid: true}
	}

	return asset
}

// UpdateAssetRequest carries the mutable asset fields. The code column is
// assigned once at creation and never carries a db tag here.
type UpdateAssetRequest struct {
	LocationID    string   `db:"location_id" json:"location_id"       validate:"omitempty,uuid"`
	Name          string   `db:"name"        json:"name"              validate:"omitempty,max=150"`
	Category      string   `db:"category"    json:"category"          validate:"omitempty,oneof=peralatan_kamar peralatan_dapur mesin_laundry_housekeeping kendaraan_operasional peralatan_kantor_it peralatan_rekreasi_leisure infrastruktur"`
	Condition     string   `db:"condition"   json:"condition"         validate:"omitempty,oneof=baik cukup perlu_perbaikan rusak"`
	Status        string   `db:"status"      json:"status"            validate:"omitempty,oneof=aktif dalam_perbaikan tidak_aktif dihapuskan"`
	PurchaseDate  string   `json:"purchase_date"                      validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice *float64 `json:"purchase_price"                     validate:"omitempty,gte=0"`
	Description   string   `db:"description" json:"description"       validate:"omitempty,max=500"`
}

type AssetResponse struct {
	ID            string   `json:"id"`
	PropertyID    string   `json:"property_id"`
	LocationID    string   `json:"location_id,omitempty"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Condition     string   `json:"condition"`
	Status        string   `json:"status"`
	PurchaseDate  string   `json:"purchase_date,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	Description   string   `json:"description"`
	gDto.Metadata
}

func (r *AssetResponse) FromModel(model model.Asset) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.Code = model.Code
	r.Name = model.Name
	r.Category = model.Category
	r.Condition = model.Condition
	r.Status = model.Status
	r.Description = model.Description

	if model.LocationID.Valid {
		r.LocationID = model.LocationID.String
	}

	if model.PurchaseDate.Valid {
		r.PurchaseDate = timezone.Format(model.PurchaseDate.Time, constant.DateOnlyFormat)
	}

	if model.PurchasePrice.Valid {
		price := model.PurchasePrice.Float64
		r.PurchasePrice = &price
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetAssetsResponse struct {
	Assets    []AssetResponse `json:"assets"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAssetsResponse) FromModels(models []model.Asset, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Assets = make([]AssetResponse, len(models))
	for i, mod := range models {
		r.Assets[i].FromModel(mod)
	}
}
