package dto

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"aset/internal/domains/maintenance/model"
	"aset/shared"
	"aset/shared/constant"
	gDto "aset/shared/dto"
	gModel "aset/shared/model"
	"aset/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const codeSuffixBound = 10000

type CreateMaintenanceRequest struct {
	PropertyID      string   `json:"property_id"      validate:"required,uuid"`
	Title           string   `json:"title"            validate:"required,max=200"`
	MaintenanceType string   `json:"maintenance_type" validate:"required,oneof=renovasi_lokasi perbaikan_aset"`
	AssetID         string   `json:"asset_id"         validate:"omitempty,uuid"`
	LocationID      string   `json:"location_id"      validate:"omitempty,uuid"`
	Description     string   `json:"description"      validate:"omitempty,max=1000"`
	StartDate       string   `json:"start_date"       validate:"omitempty,datetime=2006-01-02"`
	EndDate         string   `json:"end_date"         validate:"omitempty,datetime=2006-01-02"`
	Cost            *float64 `json:"cost"             validate:"omitempty,gte=0"`
}

// GenerateCode builds the order code assigned at creation.
func GenerateCode(now time.Time) string {
	return fmt.Sprintf("MNT-%s-%04d", now.Format(constant.OrderCodeFormat), rand.Intn(codeSuffixBound)) //nolint:gosec
}

func (c *CreateMaintenanceRequest) ToModel(user string) model.MaintenanceOrder {
	order := model.MaintenanceOrder{
		ID:              uuid.NewString(),
		PropertyID:      c.PropertyID,
		Code:            GenerateCode(timezone.Now()),
		Title:           c.Title,
		MaintenanceType: c.MaintenanceType,
		Description:     c.Description,
		Status:          model.StatusPending,
		ApprovalStatus:  model.ApprovalPending,
		EvidenceURLs:    pq.StringArray{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	// Only the reference matching the type is stored; the other stays null
	// even when the payload carries both.
	switch c.MaintenanceType {
	case model.TypePerbaikanAset:
		if c.AssetID != constant.Empty {
			order.AssetID = sql.NullString{String: c.AssetID, Valid: true}
		}
	case model.TypeRenovasiLokasi:
		if c.LocationID != constant.Empty {
			order.LocationID = sql.NullString{String: c.LocationID, Valid: true}
		}
	}

	if c.StartDate != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate); err == nil {
			order.StartDate = sql.NullTime{Time: parsed, Valid: true}
		}
	}

	if c.EndDate != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, c.EndDate); err == nil {
			order.EndDate = sql.NullTime{Time: parsed, Valid: true}
		}
	}

	if c.Cost != nil {
		order.Cost = sql.NullFloat64{Float64: *c.Cost, Valid: true}
	}

	return order
}

// UpdateMaintenanceRequest is the full-edit path: every mutable field,
// including cost, target, and type. Only allowed on approved orders.
type UpdateMaintenanceRequest struct {
	Title           string   `db:"title"            json:"title"            validate:"omitempty,max=200"`
	MaintenanceType string   `db:"maintenance_type" json:"maintenance_type" validate:"omitempty,oneof=renovasi_lokasi perbaikan_aset"`
	AssetID         string   `json:"asset_id"                               validate:"omitempty,uuid"`
	LocationID      string   `json:"location_id"                            validate:"omitempty,uuid"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty,max=1000"`
	Status          string   `db:"status"           json:"status"           validate:"omitempty,oneof=pending in_progress completed cancelled"`
	StartDate       string   `json:"start_date"                             validate:"omitempty,datetime=2006-01-02"`
	EndDate         string   `json:"end_date"                               validate:"omitempty,datetime=2006-01-02"`
	Cost            *float64 `json:"cost"                                   validate:"omitempty,gte=0"`
}

// UpdateProgressRequest is the limited staff path: status and dates only,
// and only once the order is approved.
type UpdateProgressRequest struct {
	Status    string `db:"status" json:"status"  validate:"omitempty,oneof=pending in_progress completed cancelled"`
	StartDate string `json:"start_date"          validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date"            validate:"omitempty,datetime=2006-01-02"`
}

type RejectMaintenanceRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=500"`
}

type MaintenanceResponse struct {
	ID              string   `json:"id"`
	PropertyID      string   `json:"property_id"`
	Code            string   `json:"code"`
	Title           string   `json:"title"`
	MaintenanceType string   `json:"maintenance_type"`
	AssetID         string   `json:"asset_id,omitempty"`
	LocationID      string   `json:"location_id,omitempty"`
	Description     string   `json:"description"`
	Status          string   `json:"status"`
	ApprovalStatus  string   `json:"approval_status"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	Cost            *float64 `json:"cost,omitempty"`
	ApprovedBy      string   `json:"approved_by,omitempty"`
	ApprovedAt      string   `json:"approved_at,omitempty"`
	RejectionReason string   `json:"rejection_reason,omitempty"`
	EvidenceURLs    []string `json:"evidence_urls"`
	gDto.Metadata
}

func (r *MaintenanceResponse) FromModel(model model.MaintenanceOrder) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.Code = model.Code
	r.Title = model.Title
	r.MaintenanceType = model.MaintenanceType
	r.Description = model.Description
	r.Status = model.Status
	r.ApprovalStatus = model.ApprovalStatus
	r.EvidenceURLs = model.EvidenceURLs

	if r.EvidenceURLs == nil {
		r.EvidenceURLs = []string{}
	}

	if model.AssetID.Valid {
		r.AssetID = model.AssetID.String
	}

	if model.LocationID.Valid {
		r.LocationID = model.LocationID.String
	}

	if model.StartDate.Valid {
		r.StartDate = timezone.Format(model.StartDate.Time, constant.DateOnlyFormat)
	}

	if model.EndDate.Valid {
		r.EndDate = timezone.Format(model.EndDate.Time, constant.DateOnlyFormat)
	}

	if model.Cost.Valid {
		cost := model.Cost.Float64
		r.Cost = &cost
	}

	if model.ApprovedBy.Valid {
		r.ApprovedBy = model.ApprovedBy.String
	}

	if model.ApprovedAt.Valid {
		r.ApprovedAt = timezone.Format(model.ApprovedAt.Time, constant.DateFormat)
	}

	if model.RejectionReason.Valid {
		r.RejectionReason = model.RejectionReason.String
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetMaintenanceResponse struct {
	Orders    []MaintenanceResponse `json:"orders"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetMaintenanceResponse) FromModels(models []model.MaintenanceOrder, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]MaintenanceResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}

type UploadEvidenceResponse struct {
	Uploaded []string          `json:"uploaded"`
	Failed   map[string]string `json:"failed,omitempty"`
}

// ApprovalEvent is published after an approval decision lands.
type ApprovalEvent struct {
	OrderID    string `json:"order_id"`
	Code       string `json:"code"`
	PropertyID string `json:"property_id"`
	Decision   string `json:"decision"`
	Actor      string `json:"actor"`
	DecidedAt  string `json:"decided_at"`
	Reason     string `json:"reason,omitempty"`
}
