package model

import (
	"database/sql"

	"aset/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "maintenance_orders"
	EntityName = "maintenance_order"

	FieldID              = "id"
	FieldPropertyID      = "property_id"
	FieldCode            = "code"
	FieldTitle           = "title"
	FieldMaintenanceType = "maintenance_type"
	FieldAssetID         = "asset_id"
	FieldLocationID      = "location_id"
	FieldDescription     = "description"
	FieldStatus          = "status"
	FieldApprovalStatus  = "approval_status"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldCost            = "cost"
	FieldApprovedBy      = "approved_by"
	FieldApprovedAt      = "approved_at"
	FieldRejectionReason = "rejection_reason"
	FieldEvidenceURLs    = "evidence_urls"
)

// Maintenance types. A renovation targets a location, a repair targets an asset.
const (
	TypeRenovasiLokasi = "renovasi_lokasi"
	TypePerbaikanAset  = "perbaikan_aset"
)

// Work statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Approval statuses. Approved and rejected are terminal.
const (
	ApprovalPending  = "pending_approval"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Label maps used on report exports.
var (
	TypeLabels = map[string]string{
		TypeRenovasiLokasi: "Renovasi Lokasi",
		TypePerbaikanAset:  "Perbaikan Aset",
	}

	StatusLabels = map[string]string{
		StatusPending:    "Pending",
		StatusInProgress: "Dalam Proses",
		StatusCompleted:  "Selesai",
		StatusCancelled:  "Dibatalkan",
	}

	ApprovalLabels = map[string]string{
		ApprovalPending:  "Menunggu Approval",
		ApprovalApproved: "Disetujui",
		ApprovalRejected: "Ditolak",
	}
)

type MaintenanceOrder struct {
	ID              string          `db:"id"`
	PropertyID      string          `db:"property_id"`
	Code            string          `db:"code"`
	Title           string          `db:"title"`
	MaintenanceType string          `db:"maintenance_type"`
	AssetID         sql.NullString  `db:"asset_id"`
	LocationID      sql.NullString  `db:"location_id"`
	Description     string          `db:"description"`
	Status          string          `db:"status"`
	ApprovalStatus  string          `db:"approval_status"`
	StartDate       sql.NullTime    `db:"start_date"`
	EndDate         sql.NullTime    `db:"end_date"`
	Cost            sql.NullFloat64 `db:"cost"`
	ApprovedBy      sql.NullString  `db:"approved_by"`
	ApprovedAt      sql.NullTime    `db:"approved_at"`
	RejectionReason sql.NullString  `db:"rejection_reason"`
	EvidenceURLs    pq.StringArray  `db:"evidence_urls"`
	model.Metadata
}
