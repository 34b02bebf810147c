package dto

// Report scopes. "current" reports a single property, "all" spans every
// property and is limited to superadmins.
const (
	ScopeCurrent = "current"
	ScopeAll     = "all"
)

type AssetReportRequest struct {
	Scope      string   `json:"scope"       validate:"omitempty,oneof=current all"`
	PropertyID string   `json:"property_id" validate:"omitempty,uuid"`
	LocationID string   `json:"location_id" validate:"omitempty,uuid"`
	Category   string   `json:"category"    validate:"omitempty"`
	Condition  string   `json:"condition"   validate:"omitempty"`
	Status     string   `json:"status"      validate:"omitempty"`
	Search     string   `json:"search"      validate:"omitempty"`
	IDs        []string `json:"ids"         validate:"omitempty,dive,uuid"`
}

type MaintenanceReportRequest struct {
	Scope           string   `json:"scope"            validate:"omitempty,oneof=current all"`
	PropertyID      string   `json:"property_id"      validate:"omitempty,uuid"`
	MaintenanceType string   `json:"maintenance_type" validate:"omitempty"`
	Status          string   `json:"status"           validate:"omitempty"`
	ApprovalStatus  string   `json:"approval_status"  validate:"omitempty"`
	Search          string   `json:"search"           validate:"omitempty"`
	DateFrom        string   `json:"date_from"        validate:"omitempty,datetime=2006-01-02"`
	DateTo          string   `json:"date_to"          validate:"omitempty,datetime=2006-01-02"`
	IDs             []string `json:"ids"              validate:"omitempty,dive,uuid"`
}

// AssetReportRow carries label-translated values ready for display or export.
type AssetReportRow struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Property      string   `json:"property"`
	Location      string   `json:"location"`
	Category      string   `json:"category"`
	Condition     string   `json:"condition"`
	Status        string   `json:"status"`
	PurchaseDate  string   `json:"purchase_date,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
}

type AssetReportResponse struct {
	Title     string           `json:"title"`
	Rows      []AssetReportRow `json:"rows"`
	TotalData int              `json:"total_data"`
}

type MaintenanceReportRow struct {
	Code            string   `json:"code"`
	Title           string   `json:"title"`
	Property        string   `json:"property"`
	MaintenanceType string   `json:"maintenance_type"`
	Status          string   `json:"status"`
	ApprovalStatus  string   `json:"approval_status"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	Cost            *float64 `json:"cost,omitempty"`
}

type MaintenanceReportResponse struct {
	Title     string                 `json:"title"`
	Rows      []MaintenanceReportRow `json:"rows"`
	TotalData int                    `json:"total_data"`
}

// ExportFile is a rendered report. An empty FileName means the filters
// matched nothing and there is no file to send.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
