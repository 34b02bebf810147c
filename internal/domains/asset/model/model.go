package model

import (
	"database/sql"

	"aset/shared/model"
)

const (
	TableName  = "assets"
	EntityName = "asset"

	FieldID            = "id"
	FieldPropertyID    = "property_id"
	FieldLocationID    = "location_id"
	FieldCode          = "code"
	FieldName          = "name"
	FieldCategory      = "category"
	FieldCondition     = "condition"
	FieldStatus        = "status"
	FieldPurchaseDate  = "purchase_date"
	FieldPurchasePrice = "purchase_price"
	FieldDescription   = "description"
)

// Asset categories.
const (
	CategoryPeralatanKamar           = "peralatan_kamar"
	CategoryPeralatanDapur           = "peralatan_dapur"
	CategoryMesinLaundryHousekeeping = "mesin_laundry_housekeeping"
	CategoryKendaraanOperasional     = "kendaraan_operasional"
	CategoryPeralatanKantorIT        = "peralatan_kantor_it"
	CategoryPeralatanRekreasiLeisure = "peralatan_rekreasi_leisure"
	CategoryInfrastruktur            = "infrastruktur"
)

// Asset conditions.
const (
	ConditionBaik           = "baik"
	ConditionCukup          = "cukup"
	ConditionPerluPerbaikan = "perlu_perbaikan"
	ConditionRusak          = "rusak"
)

// Asset statuses.
const (
	StatusAktif          = "aktif"
	StatusDalamPerbaikan = "dalam_perbaikan"
	StatusTidakAktif     = "tidak_aktif"
	StatusDihapuskan     = "dihapuskan"
)

// Label maps used on report exports.
var (
	CategoryLabels = map[string]string{
		CategoryPeralatanKamar:           "Peralatan Kamar",
		CategoryPeralatanDapur:           "Peralatan Dapur",
		CategoryMesinLaundryHousekeeping: "Mesin Laundry & Housekeeping",
		CategoryKendaraanOperasional:     "Kendaraan Operasional",
		CategoryPeralatanKantorIT:        "Peralatan Kantor & IT",
		CategoryPeralatanRekreasiLeisure: "Peralatan Rekreasi & Leisure",
		CategoryInfrastruktur:            "Infrastruktur",
	}

	ConditionLabels = map[string]string{
		ConditionBaik:           "Baik",
		ConditionCukup:          "Cukup",
		ConditionPerluPerbaikan: "Perlu Perbaikan",
		ConditionRusak:          "Rusak",
	}

	StatusLabels = map[string]string{
		StatusAktif:          "Aktif",
		StatusDalamPerbaikan: "Dalam Perbaikan",
		StatusTidakAktif:     "Tidak Aktif",
		StatusDihapuskan:     "Dihapuskan",
	}
)

type Asset struct {
	ID            string          `db:"id"`
	PropertyID    string          `db:"property_id"`
	LocationID    sql.NullString  `db:"location_id"`
	Code          string          `db:"code"`
	Name          string          `db:"name"`
	Category      string          `db:"category"`
	Condition     string          `db:"condition"`
	Status        string          `db:"status"`
	PurchaseDate  sql.NullTime    `db:"purchase_date"`
	PurchasePrice sql.NullFloat64 `db:"purchase_price"`
	Description   string          `db:"description"`
	model.Metadata
}
