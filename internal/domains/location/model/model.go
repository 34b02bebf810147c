package model

import "aset/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID           = "id"
	FieldPropertyID   = "property_id"
	FieldName         = "name"
	FieldLocationType = "location_type"
	FieldDescription  = "description"
)

// Location types.
const (
	TypeKamar         = "kamar"
	TypeFasilitasUmum = "fasilitas_umum"
	TypeOffice        = "office"
	TypeGudang        = "gudang"
)

// TypeLabels maps location types to the labels used on exports.
var TypeLabels = map[string]string{
	TypeKamar:         "Kamar",
	TypeFasilitasUmum: "Fasilitas Umum",
	TypeOffice:        "Office",
	TypeGudang:        "Gudang",
}

type Location struct {
	ID           string `db:"id"`
	PropertyID   string `db:"property_id"`
	Name         string `db:"name"`
	LocationType string `db:"location_type"`
	Description  string `db:"description"`
	model.Metadata
}
