package model

import "aset/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldCity    = "city"
	FieldPhone   = "phone"
	FieldActive  = "active"
)

type Property struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	City    string `db:"city"`
	Phone   string `db:"phone"`
	Active  bool   `db:"active"`
	model.Metadata
}
