package dto

import (
	"aset/internal/domains/property/model"
	"aset/shared"
	gDto "aset/shared/dto"
	gModel "aset/shared/model"
	"aset/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name    string `json:"name"    validate:"required,max=150"`
	Address string `json:"address" validate:"omitempty,max=255"`
	City    string `json:"city"    validate:"omitempty,max=100"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Active  *bool  `json:"active"  validate:"omitempty"`
}

func (c *CreatePropertyRequest) ToModel(user string) model.Property {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Property{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Address: c.Address,
		City:    c.City,
		Phone:   c.Phone,
		Active:  active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePropertyRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=150"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
	City    string `db:"city"    json:"city"    validate:"omitempty,max=100"`
	Phone   string `db:"phone"   json:"phone"   validate:"omitempty,max=30"`
	Active  *bool  `db:"active"  json:"active"  validate:"omitempty"`
}

type PropertyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.City = model.City
	r.Phone = model.Phone
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
