package dto

import (
	"aset/internal/domains/location/model"
	"aset/shared"
	gDto "aset/shared/dto"
	gModel "aset/shared/model"
	"aset/shared/timezone"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	PropertyID   string `json:"property_id"   validate:"required,uuid"`
	Name         string `json:"name"          validate:"required,max=150"`
	LocationType string `json:"location_type" validate:"required,oneof=kamar fasilitas_umum office gudang"`
	Description  string `json:"description"   validate:"omitempty,max=500"`
}

func (c *CreateLocationRequest) ToModel(user string) model.Location {
	return model.Location{
		ID:           uuid.NewString(),
		PropertyID:   c.PropertyID,
		Name:         c.Name,
		LocationType: c.LocationType,
		Description:  c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateLocationRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=150"`
	LocationType string `db:"location_type" json:"location_type" validate:"omitempty,oneof=kamar fasilitas_umum office gudang"`
	Description  string `db:"description"   json:"description"   validate:"omitempty,max=500"`
}

type LocationResponse struct {
	ID           string `json:"id"`
	PropertyID   string `json:"property_id"`
	Name         string `json:"name"`
	LocationType string `json:"location_type"`
	Description  string `json:"description"`
	gDto.Metadata
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.Name = model.Name
	r.LocationType = model.LocationType
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
	}
}
