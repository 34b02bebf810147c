package dto

import (
	"strings"

	"aset/internal/domains/user/model"
	"aset/shared"
	gDto "aset/shared/dto"
	gModel "aset/shared/model"
	"aset/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email       string   `json:"email"        validate:"required,email"`
	FullName    string   `json:"full_name"    validate:"required,max=100"`
	Role        string   `json:"role"         validate:"required,oneof=superadmin hotel_manager supervisor staff"`
	LoginCode   string   `json:"login_code"   validate:"required,min=6,max=72"`
	PropertyIDs []string `json:"property_ids" validate:"omitempty,dive,uuid"`
}

func (c *CreateUserRequest) ToModel(username, hashedLoginCode string) model.Profile {
	return model.Profile{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(c.Email),
		FullName:  c.FullName,
		Role:      c.Role,
		LoginCode: hashedLoginCode,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

// ToAssignments builds one assignment row per requested property.
func (c *CreateUserRequest) ToAssignments(userID, username string) []model.PropertyAssignment {
	assignments := make([]model.PropertyAssignment, len(c.PropertyIDs))

	for i, propertyID := range c.PropertyIDs {
		assignments[i] = model.PropertyAssignment{
			ID:         uuid.NewString(),
			UserID:     userID,
			PropertyID: propertyID,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  username,
				ModifiedBy: username,
			},
		}
	}

	return assignments
}

type CreateUserResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
}

type DeleteUserRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type DeleteUserResponse struct {
	Success bool `json:"success"`
}

type UserResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FullName    string   `json:"full_name"`
	Role        string   `json:"role"`
	Active      bool     `json:"active"`
	PropertyIDs []string `json:"property_ids"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(profile model.Profile, propertyIDs []string) {
	r.ID = profile.ID
	r.Email = profile.Email
	r.FullName = profile.FullName
	r.Role = profile.Role
	r.Active = profile.Active

	r.PropertyIDs = propertyIDs
	if r.PropertyIDs == nil {
		r.PropertyIDs = []string{}
	}

	r.Metadata.FromModel(profile.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(profiles []model.Profile, assignments map[string][]string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(profiles))
	for i, profile := range profiles {
		r.Users[i].FromModel(profile, assignments[profile.ID])
	}
}
