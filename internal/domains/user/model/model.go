package model

import "aset/shared/model"

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldFullName  = "full_name"
	FieldRole      = "role"
	FieldLoginCode = "login_code"
	FieldActive    = "active"

	AssignmentTableName  = "property_assignments"
	AssignmentEntityName = "property_assignment"

	FieldAssignmentID = "id"
	FieldUserID       = "user_id"
	FieldPropertyID   = "property_id"
)

type Profile struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	FullName  string `db:"full_name"`
	Role      string `db:"role"`
	LoginCode string `db:"login_code"`
	Active    bool   `db:"active"`
	model.Metadata
}

type PropertyAssignment struct {
	ID         string `db:"id"`
	UserID     string `db:"user_id"`
	PropertyID string `db:"property_id"`
	model.Metadata
}
