package access

//go:generate go run go.uber.org/mock/mockgen -source=./access.go -destination=./mocks/access_mock.go -package=mocks

import (
	"context"
	"fmt"

	"aset/internal/domains/user/model"
	userRepo "aset/internal/domains/user/repository"
	"aset/shared/constant"
	gDto "aset/shared/dto"
)

// Checker answers which properties a user may touch. A superadmin sees every
// property; everyone else sees exactly their assignment rows.
type Checker interface {
	CanAccessProperty(ctx context.Context, userID, role, propertyID string) (bool, error)
	VisiblePropertyIDs(ctx context.Context, userID, role string) (ids []string, all bool, err error)
}

type checkerImpl struct {
	assignments userRepo.Assignment
}

func New(assignments userRepo.Assignment) Checker {
	return &checkerImpl{
		assignments: assignments,
	}
}

func (c *checkerImpl) CanAccessProperty(ctx context.Context, userID, role, propertyID string) (bool, error) {
	if role == constant.RoleSuperAdmin {
		return true, nil
	}

	exist, err := c.assignments.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.AssignmentTableName,
			},
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.AssignmentTableName,
			},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check property assignment: %w", err)
	}

	return exist, nil
}

func (c *checkerImpl) VisiblePropertyIDs(ctx context.Context, userID, role string) (ids []string, all bool, err error) {
	if role == constant.RoleSuperAdmin {
		return nil, true, nil
	}

	assignments, err := c.assignments.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.AssignmentTableName,
			},
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to list property assignments: %w", err)
	}

	ids = make([]string, len(assignments))
	for i, assignment := range assignments {
		ids[i] = assignment.PropertyID
	}

	return ids, false, nil
}
