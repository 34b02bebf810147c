package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aset/internal/domains/maintenance/model"
	"aset/permissions"
	"aset/shared/constant"
)

func TestCanManageCatalog(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{constant.RoleSuperAdmin, true},
		{constant.RoleHotelManager, true},
		{constant.RoleSupervisor, false},
		{constant.RoleStaff, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.CanManageCatalog(tt.role))
			assert.Equal(t, tt.want, permissions.CanDeleteCatalog(tt.role))
		})
	}
}

func TestCanCreateMaintenance(t *testing.T) {
	for _, role := range []string{constant.RoleSuperAdmin, constant.RoleHotelManager, constant.RoleSupervisor, constant.RoleStaff} {
		assert.True(t, permissions.CanCreateMaintenance(role), role)
	}

	assert.False(t, permissions.CanCreateMaintenance(""))
	assert.False(t, permissions.CanCreateMaintenance("guest"))
}

func TestCanManageMaintenanceFull(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		approvalStatus string
		want           bool
	}{
		{"superadmin on approved order", constant.RoleSuperAdmin, model.ApprovalApproved, true},
		{"hotel manager on approved order", constant.RoleHotelManager, model.ApprovalApproved, true},
		{"supervisor on approved order", constant.RoleSupervisor, model.ApprovalApproved, true},
		{"staff on approved order", constant.RoleStaff, model.ApprovalApproved, false},
		{"superadmin on pending order", constant.RoleSuperAdmin, model.ApprovalPending, false},
		{"supervisor on rejected order", constant.RoleSupervisor, model.ApprovalRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.CanManageMaintenanceFull(tt.role, tt.approvalStatus))
		})
	}
}

func TestCanEditMaintenanceLimited(t *testing.T) {
	assert.True(t, permissions.CanEditMaintenanceLimited(constant.RoleStaff))
	assert.False(t, permissions.CanEditMaintenanceLimited(constant.RoleSuperAdmin))
	assert.False(t, permissions.CanEditMaintenanceLimited(constant.RoleHotelManager))
	assert.False(t, permissions.CanEditMaintenanceLimited(constant.RoleSupervisor))
}

func TestCanDeleteMaintenance(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{constant.RoleSuperAdmin, true},
		{constant.RoleHotelManager, true},
		{constant.RoleSupervisor, true},
		{constant.RoleStaff, false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.CanDeleteMaintenance(tt.role))
		})
	}
}

func TestCanApproveMaintenance(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{constant.RoleSuperAdmin, true},
		{constant.RoleSupervisor, true},
		{constant.RoleHotelManager, false},
		{constant.RoleStaff, false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.CanApproveMaintenance(tt.role))
		})
	}
}

func TestCanManageUsersAndProperties(t *testing.T) {
	assert.True(t, permissions.CanManageUsersAndProperties(constant.RoleSuperAdmin))
	assert.False(t, permissions.CanManageUsersAndProperties(constant.RoleHotelManager))
	assert.False(t, permissions.CanManageUsersAndProperties(constant.RoleSupervisor))
	assert.False(t, permissions.CanManageUsersAndProperties(constant.RoleStaff))
}
