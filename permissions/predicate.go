package permissions

import (
	"slices"

	"aset/shared/constant"
)

// Role predicates mirror the endpoint table in permissions.json. The
// middleware hides endpoints from roles that may not call them; services
// re-check with these predicates before writing, so a request that slips
// past routing still gets rejected.

const approvalStatusApproved = "approved"

var (
	catalogManagerRoles = []string{constant.RoleSuperAdmin, constant.RoleHotelManager}
	maintenanceManagers = []string{constant.RoleSuperAdmin, constant.RoleHotelManager, constant.RoleSupervisor}
	approverRoles       = []string{constant.RoleSuperAdmin, constant.RoleSupervisor}
)

// CanManageCatalog reports whether the role may create or edit locations and assets.
func CanManageCatalog(role string) bool {
	return slices.Contains(catalogManagerRoles, role)
}

// CanDeleteCatalog reports whether the role may delete locations and assets.
func CanDeleteCatalog(role string) bool {
	return slices.Contains(catalogManagerRoles, role)
}

// CanCreateMaintenance reports whether the role may file a maintenance order.
// Every authenticated role may.
func CanCreateMaintenance(role string) bool {
	switch role {
	case constant.RoleSuperAdmin, constant.RoleHotelManager, constant.RoleSupervisor, constant.RoleStaff:
		return true
	}

	return false
}

// CanManageMaintenanceFull reports whether the role may edit every field of a
// maintenance order, including cost, target, and type. Full edits are only
// permitted once the order has been approved.
func CanManageMaintenanceFull(role, approvalStatus string) bool {
	return slices.Contains(maintenanceManagers, role) && approvalStatus == approvalStatusApproved
}

// CanEditMaintenanceLimited reports whether the role may take the limited
// edit path: status, dates, and evidence only, regardless of approval status.
func CanEditMaintenanceLimited(role string) bool {
	return role == constant.RoleStaff
}

// CanDeleteMaintenance reports whether the role may delete a maintenance order.
func CanDeleteMaintenance(role string) bool {
	return slices.Contains(maintenanceManagers, role)
}

// CanApproveMaintenance reports whether the role may approve or reject a
// pending maintenance order.
func CanApproveMaintenance(role string) bool {
	return slices.Contains(approverRoles, role)
}

// CanManageUsersAndProperties reports whether the role may manage user
// accounts and the property list.
func CanManageUsersAndProperties(role string) bool {
	return role == constant.RoleSuperAdmin
}
