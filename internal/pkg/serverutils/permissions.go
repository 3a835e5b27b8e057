// FILE: internal/pkg/serverutils/permissions.go
package serverutils

import "devagency-be/internal/entity"

// Permissions describes which admin surfaces a role can use. Coadmins get
// everything except user-role management.
type Permissions struct {
	CanManageUsers         bool
	CanReviewSubscriptions bool
	CanManageContent       bool
	CanViewStats           bool
}

func PermissionsFor(role entity.UserRole) Permissions {
	switch role {
	case entity.UserRoleAdmin:
		return Permissions{
			CanManageUsers:         true,
			CanReviewSubscriptions: true,
			CanManageContent:       true,
			CanViewStats:           true,
		}
	case entity.UserRoleCoadmin:
		return Permissions{
			CanReviewSubscriptions: true,
			CanManageContent:       true,
			CanViewStats:           true,
		}
	}
	return Permissions{}
}
