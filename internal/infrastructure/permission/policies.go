package permission

import (
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
)

// RoleInheritance lists (role, parent) pairs: the role gets the parent's grants.
func RoleInheritance() [][]string {
	return [][]string{
		{authorization.RoleManager.String(), authorization.RoleUser.String()},
		{authorization.RoleStaff.String(), authorization.RoleManager.String()},
		{authorization.RoleAdmin.String(), authorization.RoleStaff.String()},
	}
}

// DefaultPolicies returns the grants of each role, excluding inherited ones.
func DefaultPolicies() [][]string {
	user := authorization.RoleUser.String()
	manager := authorization.RoleManager.String()
	staff := authorization.RoleStaff.String()
	admin := authorization.RoleAdmin.String()

	return [][]string{
		{user, ResourceReport, ActionCreate},
		{user, ResourceReport, ActionRead},
		{user, ResourceReport, ActionUpdate},
		{user, ResourceReport, ActionDelete},
		{user, ResourceReport, ActionAssign},
		{user, ResourceCategory, ActionRead},
		{user, ResourceLocation, ActionRead},
		{user, ResourceOrganization, ActionRead},
		{user, ResourceProfile, ActionRead},
		{user, ResourceProfile, ActionUpdate},
		{user, ResourceNotification, ActionRead},
		{user, ResourceNotification, ActionUpdate},
		{user, ResourceNotification, ActionDelete},
		{user, ResourceAnalytics, ActionRead},

		{manager, ResourceUser, ActionList},

		{staff, ResourceLocation, ActionCreate},
		{staff, ResourceLocation, ActionUpdate},
		{staff, ResourceLocation, ActionDelete},
		{staff, ResourceCategory, ActionCreate},
		{staff, ResourceReport, ActionLock},
		{staff, ResourceReport, ActionExport},
		{staff, ResourceNotification, ActionSend},
		{staff, ResourceUser, ActionRead},

		{admin, ResourceUser, ActionCreate},
		{admin, ResourceUser, ActionUpdate},
		{admin, ResourceOrganization, ActionCreate},
		{admin, ResourceNotification, ActionBroadcast},
	}
}
