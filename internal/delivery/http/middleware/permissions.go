package middleware

import "userregistry/internal/domain/entity"

// Operation names the protected API operations. Routes bind to operations,
// operations bind to roles; the table below is the whole access policy.
type Operation string

const (
	OpCreateAccount  Operation = "account:create"
	OpListAccounts   Operation = "account:list"
	OpUpdateAccount  Operation = "account:update"
	OpDeleteAccount  Operation = "account:delete"
	OpApproveAccount Operation = "account:approve"
	OpChangeRole     Operation = "account:change-role"

	OpCreateRegistrant Operation = "registrant:create"
	OpReadRegistrant   Operation = "registrant:read"
	OpUpdateRegistrant Operation = "registrant:update"
	OpDeleteRegistrant Operation = "registrant:delete"

	OpLoadReferenceData Operation = "reference:load"
	OpReadReferenceData Operation = "reference:read"
)

var allRoles = entity.Roles{
	entity.RoleAdminMaster,
	entity.RoleViewer,
	entity.RoleCreatorAdmin,
	entity.RoleEditorAdmin,
}

// permissions is the static operation-to-roles policy. Unknown operations
// grant nothing.
var permissions = map[Operation]entity.Roles{
	OpCreateAccount:  {entity.RoleAdminMaster},
	OpListAccounts:   allRoles,
	OpUpdateAccount:  {entity.RoleAdminMaster, entity.RoleEditorAdmin},
	OpDeleteAccount:  {entity.RoleAdminMaster},
	OpApproveAccount: {entity.RoleAdminMaster},
	OpChangeRole:     {entity.RoleAdminMaster},

	OpCreateRegistrant: {entity.RoleAdminMaster, entity.RoleCreatorAdmin, entity.RoleEditorAdmin},
	OpReadRegistrant:   allRoles,
	OpUpdateRegistrant: {entity.RoleAdminMaster, entity.RoleEditorAdmin},
	OpDeleteRegistrant: {entity.RoleAdminMaster},

	OpLoadReferenceData: {entity.RoleAdminMaster},
	OpReadReferenceData: allRoles,
}

// RolesAllowed returns the roles permitted to perform the operation.
func RolesAllowed(op Operation) entity.Roles {
	return permissions[op]
}
