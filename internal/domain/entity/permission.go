package entity

// Permission names a capability checked by the authorization middleware.
type Permission string

const (
	PermissionOrdersRead    Permission = "orders:read"
	PermissionOrdersWrite   Permission = "orders:write"
	PermissionDriversRead   Permission = "drivers:read"
	PermissionDriversWrite  Permission = "drivers:write"
	PermissionCitiesRead    Permission = "cities:read"
	PermissionCitiesWrite   Permission = "cities:write"
	PermissionSheetsRead    Permission = "delegate_sheets:read"
	PermissionSheetsWrite   Permission = "delegate_sheets:write"
	PermissionProductsRead  Permission = "products:read"
	PermissionProductsWrite Permission = "products:write"
	PermissionReportsRead   Permission = "reports:read"
	PermissionUsersManage   Permission = "users:manage"
	PermissionDataExport    Permission = "data:export"
)

type permissionSet map[Permission]struct{}

func newPermissionSet(perms ...Permission) permissionSet {
	set := make(permissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}

	return set
}

var staffPermissions = []Permission{
	PermissionOrdersRead,
	PermissionOrdersWrite,
	PermissionDriversRead,
	PermissionDriversWrite,
	PermissionCitiesRead,
	PermissionCitiesWrite,
	PermissionSheetsRead,
	PermissionSheetsWrite,
	PermissionProductsRead,
	PermissionProductsWrite,
	PermissionReportsRead,
}

// rolePermissions is the single authorization policy of the back office.
//
//nolint:gochecknoglobals
var rolePermissions = map[Role]permissionSet{
	RoleAdmin:     newPermissionSet(append(staffPermissions, PermissionUsersManage, PermissionDataExport)...),
	RoleDataEntry: newPermissionSet(staffPermissions...),
	RoleAccounts:  newPermissionSet(staffPermissions...),
}
