package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleViewer  = "viewer"
	RoleBursar  = "bursar"
	RoleOwner   = "owner"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "Only an admin may access %s."
	ErrOnlyStaffCanAccess  = "Only staff, admin, or owner may access %s."
	ErrOnlyBursarCanAccess = "Only the bursar, admin, or owner may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorBursar(feature string) string {
	return fmt.Sprintf(ErrOnlyBursarCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleViewer,
		RoleStaff,
		RoleBursar,
		RoleAdmin,
		RoleOwner,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleBursar,
		RoleAdmin,
		RoleOwner,
	}

	BursarAndAbove = []string{
		RoleBursar,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)
