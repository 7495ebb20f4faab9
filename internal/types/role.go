package types

// UserRole identifies the portal role a caller acts under. The role is
// threaded through the request context by middleware; policy code never reads
// ambient session state.
type UserRole string

const (
	RoleStudent          UserRole = "Student"
	RoleHR               UserRole = "HR"
	RoleSchoolAdmin      UserRole = "School_Admin"
	RoleMaintenanceStaff UserRole = "Maintenance_Staff"
)

func (r UserRole) Validate() bool {
	switch r {
	case RoleStudent, RoleHR, RoleSchoolAdmin, RoleMaintenanceStaff:
		return true
	}
	return false
}
