package auth

// Faction roles. Officers are the default; supervisors approve warrants
// and requests; admins manage the academy and the roster.
const (
	RoleOfficer    = "OFFICER"
	RoleSupervisor = "SUPERVISOR"
	RoleAdmin      = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Badge    string
	Role     string
}
