package authz

// Role names are a small fixed set; they are stored verbatim on the user row
// and in the session payload.
const (
	RoleAdministrator  = "Administrator"
	RoleProjectManager = "ProjectManager"
	RoleEmployee       = "Employee"
	RoleClient         = "Client"
)

// RoleSet is the non-empty set of roles an operation accepts.
type RoleSet []string

func (s RoleSet) Contains(role string) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// Allowed is the whole access-control decision: the session role must be
// present and a member of the accepted set. Missing or unknown state is
// always a denial, never a default allow.
func Allowed(accepted RoleSet, sessionRole string) bool {
	if sessionRole == "" {
		return false
	}
	return accepted.Contains(sessionRole)
}

// Policy maps a guarded resource to the roles that may touch it.
type Policy map[string]RoleSet

// DefaultPolicy is the application's single authorization table. The role
// gate consults it; nothing else encodes role checks.
func DefaultPolicy() Policy {
	return Policy{
		"clients":       {RoleAdministrator},
		"employees":     {RoleAdministrator},
		"invoices":      {RoleAdministrator},
		"users":         {RoleAdministrator},
		"contracts":     {RoleAdministrator, RoleProjectManager},
		"projects":      {RoleAdministrator, RoleProjectManager},
		"reports":       {RoleAdministrator, RoleProjectManager},
		"projects:mine": {RoleEmployee},
		"reports:mine":  {RoleClient},
	}
}

// For returns the accepted set for a resource. An unknown or empty entry
// yields an empty set, which Allowed treats as deny-all.
func (p Policy) For(resource string) RoleSet {
	return p[resource]
}
