package rbac

import "github.com/casbin/casbin/v2"

type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

var employeePermissions = []Permission{
	{"leave_type", "read"},
	{"allocation", "read_own"},
	{"leave_request", "create"},
	{"leave_request", "read_own"},
	{"leave_request", "cancel"},
}

var adminPermissions = []Permission{
	{"leave_type", "read"},
	{"leave_type", "write"},
	{"allocation", "generate"},
	{"allocation", "read_all"},
	{"allocation", "read_own"},
	{"allocation", "write"},
	{"leave_request", "create"},
	{"leave_request", "read_all"},
	{"leave_request", "read_own"},
	{"leave_request", "approve"},
	{"leave_request", "cancel"},
}

// RolePermissions maps the directory's role names to what they may do.
func RolePermissions(employeeRole, adminRole string) map[string][]Permission {
	return map[string][]Permission{
		employeeRole: employeePermissions,
		adminRole:    adminPermissions,
	}
}

func loadPolicies(e *casbin.Enforcer, policies map[string][]Permission) error {
	for role, perms := range policies {
		for _, p := range perms {
			if _, err := e.AddPolicy(role, p.Resource, p.Action); err != nil {
				return err
			}
		}
	}
	return nil
}
