// Package registry enumerates the demo roles and maps each to its fixed demo
// identity. The role set is closed; anything outside it resolves to
// errs.ErrUnknownRole.
package registry

import (
	"fmt"

	"hrms/internal/domain/errs"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleHRManager Role = "hr_manager"
	RoleManager   Role = "manager"
	RoleEmployee  Role = "employee"
	RolePayroll   Role = "payroll"
	RoleAuditor   Role = "auditor"
)

// Identity is the active session's user record. Switching role replaces the
// whole value; nothing is merged from the prior identity.
type Identity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	EmployeeID string `json:"employeeId"`
}

var roleOrder = []Role{
	RoleAdmin,
	RoleHRManager,
	RoleManager,
	RoleEmployee,
	RolePayroll,
	RoleAuditor,
}

var identities = map[Role]Identity{
	RoleAdmin: {
		ID:         "1",
		Name:       "System Admin",
		Email:      "admin@company.com",
		Role:       RoleAdmin,
		Department: "IT",
		EmployeeID: "EMP001",
	},
	RoleHRManager: {
		ID:         "2",
		Name:       "Priya Sharma",
		Email:      "priya@company.com",
		Role:       RoleHRManager,
		Department: "Human Resources",
		EmployeeID: "EMP002",
	},
	RoleManager: {
		ID:         "3",
		Name:       "Arjun Singh",
		Email:      "arjun@company.com",
		Role:       RoleManager,
		Department: "Engineering",
		EmployeeID: "EMP003",
	},
	RoleEmployee: {
		ID:         "4",
		Name:       "Sneha Gupta",
		Email:      "sneha@company.com",
		Role:       RoleEmployee,
		Department: "Engineering",
		EmployeeID: "EMP004",
	},
	RolePayroll: {
		ID:         "5",
		Name:       "Ravi Kumar",
		Email:      "ravi@company.com",
		Role:       RolePayroll,
		Department: "Finance",
		EmployeeID: "EMP005",
	},
	RoleAuditor: {
		ID:         "6",
		Name:       "Audit User",
		Email:      "auditor@company.com",
		Role:       RoleAuditor,
		Department: "Compliance",
		EmployeeID: "EMP006",
	},
}

// List returns the valid roles in their fixed display order.
func List() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// ParseRole validates a raw role string against the closed set.
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if _, ok := identities[role]; !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownRole, raw)
	}
	return role, nil
}

// ResolveIdentity returns the demo identity bound to a role.
func ResolveIdentity(role Role) (Identity, error) {
	identity, ok := identities[role]
	if !ok {
		return Identity{}, fmt.Errorf("%w: %q", errs.ErrUnknownRole, string(role))
	}
	return identity, nil
}

// FindByEmail looks up the demo identity owning an email address, in role
// order so lookups are deterministic.
func FindByEmail(email string) (Identity, bool) {
	for _, role := range roleOrder {
		if identities[role].Email == email {
			return identities[role], true
		}
	}
	return Identity{}, false
}
