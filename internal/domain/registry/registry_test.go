package registry

import (
	"errors"
	"testing"

	"hrms/internal/domain/errs"
)

func TestListOrder(t *testing.T) {
	roles := List()
	if len(roles) != 6 {
		t.Fatalf("expected 6 roles, got %d", len(roles))
	}
	want := []Role{RoleAdmin, RoleHRManager, RoleManager, RoleEmployee, RolePayroll, RoleAuditor}
	for i, role := range want {
		if roles[i] != role {
			t.Fatalf("expected %s at position %d, got %s", role, i, roles[i])
		}
	}
}

func TestResolveIdentity(t *testing.T) {
	identity, err := ResolveIdentity(RoleEmployee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.EmployeeID != "EMP004" {
		t.Fatalf("expected EMP004, got %s", identity.EmployeeID)
	}
	if identity.Name != "Sneha Gupta" {
		t.Fatalf("expected Sneha Gupta, got %s", identity.Name)
	}
}

func TestResolveIdentityUnknownRole(t *testing.T) {
	_, err := ResolveIdentity(Role("guest"))
	if !errors.Is(err, errs.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}

	// registry state must be untouched by a failed lookup
	if len(List()) != 6 {
		t.Fatal("role list changed after failed resolve")
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("payroll")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RolePayroll {
		t.Fatalf("expected payroll, got %s", role)
	}

	if _, err := ParseRole("superuser"); !errors.Is(err, errs.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestFindByEmail(t *testing.T) {
	identity, ok := FindByEmail("ravi@company.com")
	if !ok {
		t.Fatal("expected to find demo identity")
	}
	if identity.Role != RolePayroll {
		t.Fatalf("expected payroll role, got %s", identity.Role)
	}

	if _, ok := FindByEmail("nobody@company.com"); ok {
		t.Fatal("expected lookup miss")
	}
}
