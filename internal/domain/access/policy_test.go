package access

import (
	"errors"
	"testing"

	"hrms/internal/domain/errs"
	"hrms/internal/domain/registry"
)

func TestCanViewTable(t *testing.T) {
	cases := []struct {
		role     registry.Role
		resource Resource
		want     bool
	}{
		{registry.RoleAuditor, ResourceDashboard, true},
		{registry.RoleAuditor, ResourceReports, true},
		{registry.RoleAuditor, ResourceEmployees, false},
		{registry.RoleAuditor, ResourceLeave, false},
		{registry.RoleEmployee, ResourceMyProfile, true},
		{registry.RoleEmployee, ResourceEmployees, false},
		{registry.RoleEmployee, ResourcePayroll, false},
		{registry.RoleEmployee, ResourceMyPayslips, true},
		{registry.RoleManager, ResourceMyPayslips, true},
		{registry.RoleManager, ResourceSettings, false},
		{registry.RolePayroll, ResourcePayroll, true},
		{registry.RolePayroll, ResourceLeave, false},
		{registry.RoleHRManager, ResourceSettings, true},
		{registry.RoleAdmin, ResourceAttendance, true},
	}
	for _, tc := range cases {
		if got := CanView(tc.role, tc.resource); got != tc.want {
			t.Fatalf("CanView(%s, %s) = %v, want %v", tc.role, tc.resource, got, tc.want)
		}
	}
}

func TestPayrollProcessGrant(t *testing.T) {
	allowed := map[registry.Role]bool{
		registry.RoleAdmin:     true,
		registry.RoleHRManager: true,
		registry.RolePayroll:   true,
	}
	for _, role := range registry.List() {
		actions := AllowedActions(role, ResourcePayroll)
		hasProcess := false
		hasPay := false
		for _, action := range actions {
			if action == ActionPayrollProcess {
				hasProcess = true
			}
			if action == ActionPayrollPay {
				hasPay = true
			}
		}
		if hasProcess != allowed[role] || hasPay != allowed[role] {
			t.Fatalf("role %s: process=%v pay=%v, want %v", role, hasProcess, hasPay, allowed[role])
		}
		if !allowed[role] && len(actions) != 0 {
			t.Fatalf("role %s: expected no payroll actions, got %v", role, actions)
		}
	}
}

func TestLeaveActionGrants(t *testing.T) {
	if !Can(registry.RoleManager, ResourceLeave, ActionLeaveApprove) {
		t.Fatal("manager should approve leave")
	}
	if Can(registry.RoleEmployee, ResourceLeave, ActionLeaveApprove) {
		t.Fatal("employee must not approve leave")
	}
	if !Can(registry.RoleEmployee, ResourceLeave, ActionLeaveApply) {
		t.Fatal("employee should apply for leave")
	}
	if Can(registry.RoleHRManager, ResourceLeave, ActionLeaveApply) {
		t.Fatal("hr_manager has no apply grant in the table")
	}
}

func TestUndeclaredCombinationIsDeny(t *testing.T) {
	if CanView(registry.RoleEmployee, Resource("timesheets")) {
		t.Fatal("unknown resource must be denied")
	}
	if Can(registry.RoleAdmin, ResourceDashboard, Action("dashboard.edit")) {
		t.Fatal("unknown action must be denied")
	}
	if actions := AllowedActions(registry.RoleAuditor, ResourceLeave); len(actions) != 0 {
		t.Fatalf("expected empty action set, got %v", actions)
	}
}

func TestRequire(t *testing.T) {
	if err := Require(registry.RolePayroll, ResourcePayroll, ActionPayrollPay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Require(registry.RoleAuditor, ResourcePayroll, ActionPayrollPay)
	if !errors.Is(err, errs.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if err := RequireView(registry.RoleEmployee, ResourcePayroll); !errors.Is(err, errs.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
