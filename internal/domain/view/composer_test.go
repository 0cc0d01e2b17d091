package view

import (
	"testing"

	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/registry"
	"hrms/internal/domain/reports"
)

func seededStores() Stores {
	stores := Stores{
		Employees: employee.NewStore(),
		Leave:     leave.NewStore(),
		Payroll:   payroll.NewStore(),
		Reports:   reports.NewStore(),
	}
	stores.Employees.Seed()
	stores.Leave.Seed()
	stores.Payroll.Seed()
	stores.Reports.Seed()
	return stores
}

func mustIdentity(t *testing.T, role registry.Role) registry.Identity {
	t.Helper()
	identity, err := registry.ResolveIdentity(role)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return identity
}

func navTitles(items []NavItem) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		out[item.Title] = true
	}
	return out
}

func TestComposeEmployeeScope(t *testing.T) {
	stores := seededStores()
	identity := mustIdentity(t, registry.RoleEmployee)

	vm := Compose(identity, stores)

	for _, req := range vm.LeaveRequests {
		if req.EmployeeID != "EMP004" {
			t.Fatalf("employee sees foreign leave request: %+v", req)
		}
	}
	for _, rec := range vm.PayrollRecords {
		if rec.EmployeeID != "EMP004" {
			t.Fatalf("employee sees foreign payroll record: %+v", rec)
		}
	}
	if len(vm.Employees) != 0 {
		t.Fatal("employee must not see the roster")
	}
	if len(vm.Reports) != 0 {
		t.Fatal("employee must not see reports")
	}

	titles := navTitles(vm.NavItems)
	if titles["Employees"] || titles["Payroll"] {
		t.Fatalf("employee nav leaks gated items: %v", titles)
	}
	if !titles["My Profile"] || !titles["My Payslips"] || !titles["Leave Management"] {
		t.Fatalf("employee nav missing own items: %v", titles)
	}
}

func TestComposeHRManagerUnscoped(t *testing.T) {
	stores := seededStores()
	identity := mustIdentity(t, registry.RoleHRManager)

	vm := Compose(identity, stores)

	if len(vm.Employees) != 5 {
		t.Fatalf("expected full roster, got %d", len(vm.Employees))
	}
	if len(vm.LeaveRequests) != 3 {
		t.Fatalf("expected all leave requests, got %d", len(vm.LeaveRequests))
	}
	if len(vm.PayrollRecords) != 3 {
		t.Fatalf("expected all payroll records, got %d", len(vm.PayrollRecords))
	}
	if len(vm.Reports) != 5 {
		t.Fatalf("expected 5 reports for hr_manager, got %d", len(vm.Reports))
	}

	titles := navTitles(vm.NavItems)
	for _, want := range []string{"Dashboard", "Employees", "Leave Management", "Attendance", "Payroll", "Reports", "Settings"} {
		if !titles[want] {
			t.Fatalf("hr_manager nav missing %s: %v", want, titles)
		}
	}
	if titles["My Profile"] || titles["My Payslips"] {
		t.Fatalf("hr_manager nav leaks employee-only items: %v", titles)
	}
}

func TestComposeAuditor(t *testing.T) {
	stores := seededStores()
	identity := mustIdentity(t, registry.RoleAuditor)

	vm := Compose(identity, stores)

	if len(vm.LeaveRequests) != 0 || len(vm.Employees) != 0 || len(vm.PayrollRecords) != 0 {
		t.Fatal("auditor must only see dashboard and reports")
	}
	if len(vm.Reports) != 1 || vm.Reports[0].ID != "6" {
		t.Fatalf("auditor should see only the audit trail report: %+v", vm.Reports)
	}
	if len(vm.KPIs) != 4 || vm.KPIs[0].Title != "System Health" {
		t.Fatalf("auditor KPI set wrong: %+v", vm.KPIs)
	}
}

func TestComposeKPIsReflectStores(t *testing.T) {
	stores := seededStores()
	identity := mustIdentity(t, registry.RoleHRManager)

	vm := Compose(identity, stores)
	if vm.KPIs[0].Title != "Total Employees" || vm.KPIs[0].Value != "5" {
		t.Fatalf("total employees KPI wrong: %+v", vm.KPIs[0])
	}

	if _, err := stores.Leave.Approve("1", identity.Name); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vm = Compose(identity, stores)
	if vm.KPIs[1].Value != "3 (0 pending approval)" {
		t.Fatalf("leave KPI not live: %+v", vm.KPIs[1])
	}
}

func TestComposeManagerSeesOwnPayslips(t *testing.T) {
	stores := seededStores()
	identity := mustIdentity(t, registry.RoleManager)

	vm := Compose(identity, stores)

	// manager sees payroll rows through My Payslips, unscoped per the
	// reference behavior (only the employee role is ownership-scoped)
	if len(vm.PayrollRecords) != 3 {
		t.Fatalf("expected 3 payroll records, got %d", len(vm.PayrollRecords))
	}
	titles := navTitles(vm.NavItems)
	if !titles["My Payslips"] || titles["Payroll"] {
		t.Fatalf("manager nav wrong: %v", titles)
	}
}
