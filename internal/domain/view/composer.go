// Package view derives the role-scoped presentation model from the record
// stores and the active identity. Composition is read-only: two filters apply,
// the per-resource view gate from the access policy and, for the employee
// role, a per-row ownership scope on leave and payroll records.
package view

import (
	"fmt"

	"hrms/internal/domain/access"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/registry"
	"hrms/internal/domain/reports"
)

// Stores bundles the four record stores for composition and handler wiring.
type Stores struct {
	Employees *employee.Store
	Leave     *leave.Store
	Payroll   *payroll.Store
	Reports   *reports.Store
}

type NavItem struct {
	Title    string          `json:"title"`
	URL      string          `json:"url"`
	Resource access.Resource `json:"resource"`
}

type KPI struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Trend string `json:"trend"`
}

type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ViewModel struct {
	Identity       registry.Identity         `json:"identity"`
	NavItems       []NavItem                 `json:"navItems"`
	KPIs           []KPI                     `json:"kpis"`
	QuickActions   []QuickAction             `json:"quickActions"`
	Employees      []employee.Employee       `json:"employees,omitempty"`
	LeaveRequests  []leave.LeaveRequest      `json:"leaveRequests,omitempty"`
	PayrollRecords []payroll.PayrollRecord   `json:"payrollRecords,omitempty"`
	Reports        []reports.ReportDescriptor `json:"reports,omitempty"`
}

var navItems = []NavItem{
	{Title: "Dashboard", URL: "/", Resource: access.ResourceDashboard},
	{Title: "Employees", URL: "/employees", Resource: access.ResourceEmployees},
	{Title: "My Profile", URL: "/profile", Resource: access.ResourceMyProfile},
	{Title: "Leave Management", URL: "/leave", Resource: access.ResourceLeave},
	{Title: "Attendance", URL: "/attendance", Resource: access.ResourceAttendance},
	{Title: "Payroll", URL: "/payroll", Resource: access.ResourcePayroll},
	{Title: "My Payslips", URL: "/payslips", Resource: access.ResourceMyPayslips},
	{Title: "Reports", URL: "/reports", Resource: access.ResourceReports},
	{Title: "Settings", URL: "/settings", Resource: access.ResourceSettings},
}

// Compose builds the full view model for an identity. Record sections the
// role cannot view stay empty.
func Compose(identity registry.Identity, stores Stores) ViewModel {
	vm := ViewModel{
		Identity:     identity,
		NavItems:     Nav(identity.Role),
		KPIs:         kpisFor(identity, stores),
		QuickActions: quickActionsFor(identity.Role),
	}

	ownOnly := identity.Role == registry.RoleEmployee

	if access.CanView(identity.Role, access.ResourceEmployees) {
		vm.Employees = stores.Employees.List(employee.Filter{})
	}
	if access.CanView(identity.Role, access.ResourceLeave) {
		filter := leave.Filter{}
		if ownOnly {
			filter.EmployeeID = identity.EmployeeID
		}
		vm.LeaveRequests = stores.Leave.List(filter)
	}
	if access.CanView(identity.Role, access.ResourcePayroll) || access.CanView(identity.Role, access.ResourceMyPayslips) {
		filter := payroll.Filter{}
		if ownOnly {
			filter.EmployeeID = identity.EmployeeID
		}
		vm.PayrollRecords = stores.Payroll.List(filter)
	}
	if access.CanView(identity.Role, access.ResourceReports) {
		vm.Reports = stores.Reports.List(identity.Role, reports.Filter{})
	}
	return vm
}

// Nav returns the navigation items visible to a role, in fixed order.
func Nav(role registry.Role) []NavItem {
	var out []NavItem
	for _, item := range navItems {
		if access.CanView(role, item.Resource) {
			out = append(out, item)
		}
	}
	return out
}

func kpisFor(identity registry.Identity, stores Stores) []KPI {
	switch identity.Role {
	case registry.RoleHRManager, registry.RoleAdmin:
		total := len(stores.Employees.List(employee.Filter{}))
		pending := len(stores.Leave.List(leave.Filter{Status: leave.StatusPending}))
		active := len(stores.Leave.List(leave.Filter{}))
		return []KPI{
			{Title: "Total Employees", Value: fmt.Sprintf("%d", total), Trend: "up"},
			{Title: "Active Leave Requests", Value: fmt.Sprintf("%d (%d pending approval)", active, pending), Trend: "neutral"},
			{Title: "Monthly Payroll", Value: "₹45.2L", Trend: "up"},
			{Title: "Attendance Rate", Value: "94.5%", Trend: "up"},
		}
	case registry.RoleManager:
		pending := len(stores.Leave.List(leave.Filter{Status: leave.StatusPending}))
		return []KPI{
			{Title: "Team Members", Value: "12", Trend: "up"},
			{Title: "Team Leave Requests", Value: fmt.Sprintf("%d pending approval", pending), Trend: "neutral"},
			{Title: "Team Attendance", Value: "96.2%", Trend: "up"},
			{Title: "Tasks Completed", Value: "87%", Trend: "up"},
		}
	case registry.RoleEmployee:
		remaining := 0
		for _, bal := range stores.Leave.Balances(identity.EmployeeID) {
			for _, entry := range bal.Types {
				remaining += entry.Remaining()
			}
		}
		return []KPI{
			{Title: "Leave Balance", Value: fmt.Sprintf("%d", remaining), Trend: "neutral"},
			{Title: "Attendance This Month", Value: "95%", Trend: "up"},
			{Title: "Pending Tasks", Value: "5", Trend: "neutral"},
			{Title: "Performance Score", Value: "4.2/5", Trend: "up"},
		}
	case registry.RolePayroll:
		processed := len(stores.Payroll.List(payroll.Filter{Status: payroll.StatusProcessed})) +
			len(stores.Payroll.List(payroll.Filter{Status: payroll.StatusPaid}))
		pending := len(stores.Payroll.List(payroll.Filter{Status: payroll.StatusDraft}))
		return []KPI{
			{Title: "Processed Payrolls", Value: fmt.Sprintf("%d (%d pending)", processed, pending), Trend: "neutral"},
			{Title: "Total Disbursed", Value: "₹45.2L", Trend: "neutral"},
			{Title: "Tax Calculations", Value: "100%", Trend: "up"},
			{Title: "Compliance Score", Value: "98%", Trend: "up"},
		}
	default: // auditor
		return []KPI{
			{Title: "System Health", Value: "99.5%", Trend: "up"},
			{Title: "Active Users", Value: "234", Trend: "up"},
			{Title: "Data Accuracy", Value: "99.8%", Trend: "up"},
			{Title: "Compliance Status", Value: "100%", Trend: "up"},
		}
	}
}

func quickActionsFor(role registry.Role) []QuickAction {
	switch role {
	case registry.RoleHRManager, registry.RoleAdmin:
		return []QuickAction{
			{Title: "Add New Employee", Description: "Onboard a new team member"},
			{Title: "Review Leave Requests", Description: "Requests pending approval"},
			{Title: "Generate Reports", Description: "Monthly HR analytics"},
			{Title: "Process Payroll", Description: "Run monthly payroll"},
		}
	case registry.RoleManager:
		return []QuickAction{
			{Title: "Approve Team Leaves", Description: "Requests pending"},
			{Title: "Team Performance", Description: "Review team metrics"},
			{Title: "Schedule Meeting", Description: "Plan team standup"},
			{Title: "View Team Report", Description: "Weekly team summary"},
		}
	case registry.RoleEmployee:
		return []QuickAction{
			{Title: "Apply for Leave", Description: "Request time off"},
			{Title: "Mark Attendance", Description: "Clock in/out"},
			{Title: "View Payslip", Description: "Download current payslip"},
			{Title: "Update Profile", Description: "Edit personal information"},
		}
	default: // payroll, auditor
		return []QuickAction{
			{Title: "View Reports", Description: "Access system reports"},
			{Title: "System Status", Description: "Check system health"},
			{Title: "User Activity", Description: "Monitor user actions"},
			{Title: "Compliance Check", Description: "Review compliance status"},
		}
	}
}
