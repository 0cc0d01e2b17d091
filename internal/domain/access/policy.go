// Package access is the single place role grants are declared. Every view and
// record-level action is answered from the tables below; an undeclared
// (role, resource, action) combination is a deny, not an error.
package access

import (
	"fmt"

	"hrms/internal/domain/errs"
	"hrms/internal/domain/registry"
)

type Resource string

const (
	ResourceDashboard  Resource = "dashboard"
	ResourceEmployees  Resource = "employees"
	ResourceMyProfile  Resource = "my_profile"
	ResourceLeave      Resource = "leave"
	ResourceAttendance Resource = "attendance"
	ResourcePayroll    Resource = "payroll"
	ResourceMyPayslips Resource = "my_payslips"
	ResourceReports    Resource = "reports"
	ResourceSettings   Resource = "settings"
)

type Action string

const (
	ActionLeaveApprove   Action = "leave.approve"
	ActionLeaveReject    Action = "leave.reject"
	ActionLeaveApply     Action = "leave.apply"
	ActionPayrollProcess Action = "payroll.process"
	ActionPayrollPay     Action = "payroll.pay"
	ActionPayrollManage  Action = "payroll.manage"
	ActionEmployeeCreate Action = "employee.create"
	ActionEmployeeEdit   Action = "employee.edit"
	ActionEmployeeDelete Action = "employee.delete"
	ActionReportGenerate Action = "report.generate"
	ActionReportDownload Action = "report.download"
)

var viewGrants = map[Resource][]registry.Role{
	ResourceDashboard:  {registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager, registry.RoleEmployee, registry.RolePayroll, registry.RoleAuditor},
	ResourceEmployees:  {registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager},
	ResourceMyProfile:  {registry.RoleEmployee},
	ResourceLeave:      {registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager, registry.RoleEmployee},
	ResourceAttendance: {registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager, registry.RoleEmployee},
	ResourcePayroll:    {registry.RoleAdmin, registry.RoleHRManager, registry.RolePayroll},
	ResourceMyPayslips: {registry.RoleEmployee, registry.RoleManager},
	ResourceReports:    {registry.RoleAdmin, registry.RoleHRManager, registry.RolePayroll, registry.RoleAuditor},
	ResourceSettings:   {registry.RoleAdmin, registry.RoleHRManager},
}

// Employee mutation rights follow roster view access: there is no finer split
// between seeing the roster and editing it.
var actionGrants = map[Resource]map[Action][]registry.Role{
	ResourceLeave: {
		ActionLeaveApprove: {registry.RoleHRManager, registry.RoleManager, registry.RoleAdmin},
		ActionLeaveReject:  {registry.RoleHRManager, registry.RoleManager, registry.RoleAdmin},
		ActionLeaveApply:   {registry.RoleEmployee, registry.RoleManager},
	},
	ResourcePayroll: {
		ActionPayrollProcess: {registry.RoleAdmin, registry.RoleHRManager, registry.RolePayroll},
		ActionPayrollPay:     {registry.RoleAdmin, registry.RoleHRManager, registry.RolePayroll},
		ActionPayrollManage:  {registry.RoleAdmin, registry.RoleHRManager, registry.RolePayroll},
	},
	ResourceEmployees: {
		ActionEmployeeCreate: {registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager},
		ActionEmployeeEdit:   {registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager},
		ActionEmployeeDelete: {registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager},
	},
	ResourceReports: {
		ActionReportGenerate: {registry.RoleAdmin, registry.RoleHRManager, registry.RolePayroll, registry.RoleAuditor},
		ActionReportDownload: {registry.RoleAdmin, registry.RoleHRManager, registry.RolePayroll, registry.RoleAuditor},
	},
}

// actionOrder fixes the order AllowedActions reports grants in.
var actionOrder = []Action{
	ActionLeaveApprove,
	ActionLeaveReject,
	ActionLeaveApply,
	ActionPayrollProcess,
	ActionPayrollPay,
	ActionPayrollManage,
	ActionEmployeeCreate,
	ActionEmployeeEdit,
	ActionEmployeeDelete,
	ActionReportGenerate,
	ActionReportDownload,
}

// CanView reports whether a role may see a resource at all.
func CanView(role registry.Role, resource Resource) bool {
	for _, granted := range viewGrants[resource] {
		if granted == role {
			return true
		}
	}
	return false
}

// Can reports whether a role holds a record-level action grant on a resource.
func Can(role registry.Role, resource Resource, action Action) bool {
	for _, granted := range actionGrants[resource][action] {
		if granted == role {
			return true
		}
	}
	return false
}

// AllowedActions returns every action the role holds on the resource, in a
// fixed order. An empty result is a plain deny-all, not an error.
func AllowedActions(role registry.Role, resource Resource) []Action {
	var out []Action
	for _, action := range actionOrder {
		if Can(role, resource, action) {
			out = append(out, action)
		}
	}
	return out
}

// Require turns a missing grant into errs.ErrAccessDenied.
func Require(role registry.Role, resource Resource, action Action) error {
	if !Can(role, resource, action) {
		return fmt.Errorf("%w: role %s lacks %s on %s", errs.ErrAccessDenied, role, action, resource)
	}
	return nil
}

// RequireView turns a missing view grant into errs.ErrAccessDenied.
func RequireView(role registry.Role, resource Resource) error {
	if !CanView(role, resource) {
		return fmt.Errorf("%w: role %s cannot view %s", errs.ErrAccessDenied, role, resource)
	}
	return nil
}
