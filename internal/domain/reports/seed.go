package reports

import "hrms/internal/domain/registry"

// Seed loads the demo report catalog.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = []ReportDescriptor{
		{
			ID:            "1",
			Name:          "Employee Directory Report",
			Description:   "Complete list of employees with contact information and employment details",
			Type:          TypeEmployee,
			LastGenerated: "2024-01-15",
			Status:        StatusAvailable,
			Access:        []registry.Role{registry.RoleAdmin, registry.RoleHRManager},
		},
		{
			ID:            "2",
			Name:          "Monthly Attendance Report",
			Description:   "Detailed attendance statistics for all employees",
			Type:          TypeAttendance,
			LastGenerated: "2024-01-10",
			Status:        StatusAvailable,
			Access:        []registry.Role{registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager},
		},
		{
			ID:            "3",
			Name:          "Leave Summary Report",
			Description:   "Leave balances, requests, and approval statistics",
			Type:          TypeLeave,
			LastGenerated: "2024-01-12",
			Status:        StatusAvailable,
			Access:        []registry.Role{registry.RoleAdmin, registry.RoleHRManager, registry.RoleManager},
		},
		{
			ID:            "4",
			Name:          "Payroll Summary Report",
			Description:   "Comprehensive payroll breakdown with tax calculations",
			Type:          TypePayroll,
			LastGenerated: "2024-01-01",
			Status:        StatusAvailable,
			Access:        []registry.Role{registry.RoleAdmin, registry.RoleHRManager, registry.RolePayroll},
		},
		{
			ID:          "5",
			Name:        "Department Wise Analysis",
			Description: "Employee distribution and performance by department",
			Type:        TypePerformance,
			Status:      StatusGenerating,
			Access:      []registry.Role{registry.RoleAdmin, registry.RoleHRManager},
		},
		{
			ID:            "6",
			Name:          "Audit Trail Report",
			Description:   "System access logs and data modification history",
			Type:          TypeEmployee,
			LastGenerated: "2024-01-08",
			Status:        StatusAvailable,
			Access:        []registry.Role{registry.RoleAdmin, registry.RoleAuditor},
		},
	}
}
