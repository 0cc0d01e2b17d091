package leave

// Seed loads the demo leave requests and balances.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = []LeaveRequest{
		{
			ID:           "1",
			EmployeeID:   "EMP003",
			EmployeeName: "Sneha Gupta",
			LeaveType:    TypeVacation,
			FromDate:     "2024-01-15",
			ToDate:       "2024-01-20",
			Days:         6,
			Reason:       "Family vacation to Goa",
			Status:       StatusPending,
			AppliedDate:  "2024-01-01",
		},
		{
			ID:           "2",
			EmployeeID:   "EMP002",
			EmployeeName: "Arjun Singh",
			LeaveType:    TypeSick,
			FromDate:     "2024-01-10",
			ToDate:       "2024-01-12",
			Days:         3,
			Reason:       "Fever and flu symptoms",
			Status:       StatusApproved,
			AppliedDate:  "2024-01-08",
			ApprovedBy:   "Priya Sharma",
			ApprovedDate: "2024-01-09",
		},
		{
			ID:           "3",
			EmployeeID:   "EMP004",
			EmployeeName: "Ravi Kumar",
			LeaveType:    TypePersonal,
			FromDate:     "2024-01-25",
			ToDate:       "2024-01-25",
			Days:         1,
			Reason:       "Personal appointment",
			Status:       StatusRejected,
			AppliedDate:  "2024-01-22",
			ApprovedBy:   "Priya Sharma",
			ApprovedDate: "2024-01-23",
			Comments:     "Critical project deadline approaching",
		},
	}

	s.balances = []Balance{
		{
			EmployeeID: "EMP003",
			Types: map[string]Entry{
				TypeVacation:  {Entitlement: 21, Used: 8},
				TypeSick:      {Entitlement: 12, Used: 2},
				TypePersonal:  {Entitlement: 5, Used: 1},
				TypeMaternity: {Entitlement: 90, Used: 0},
			},
		},
		{
			EmployeeID: "EMP002",
			Types: map[string]Entry{
				TypeVacation:  {Entitlement: 21, Used: 5},
				TypeSick:      {Entitlement: 12, Used: 3},
				TypePersonal:  {Entitlement: 5, Used: 0},
				TypeMaternity: {Entitlement: 0, Used: 0},
			},
		},
	}
}
