package payroll

// Seed loads the demo payroll records.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []PayrollRecord{
		{
			ID:            "1",
			EmployeeID:    "EMP001",
			EmployeeName:  "Priya Sharma",
			Department:    "Human Resources",
			Position:      "HR Manager",
			PayPeriod:     "2024-01",
			BasicSalary:   70000,
			Allowances:    Allowances{HRA: 28000, Transport: 2000, Medical: 1500, Others: 1000},
			Deductions:    Deductions{PF: 8400, ESI: 525, Tax: 12000, Others: 500},
			GrossSalary:   102500,
			NetSalary:     81075,
			Status:        StatusPaid,
			ProcessedDate: "2024-01-25",
			PaidDate:      "2024-01-30",
		},
		{
			ID:            "2",
			EmployeeID:    "EMP002",
			EmployeeName:  "Arjun Singh",
			Department:    "Engineering",
			Position:      "Team Lead",
			PayPeriod:     "2024-01",
			BasicSalary:   100000,
			Allowances:    Allowances{HRA: 40000, Transport: 2000, Medical: 1500, Others: 2000},
			Deductions:    Deductions{PF: 12000, ESI: 750, Tax: 18000, Others: 1000},
			GrossSalary:   145500,
			NetSalary:     113750,
			Status:        StatusProcessed,
			ProcessedDate: "2024-01-25",
		},
		{
			ID:           "3",
			EmployeeID:   "EMP003",
			EmployeeName: "Sneha Gupta",
			Department:   "Engineering",
			Position:     "Software Developer",
			PayPeriod:    "2024-01",
			BasicSalary:  62500,
			Allowances:   Allowances{HRA: 25000, Transport: 2000, Medical: 1500, Others: 1000},
			Deductions:   Deductions{PF: 7500, ESI: 456, Tax: 8000, Others: 500},
			GrossSalary:  92000,
			NetSalary:    75544,
			Status:       StatusDraft,
		},
	}
}
