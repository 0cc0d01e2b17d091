package employee

// Seed loads the demo roster. Seed data lives only in memory and is reloaded
// on every start.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = []Employee{
		{
			ID:         "1",
			EmployeeID: "EMP001",
			Name:       "Priya Sharma",
			Email:      "priya.sharma@company.com",
			Phone:      "+91 98765 43210",
			Department: "Human Resources",
			Position:   "HR Manager",
			Manager:    "CEO",
			JoinDate:   "2022-01-15",
			Status:     StatusActive,
			Salary:     850000,
			Location:   "Mumbai",
		},
		{
			ID:         "2",
			EmployeeID: "EMP002",
			Name:       "Arjun Singh",
			Email:      "arjun.singh@company.com",
			Phone:      "+91 87654 32109",
			Department: "Engineering",
			Position:   "Team Lead",
			Manager:    "Priya Sharma",
			JoinDate:   "2021-08-10",
			Status:     StatusActive,
			Salary:     1200000,
			Location:   "Bangalore",
		},
		{
			ID:         "3",
			EmployeeID: "EMP003",
			Name:       "Sneha Gupta",
			Email:      "sneha.gupta@company.com",
			Phone:      "+91 76543 21098",
			Department: "Engineering",
			Position:   "Software Developer",
			Manager:    "Arjun Singh",
			JoinDate:   "2023-03-20",
			Status:     StatusActive,
			Salary:     750000,
			Location:   "Pune",
		},
		{
			ID:         "4",
			EmployeeID: "EMP004",
			Name:       "Ravi Kumar",
			Email:      "ravi.kumar@company.com",
			Phone:      "+91 65432 10987",
			Department: "Finance",
			Position:   "Finance Officer",
			Manager:    "Priya Sharma",
			JoinDate:   "2022-06-05",
			Status:     StatusActive,
			Salary:     650000,
			Location:   "Delhi",
		},
		{
			ID:         "5",
			EmployeeID: "EMP005",
			Name:       "Anjali Mehta",
			Email:      "anjali.mehta@company.com",
			Phone:      "+91 54321 09876",
			Department: "Marketing",
			Position:   "Marketing Executive",
			Manager:    "Priya Sharma",
			JoinDate:   "2023-01-12",
			Status:     StatusInactive,
			Salary:     550000,
			Location:   "Mumbai",
		},
	}
}
