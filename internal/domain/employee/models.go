package employee

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusTerminated = "terminated"
)

// Employee is a roster record. Manager is a display name, not a managed
// reference; deleting an employee does not cascade anywhere.
type Employee struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Manager    string `json:"manager"`
	JoinDate   string `json:"joinDate"`
	Status     string `json:"status"`
	Salary     int    `json:"salary"`
	Location   string `json:"location"`
}

// Draft carries the fields a caller supplies on create. Anything the draft
// leaves empty is defaulted by the store.
type Draft struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Manager    string `json:"manager"`
	JoinDate   string `json:"joinDate"`
	Status     string `json:"status"`
	Salary     int    `json:"salary"`
	Location   string `json:"location"`
}

// Patch holds optional field updates; nil fields are left untouched.
type Patch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Manager    *string `json:"manager"`
	JoinDate   *string `json:"joinDate"`
	Status     *string `json:"status"`
	Salary     *int    `json:"salary"`
	Location   *string `json:"location"`
}

// Filter narrows List output. Search is a case-insensitive substring match
// over name, email, employee id, department and position; Status and
// Department are exact matches.
type Filter struct {
	Search     string
	Status     string
	Department string
}

func validStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	}
	return false
}
