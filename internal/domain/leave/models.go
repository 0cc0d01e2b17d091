package leave

const (
	TypeVacation  = "vacation"
	TypeSick      = "sick"
	TypePersonal  = "personal"
	TypeMaternity = "maternity"
	TypeEmergency = "emergency"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// LeaveRequest moves pending -> approved|rejected exactly once; terminal
// states are immutable.
type LeaveRequest struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	LeaveType    string `json:"leaveType"`
	FromDate     string `json:"fromDate"`
	ToDate       string `json:"toDate"`
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AppliedDate  string `json:"appliedDate"`
	ApprovedBy   string `json:"approvedBy,omitempty"`
	ApprovedDate string `json:"approvedDate,omitempty"`
	Comments     string `json:"comments,omitempty"`
}

// Balance tracks entitlement and usage per leave type for one employee.
// Emergency leave carries no entitlement and is not tracked.
type Balance struct {
	EmployeeID string           `json:"employeeId"`
	Types      map[string]Entry `json:"types"`
}

type Entry struct {
	Entitlement int `json:"entitlement"`
	Used        int `json:"used"`
}

// Remaining is the balance left for one leave type.
func (e Entry) Remaining() int {
	return e.Entitlement - e.Used
}

// Draft carries the caller-supplied fields of a new request. Days, status and
// appliedDate are derived by the store.
type Draft struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	LeaveType    string `json:"leaveType"`
	FromDate     string `json:"fromDate"`
	ToDate       string `json:"toDate"`
	Reason       string `json:"reason"`
}

// Patch holds optional updates to a request; nil fields stay untouched.
type Patch struct {
	Reason   *string `json:"reason"`
	Comments *string `json:"comments"`
}

// Filter narrows List output. Search matches employee name and reason
// case-insensitively; the rest are exact.
type Filter struct {
	Search     string
	Status     string
	LeaveType  string
	EmployeeID string
}

func validType(leaveType string) bool {
	switch leaveType {
	case TypeVacation, TypeSick, TypePersonal, TypeMaternity, TypeEmergency:
		return true
	}
	return false
}
