package payroll

const (
	StatusDraft     = "draft"
	StatusProcessed = "processed"
	StatusPaid      = "paid"
	StatusFailed    = "failed"
)

// PayrollRecord moves draft -> processed -> paid. The failed status is
// terminal and only ever set by an external process; no transition into it is
// exposed here. Gross and net are precomputed inputs, not derived values.
type PayrollRecord struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	EmployeeName  string     `json:"employeeName"`
	Department    string     `json:"department"`
	Position      string     `json:"position"`
	PayPeriod     string     `json:"payPeriod"`
	BasicSalary   int        `json:"basicSalary"`
	Allowances    Allowances `json:"allowances"`
	Deductions    Deductions `json:"deductions"`
	GrossSalary   int        `json:"grossSalary"`
	NetSalary     int        `json:"netSalary"`
	Status        string     `json:"status"`
	ProcessedDate string     `json:"processedDate,omitempty"`
	PaidDate      string     `json:"paidDate,omitempty"`
}

type Allowances struct {
	HRA       int `json:"hra"`
	Transport int `json:"transport"`
	Medical   int `json:"medical"`
	Others    int `json:"others"`
}

type Deductions struct {
	PF     int `json:"pf"`
	ESI    int `json:"esi"`
	Tax    int `json:"tax"`
	Others int `json:"others"`
}

// Draft carries the fields a caller supplies on create; the record starts in
// draft status.
type Draft struct {
	EmployeeID   string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	Department   string     `json:"department"`
	Position     string     `json:"position"`
	PayPeriod    string     `json:"payPeriod"`
	BasicSalary  int        `json:"basicSalary"`
	Allowances   Allowances `json:"allowances"`
	Deductions   Deductions `json:"deductions"`
	GrossSalary  int        `json:"grossSalary"`
	NetSalary    int        `json:"netSalary"`
}

// Patch holds optional field updates; nil fields stay untouched.
type Patch struct {
	BasicSalary *int        `json:"basicSalary"`
	Allowances  *Allowances `json:"allowances"`
	Deductions  *Deductions `json:"deductions"`
	GrossSalary *int        `json:"grossSalary"`
	NetSalary   *int        `json:"netSalary"`
}

// Filter narrows List output. Search matches employee name and department
// case-insensitively; the rest are exact.
type Filter struct {
	Search     string
	Status     string
	PayPeriod  string
	EmployeeID string
}

// Summary aggregates a record set for presentation.
type Summary struct {
	TotalEmployees  int `json:"totalEmployees"`
	TotalGross      int `json:"totalGross"`
	TotalNet        int `json:"totalNet"`
	TotalDeductions int `json:"totalDeductions"`
	Processed       int `json:"processed"`
	Pending         int `json:"pending"`
}
