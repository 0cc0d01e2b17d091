package reports

import "hrms/internal/domain/registry"

const (
	TypeEmployee    = "employee"
	TypeLeave       = "leave"
	TypePayroll     = "payroll"
	TypeAttendance  = "attendance"
	TypePerformance = "performance"
)

const (
	StatusAvailable  = "available"
	StatusGenerating = "generating"
	StatusError      = "error"
)

// ReportDescriptor describes one downloadable report. Access is the report's
// own allow-list, checked on top of the global reports view gate.
type ReportDescriptor struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	LastGenerated string          `json:"lastGenerated,omitempty"`
	Status        string          `json:"status"`
	Access        []registry.Role `json:"access"`
}

// AccessibleBy reports whether the role is on the report's allow-list.
func (r ReportDescriptor) AccessibleBy(role registry.Role) bool {
	for _, granted := range r.Access {
		if granted == role {
			return true
		}
	}
	return false
}

// Filter narrows List output. Search matches name and description
// case-insensitively; Type is exact.
type Filter struct {
	Search string
	Type   string
}
