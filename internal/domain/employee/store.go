package employee

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrms/internal/domain/errs"
)

// Store owns the in-memory roster. Records keep insertion order; the store is
// reset on process restart.
type Store struct {
	mu        sync.RWMutex
	employees []Employee
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// List returns roster records matching the filter, in insertion order.
func (s *Store) List(filter Filter) []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		if matches(emp, filter) {
			out = append(out, emp)
		}
	}
	return out
}

// Get returns a single record by id.
func (s *Store) Get(id string) (Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return Employee{}, errs.NotFoundf("employee %s", id)
}

// Create validates the draft, assigns ids and defaults, and appends the
// record.
func (s *Store) Create(draft Draft) (Employee, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return Employee{}, errs.Validationf("name is required")
	}
	if strings.TrimSpace(draft.Email) == "" {
		return Employee{}, errs.Validationf("email is required")
	}
	if strings.TrimSpace(draft.Department) == "" {
		return Employee{}, errs.Validationf("department is required")
	}
	if strings.TrimSpace(draft.Position) == "" {
		return Employee{}, errs.Validationf("position is required")
	}
	status := draft.Status
	if status == "" {
		status = StatusActive
	}
	if !validStatus(status) {
		return Employee{}, errs.Validationf("unknown status %q", draft.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	emp := Employee{
		ID:         uuid.NewString(),
		EmployeeID: draft.EmployeeID,
		Name:       draft.Name,
		Email:      draft.Email,
		Phone:      draft.Phone,
		Department: draft.Department,
		Position:   draft.Position,
		Manager:    draft.Manager,
		JoinDate:   draft.JoinDate,
		Status:     status,
		Salary:     draft.Salary,
		Location:   draft.Location,
	}
	if emp.EmployeeID == "" {
		emp.EmployeeID = fmt.Sprintf("EMP%d", now.UnixMilli())
	}
	if emp.JoinDate == "" {
		emp.JoinDate = now.Format("2006-01-02")
	}
	s.employees = append(s.employees, emp)
	return emp, nil
}

// Update merges the patch into the record. Last writer wins; there is no
// concurrency token.
func (s *Store) Update(id string, patch Patch) (Employee, error) {
	if patch.Status != nil && !validStatus(*patch.Status) {
		return Employee{}, errs.Validationf("unknown status %q", *patch.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		emp := &s.employees[i]
		if patch.Name != nil {
			emp.Name = *patch.Name
		}
		if patch.Email != nil {
			emp.Email = *patch.Email
		}
		if patch.Phone != nil {
			emp.Phone = *patch.Phone
		}
		if patch.Department != nil {
			emp.Department = *patch.Department
		}
		if patch.Position != nil {
			emp.Position = *patch.Position
		}
		if patch.Manager != nil {
			emp.Manager = *patch.Manager
		}
		if patch.JoinDate != nil {
			emp.JoinDate = *patch.JoinDate
		}
		if patch.Status != nil {
			emp.Status = *patch.Status
		}
		if patch.Salary != nil {
			emp.Salary = *patch.Salary
		}
		if patch.Location != nil {
			emp.Location = *patch.Location
		}
		return *emp, nil
	}
	return Employee{}, errs.NotFoundf("employee %s", id)
}

// Remove deletes a record unconditionally. No cascade, no soft delete.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return errs.NotFoundf("employee %s", id)
}

func matches(emp Employee, filter Filter) bool {
	if filter.Status != "" && emp.Status != filter.Status {
		return false
	}
	if filter.Department != "" && emp.Department != filter.Department {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(strings.Join([]string{
			emp.Name, emp.Email, emp.EmployeeID, emp.Department, emp.Position,
		}, " "))
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
