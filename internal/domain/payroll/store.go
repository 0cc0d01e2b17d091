package payroll

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrms/internal/domain/errs"
)

// Store owns the in-memory payroll records for the running session.
type Store struct {
	mu      sync.RWMutex
	records []PayrollRecord
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// List returns records matching the filter, in insertion order.
func (s *Store) List(filter Filter) []PayrollRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PayrollRecord, 0, len(s.records))
	for _, rec := range s.records {
		if matches(rec, filter) {
			out = append(out, rec)
		}
	}
	return out
}

// Get returns a single record by id.
func (s *Store) Get(id string) (PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return PayrollRecord{}, errs.NotFoundf("payroll record %s", id)
}

// Create validates the draft and appends a record in draft status.
func (s *Store) Create(draft Draft) (PayrollRecord, error) {
	if strings.TrimSpace(draft.EmployeeID) == "" {
		return PayrollRecord{}, errs.Validationf("employeeId is required")
	}
	if strings.TrimSpace(draft.PayPeriod) == "" {
		return PayrollRecord{}, errs.Validationf("payPeriod is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := PayrollRecord{
		ID:           uuid.NewString(),
		EmployeeID:   draft.EmployeeID,
		EmployeeName: draft.EmployeeName,
		Department:   draft.Department,
		Position:     draft.Position,
		PayPeriod:    draft.PayPeriod,
		BasicSalary:  draft.BasicSalary,
		Allowances:   draft.Allowances,
		Deductions:   draft.Deductions,
		GrossSalary:  draft.GrossSalary,
		NetSalary:    draft.NetSalary,
		Status:       StatusDraft,
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// Update merges the patch into a record. Last writer wins.
func (s *Store) Update(id string, patch Patch) (PayrollRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		rec := &s.records[i]
		if patch.BasicSalary != nil {
			rec.BasicSalary = *patch.BasicSalary
		}
		if patch.Allowances != nil {
			rec.Allowances = *patch.Allowances
		}
		if patch.Deductions != nil {
			rec.Deductions = *patch.Deductions
		}
		if patch.GrossSalary != nil {
			rec.GrossSalary = *patch.GrossSalary
		}
		if patch.NetSalary != nil {
			rec.NetSalary = *patch.NetSalary
		}
		return *rec, nil
	}
	return PayrollRecord{}, errs.NotFoundf("payroll record %s", id)
}

// Remove deletes a record unconditionally.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return errs.NotFoundf("payroll record %s", id)
}

// Process transitions draft -> processed and stamps the processing date.
func (s *Store) Process(id string) (PayrollRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		rec := &s.records[i]
		if rec.Status != StatusDraft {
			return PayrollRecord{}, errs.InvalidStatef("payroll record %s is %s, not draft", id, rec.Status)
		}
		rec.Status = StatusProcessed
		rec.ProcessedDate = s.now().Format("2006-01-02")
		return *rec, nil
	}
	return PayrollRecord{}, errs.NotFoundf("payroll record %s", id)
}

// Pay transitions processed -> paid and stamps the payment date.
func (s *Store) Pay(id string) (PayrollRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		rec := &s.records[i]
		if rec.Status != StatusProcessed {
			return PayrollRecord{}, errs.InvalidStatef("payroll record %s is %s, not processed", id, rec.Status)
		}
		rec.Status = StatusPaid
		rec.PaidDate = s.now().Format("2006-01-02")
		return *rec, nil
	}
	return PayrollRecord{}, errs.NotFoundf("payroll record %s", id)
}

func matches(rec PayrollRecord, filter Filter) bool {
	if filter.Status != "" && rec.Status != filter.Status {
		return false
	}
	if filter.PayPeriod != "" && rec.PayPeriod != filter.PayPeriod {
		return false
	}
	if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(rec.EmployeeName + " " + rec.Department)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
