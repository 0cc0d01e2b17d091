package leave

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrms/internal/domain/errs"
)

// Store owns leave requests and balances for the running session. Requests
// keep insertion order; approving a request also debits the matching balance
// so the two collections never drift apart.
type Store struct {
	mu       sync.RWMutex
	requests []LeaveRequest
	balances []Balance
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// List returns requests matching the filter, in insertion order.
func (s *Store) List(filter Filter) []LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeaveRequest, 0, len(s.requests))
	for _, req := range s.requests {
		if matches(req, filter) {
			out = append(out, req)
		}
	}
	return out
}

// Get returns a single request by id.
func (s *Store) Get(id string) (LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, req := range s.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return LeaveRequest{}, errs.NotFoundf("leave request %s", id)
}

// Create validates the draft, derives the inclusive day count and appends a
// pending request.
func (s *Store) Create(draft Draft) (LeaveRequest, error) {
	if strings.TrimSpace(draft.EmployeeID) == "" {
		return LeaveRequest{}, errs.Validationf("employeeId is required")
	}
	if strings.TrimSpace(draft.Reason) == "" {
		return LeaveRequest{}, errs.Validationf("reason is required")
	}
	if !validType(draft.LeaveType) {
		return LeaveRequest{}, errs.Validationf("unknown leaveType %q", draft.LeaveType)
	}
	days, err := CalculateDays(draft.FromDate, draft.ToDate)
	if err != nil {
		return LeaveRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req := LeaveRequest{
		ID:           uuid.NewString(),
		EmployeeID:   draft.EmployeeID,
		EmployeeName: draft.EmployeeName,
		LeaveType:    draft.LeaveType,
		FromDate:     draft.FromDate,
		ToDate:       draft.ToDate,
		Days:         days,
		Reason:       draft.Reason,
		Status:       StatusPending,
		AppliedDate:  s.now().Format(dateLayout),
	}
	s.requests = append(s.requests, req)
	return req, nil
}

// Update merges the patch into a request. Last writer wins.
func (s *Store) Update(id string, patch Patch) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		if patch.Reason != nil {
			s.requests[i].Reason = *patch.Reason
		}
		if patch.Comments != nil {
			s.requests[i].Comments = *patch.Comments
		}
		return s.requests[i], nil
	}
	return LeaveRequest{}, errs.NotFoundf("leave request %s", id)
}

// Remove deletes a request unconditionally.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return nil
		}
	}
	return errs.NotFoundf("leave request %s", id)
}

// Approve transitions a pending request to approved and debits the matching
// balance entry when one exists. Re-approving a terminal request fails.
func (s *Store) Approve(id, approverName string) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		req := &s.requests[i]
		if req.Status != StatusPending {
			return LeaveRequest{}, errs.InvalidStatef("leave request %s is %s, not pending", id, req.Status)
		}
		req.Status = StatusApproved
		req.ApprovedBy = approverName
		req.ApprovedDate = s.now().Format(dateLayout)
		s.debitBalance(req.EmployeeID, req.LeaveType, req.Days)
		return *req, nil
	}
	return LeaveRequest{}, errs.NotFoundf("leave request %s", id)
}

// Reject transitions a pending request to rejected with optional reviewer
// comments.
func (s *Store) Reject(id, approverName, comments string) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		req := &s.requests[i]
		if req.Status != StatusPending {
			return LeaveRequest{}, errs.InvalidStatef("leave request %s is %s, not pending", id, req.Status)
		}
		req.Status = StatusRejected
		req.ApprovedBy = approverName
		req.ApprovedDate = s.now().Format(dateLayout)
		req.Comments = comments
		return *req, nil
	}
	return LeaveRequest{}, errs.NotFoundf("leave request %s", id)
}

// Balances returns all balances, or the one for a single employee when
// employeeID is set.
func (s *Store) Balances(employeeID string) []Balance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Balance, 0, len(s.balances))
	for _, bal := range s.balances {
		if employeeID != "" && bal.EmployeeID != employeeID {
			continue
		}
		out = append(out, copyBalance(bal))
	}
	return out
}

// debitBalance is called under the write lock. Employees without a seeded
// balance row and untracked leave types are skipped.
func (s *Store) debitBalance(employeeID, leaveType string, days int) {
	for i := range s.balances {
		if s.balances[i].EmployeeID != employeeID {
			continue
		}
		entry, ok := s.balances[i].Types[leaveType]
		if !ok {
			return
		}
		entry.Used += days
		s.balances[i].Types[leaveType] = entry
		return
	}
}

func copyBalance(bal Balance) Balance {
	types := make(map[string]Entry, len(bal.Types))
	for k, v := range bal.Types {
		types[k] = v
	}
	return Balance{EmployeeID: bal.EmployeeID, Types: types}
}

func matches(req LeaveRequest, filter Filter) bool {
	if filter.Status != "" && req.Status != filter.Status {
		return false
	}
	if filter.LeaveType != "" && req.LeaveType != filter.LeaveType {
		return false
	}
	if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(req.EmployeeName + " " + req.Reason)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
