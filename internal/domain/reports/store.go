package reports

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"hrms/internal/domain/errs"
	"hrms/internal/domain/registry"
)

// Store owns the report catalog. Listing is scoped to the caller's role by
// each report's own allow-list.
type Store struct {
	mu      sync.RWMutex
	reports []ReportDescriptor
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// List returns the reports the role may see, in catalog order.
func (s *Store) List(role registry.Role, filter Filter) []ReportDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ReportDescriptor, 0, len(s.reports))
	for _, rep := range s.reports {
		if !rep.AccessibleBy(role) {
			continue
		}
		if matches(rep, filter) {
			out = append(out, rep)
		}
	}
	return out
}

// Get returns a descriptor by id without access scoping; callers gate access
// themselves.
func (s *Store) Get(id string) (ReportDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rep := range s.reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return ReportDescriptor{}, errs.NotFoundf("report %s", id)
}

// Generate re-runs a report for a role on its allow-list, stamping
// lastGenerated and marking it available.
func (s *Store) Generate(id string, role registry.Role) (ReportDescriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID != id {
			continue
		}
		rep := &s.reports[i]
		if !rep.AccessibleBy(role) {
			return ReportDescriptor{}, fmt.Errorf("%w: role %s not on allow-list for report %s", errs.ErrAccessDenied, role, id)
		}
		rep.Status = StatusAvailable
		rep.LastGenerated = s.now().Format("2006-01-02")
		return *rep, nil
	}
	return ReportDescriptor{}, errs.NotFoundf("report %s", id)
}

func matches(rep ReportDescriptor, filter Filter) bool {
	if filter.Type != "" && rep.Type != filter.Type {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(rep.Name + " " + rep.Description)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
