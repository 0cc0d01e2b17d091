package audit

import (
	"fmt"
	"testing"
	"time"

	"hrms/internal/domain/registry"
)

func testIdentity(role registry.Role) registry.Identity {
	id, err := registry.ResolveIdentity(role)
	if err != nil {
		panic(err)
	}
	return id
}

func TestRecordAndList(t *testing.T) {
	trail := NewTrail()
	trail.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }

	trail.Record(EventLogin, testIdentity(registry.RoleHRManager), "logged in", "req-1")
	trail.Record(EventRoleSwitch, testIdentity(registry.RoleEmployee), "switched to employee", "req-2")
	trail.Record(EventDenied, testIdentity(registry.RoleEmployee), "GET /api/v1/payroll", "req-3")

	all := trail.List(Filter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// newest first
	if all[0].Type != EventDenied {
		t.Fatalf("expected newest event first, got %s", all[0].Type)
	}
	if all[0].ID == "" || all[0].At.IsZero() {
		t.Fatalf("event missing id or timestamp: %+v", all[0])
	}

	denied := trail.List(Filter{Type: EventDenied})
	if len(denied) != 1 || denied[0].RequestID != "req-3" {
		t.Fatalf("unexpected denied events: %+v", denied)
	}

	employee := testIdentity(registry.RoleEmployee)
	byActor := trail.List(Filter{ActorID: employee.EmployeeID})
	if len(byActor) != 2 {
		t.Fatalf("expected 2 events for %s, got %d", employee.EmployeeID, len(byActor))
	}
}

func TestTrailCap(t *testing.T) {
	trail := NewTrail()
	actor := testIdentity(registry.RoleAdmin)
	for i := 0; i < maxEvents+50; i++ {
		trail.Record(EventDenied, actor, fmt.Sprintf("event %d", i), "")
	}
	if trail.Len() != maxEvents {
		t.Fatalf("expected trail capped at %d, got %d", maxEvents, trail.Len())
	}
	newest := trail.List(Filter{})[0]
	if newest.Detail != fmt.Sprintf("event %d", maxEvents+49) {
		t.Fatalf("expected newest event retained, got %s", newest.Detail)
	}
}

func TestCanReview(t *testing.T) {
	allowed := map[registry.Role]bool{
		registry.RoleAdmin:   true,
		registry.RoleAuditor: true,
	}
	for _, role := range registry.List() {
		if got := CanReview(role); got != allowed[role] {
			t.Fatalf("CanReview(%s) = %v, want %v", role, got, allowed[role])
		}
	}
}
