// Package audit keeps a bounded in-memory trail of security-relevant events:
// role switches, logins and denied requests. The trail backs the audit report
// surface available to admins and auditors.
package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hrms/internal/domain/registry"
)

const (
	EventRoleSwitch = "role_switch"
	EventLogin      = "login"
	EventLogout     = "logout"
	EventDenied     = "access_denied"
)

// maxEvents caps the trail; oldest events are dropped first.
const maxEvents = 1000

type Event struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	ActorID   string        `json:"actorId"`
	ActorName string        `json:"actorName"`
	Role      registry.Role `json:"role"`
	Detail    string        `json:"detail"`
	RequestID string        `json:"requestId,omitempty"`
	At        time.Time     `json:"at"`
}

type Filter struct {
	Type    string
	ActorID string
}

type Trail struct {
	mu     sync.RWMutex
	events []Event

	now func() time.Time
}

func NewTrail() *Trail {
	return &Trail{now: time.Now}
}

// Record appends an event, evicting the oldest once the cap is reached.
func (t *Trail) Record(eventType string, actor registry.Identity, detail, requestID string) Event {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actor.EmployeeID,
		ActorName: actor.Name,
		Role:      actor.Role,
		Detail:    detail,
		RequestID: requestID,
		At:        t.now(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, evt)
	if len(t.events) > maxEvents {
		t.events = t.events[len(t.events)-maxEvents:]
	}
	return evt
}

// List returns matching events newest first.
func (t *Trail) List(filter Filter) []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Event, 0, len(t.events))
	for i := len(t.events) - 1; i >= 0; i-- {
		evt := t.events[i]
		if filter.Type != "" && evt.Type != filter.Type {
			continue
		}
		if filter.ActorID != "" && evt.ActorID != filter.ActorID {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.events)
}

// reviewers may read the trail; everyone else is turned away regardless of
// their other grants.
var reviewers = []registry.Role{registry.RoleAdmin, registry.RoleAuditor}

func CanReview(role registry.Role) bool {
	for _, r := range reviewers {
		if r == role {
			return true
		}
	}
	return false
}
