package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/errs"
	"hrms/internal/domain/registry"
	"hrms/internal/platform/statefile"
)

func newManager(t *testing.T) (*Manager, *statefile.Store) {
	t.Helper()
	state := statefile.New(filepath.Join(t.TempDir(), "state.json"))
	hash, err := auth.HashPassword("demo1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(state, hash, 0, zerolog.Nop()), state
}

func TestDefaultsToHRManager(t *testing.T) {
	m, _ := newManager(t)
	if m.Current().Role != registry.RoleHRManager {
		t.Fatalf("expected hr_manager default, got %s", m.Current().Role)
	}
}

func TestSwitchPersistsAndNotifies(t *testing.T) {
	m, state := newManager(t)

	var notified registry.Identity
	m.OnChange(func(identity registry.Identity) { notified = identity })

	identity, err := m.Switch(registry.RoleAuditor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.EmployeeID != "EMP006" {
		t.Fatalf("wrong identity: %+v", identity)
	}
	if notified.Role != registry.RoleAuditor {
		t.Fatalf("subscriber not notified: %+v", notified)
	}

	saved, err := state.LastSelectedRole()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != "auditor" {
		t.Fatalf("expected persisted auditor, got %q", saved)
	}
}

func TestRestoresPersistedRole(t *testing.T) {
	state := statefile.New(filepath.Join(t.TempDir(), "state.json"))
	if err := state.SaveLastSelectedRole("payroll"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash, err := auth.HashPassword("demo1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := New(state, hash, 0, zerolog.Nop())
	if m.Current().Role != registry.RolePayroll {
		t.Fatalf("expected restored payroll role, got %s", m.Current().Role)
	}
}

func TestSwitchUnknownRole(t *testing.T) {
	m, _ := newManager(t)
	if _, err := m.Switch(registry.Role("guest")); !errors.Is(err, errs.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if m.Current().Role != registry.RoleHRManager {
		t.Fatal("failed switch must not change the active identity")
	}
}

func TestLogin(t *testing.T) {
	m, _ := newManager(t)

	identity, err := m.Login(context.Background(), "arjun@company.com", "demo1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Role != registry.RoleManager {
		t.Fatalf("expected manager, got %s", identity.Role)
	}

	if _, err := m.Login(context.Background(), "arjun@company.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := m.Login(context.Background(), "nobody@company.com", "demo1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginRespectsCancellation(t *testing.T) {
	state := statefile.New(filepath.Join(t.TempDir(), "state.json"))
	hash, err := auth.HashPassword("demo1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := New(state, hash, time.Minute, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Login(ctx, "arjun@company.com", "demo1234"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
