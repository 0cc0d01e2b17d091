package statefile

import (
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "state.json"))

	role, err := store.LastSelectedRole()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != "" {
		t.Fatalf("expected empty role before first save, got %q", role)
	}

	if err := store.SaveLastSelectedRole("payroll"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	role, err = store.LastSelectedRole()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != "payroll" {
		t.Fatalf("expected payroll, got %q", role)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	role, err = store.LastSelectedRole()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != "" {
		t.Fatalf("expected cleared role, got %q", role)
	}
}
