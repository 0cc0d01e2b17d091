package employee

import (
	"errors"
	"testing"

	"hrms/internal/domain/errs"
)

func seededStore() *Store {
	s := NewStore()
	s.Seed()
	return s
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	s := seededStore()
	before := len(s.List(Filter{}))

	created, err := s.Create(Draft{
		Name:       "Test Person",
		Email:      "test.person@company.com",
		Department: "Engineering",
		Position:   "Software Developer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.EmployeeID == "" {
		t.Fatal("expected assigned ids")
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status active, got %s", created.Status)
	}
	if created.JoinDate == "" {
		t.Fatal("expected default join date")
	}

	listed := s.List(Filter{})
	if len(listed) != before+1 {
		t.Fatalf("expected %d records, got %d", before+1, len(listed))
	}
	found := 0
	for _, emp := range listed {
		if emp.ID == created.ID {
			found++
		}
	}
	if found != 1 {
		t.Fatalf("expected exactly one record with new id, found %d", found)
	}
}

func TestCreateMissingRequiredField(t *testing.T) {
	s := seededStore()
	_, err := s.Create(Draft{Name: "No Email", Department: "Engineering", Position: "Dev"})
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	_, err = s.Create(Draft{Name: "Bad Status", Email: "x@company.com", Department: "Engineering", Position: "Dev", Status: "retired"})
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown status, got %v", err)
	}
}

func TestUpdateMergesPatch(t *testing.T) {
	s := seededStore()
	position := "Senior Software Developer"
	salary := 900000

	updated, err := s.Update("3", Patch{Position: &position, Salary: &salary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Position != position || updated.Salary != salary {
		t.Fatalf("patch not applied: %+v", updated)
	}
	// untouched fields survive the merge
	if updated.Name != "Sneha Gupta" || updated.Department != "Engineering" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}

	got, err := s.Get("3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Position != position {
		t.Fatal("update not visible through Get")
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := seededStore()
	name := "Ghost"
	if _, err := s.Update("missing", Patch{Name: &name}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	s := seededStore()
	if err := s.Remove("5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, emp := range s.List(Filter{}) {
		if emp.ID == "5" {
			t.Fatal("removed record still listed")
		}
	}
	if err := s.Remove("5"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	s := seededStore()

	active := s.List(Filter{Status: StatusActive})
	if len(active) != 4 {
		t.Fatalf("expected 4 active employees, got %d", len(active))
	}

	search := s.List(Filter{Search: "SNEHA"})
	if len(search) != 1 || search[0].EmployeeID != "EMP003" {
		t.Fatalf("case-insensitive search failed: %+v", search)
	}

	eng := s.List(Filter{Department: "Engineering"})
	if len(eng) != 2 {
		t.Fatalf("expected 2 engineering employees, got %d", len(eng))
	}

	// insertion order preserved
	all := s.List(Filter{})
	if all[0].EmployeeID != "EMP001" || all[4].EmployeeID != "EMP005" {
		t.Fatalf("insertion order broken: %+v", all)
	}
}
