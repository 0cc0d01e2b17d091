package payroll

import (
	"bytes"
	"errors"
	"testing"

	"hrms/internal/domain/errs"
)

func seededStore() *Store {
	s := NewStore()
	s.Seed()
	return s
}

func TestProcessDraft(t *testing.T) {
	s := seededStore()

	rec, err := s.Process("3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != StatusProcessed || rec.ProcessedDate == "" {
		t.Fatalf("process not stamped: %+v", rec)
	}

	if _, err := s.Process("3"); !errors.Is(err, errs.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on reprocess, got %v", err)
	}
}

func TestPayRequiresProcessed(t *testing.T) {
	s := seededStore()

	// record 3 is a draft
	if _, err := s.Pay("3"); !errors.Is(err, errs.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}

	rec, err := s.Pay("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != StatusPaid || rec.PaidDate == "" {
		t.Fatalf("pay not stamped: %+v", rec)
	}
}

func TestProcessPaidFailsAndStoreUnchanged(t *testing.T) {
	s := seededStore()

	before, err := s.Get("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if before.Status != StatusPaid {
		t.Fatalf("seed expectation broken: %+v", before)
	}

	if _, err := s.Process("1"); !errors.Is(err, errs.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}

	after, err := s.Get("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after != before {
		t.Fatalf("store mutated by failed transition: %+v != %+v", after, before)
	}
}

func TestCreateUpdateRemove(t *testing.T) {
	s := seededStore()

	rec, err := s.Create(Draft{
		EmployeeID:   "EMP004",
		EmployeeName: "Ravi Kumar",
		Department:   "Finance",
		Position:     "Finance Officer",
		PayPeriod:    "2024-01",
		BasicSalary:  54000,
		GrossSalary:  78000,
		NetSalary:    64000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != StatusDraft || rec.ID == "" {
		t.Fatalf("create defaults broken: %+v", rec)
	}

	tax := 9000
	updated, err := s.Update(rec.ID, Patch{Deductions: &Deductions{PF: 6480, Tax: tax}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Deductions.Tax != tax || updated.BasicSalary != 54000 {
		t.Fatalf("patch merge broken: %+v", updated)
	}

	if err := s.Remove(rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get(rec.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	s := seededStore()
	if _, err := s.Create(Draft{PayPeriod: "2024-02"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s := seededStore()
	summary := Summarize(s.List(Filter{}))

	if summary.TotalEmployees != 3 {
		t.Fatalf("expected 3 employees, got %d", summary.TotalEmployees)
	}
	if summary.TotalGross != 102500+145500+92000 {
		t.Fatalf("gross total wrong: %d", summary.TotalGross)
	}
	if summary.Processed != 2 || summary.Pending != 1 {
		t.Fatalf("status counts wrong: %+v", summary)
	}
}

func TestGeneratePayslipPDF(t *testing.T) {
	s := seededStore()
	rec, err := s.Get("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := GeneratePayslipPDF(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}
