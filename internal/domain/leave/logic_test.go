package leave

import (
	"errors"
	"testing"

	"hrms/internal/domain/errs"
)

func TestCalculateDays(t *testing.T) {
	days, err := CalculateDays("2024-01-15", "2024-01-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 6 {
		t.Fatalf("expected 6 days, got %d", days)
	}

	days, err = CalculateDays("2024-01-25", "2024-01-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day, got %d", days)
	}
}

func TestCalculateDaysInvalid(t *testing.T) {
	if _, err := CalculateDays("2024-02-10", "2024-02-09"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected ErrValidation for inverted range, got %v", err)
	}
	if _, err := CalculateDays("not-a-date", "2024-02-09"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad date, got %v", err)
	}
}
