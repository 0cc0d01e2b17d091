package leave

import (
	"time"

	"hrms/internal/domain/errs"
)

const dateLayout = "2006-01-02"

// CalculateDays returns the inclusive day count between two ISO dates.
func CalculateDays(fromDate, toDate string) (int, error) {
	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return 0, errs.Validationf("invalid fromDate %q", fromDate)
	}
	to, err := time.Parse(dateLayout, toDate)
	if err != nil {
		return 0, errs.Validationf("invalid toDate %q", toDate)
	}
	if to.Before(from) {
		return 0, errs.Validationf("toDate before fromDate")
	}
	return int(to.Sub(from).Hours()/24) + 1, nil
}
