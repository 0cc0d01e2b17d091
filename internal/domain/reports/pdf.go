package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hrms/internal/domain/errs"
)

// Render produces the downloadable PDF for a generated report. Reports still
// generating or in error have nothing to download.
func Render(rep ReportDescriptor) ([]byte, error) {
	if rep.Status != StatusAvailable {
		return nil, errs.InvalidStatef("report %s is %s, not available", rep.ID, rep.Status)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, rep.Name)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, rep.Description)
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Type: %s", rep.Type))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Last generated: %s", rep.LastGenerated))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report render: %w", err)
	}
	return buf.Bytes(), nil
}
