package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// GeneratePayslipPDF renders a payslip for one record.
func GeneratePayslipPDF(rec PayrollRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", rec.EmployeeName, rec.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", rec.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", rec.Position))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay Period: %s", rec.PayPeriod))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic Salary: %d", rec.BasicSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total Allowances: %d", rec.Allowances.Total()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total Deductions: %d", rec.Deductions.Total()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross Salary: %d", rec.GrossSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net Salary: %d", rec.NetSalary))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", rec.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("payslip render: %w", err)
	}
	return buf.Bytes(), nil
}
