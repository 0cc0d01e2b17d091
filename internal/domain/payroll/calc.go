package payroll

// Total sums the allowance components for display.
func (a Allowances) Total() int {
	return a.HRA + a.Transport + a.Medical + a.Others
}

// Total sums the deduction components for display.
func (d Deductions) Total() int {
	return d.PF + d.ESI + d.Tax + d.Others
}

// Summarize aggregates the given records. Paid and processed records both
// count as processed; drafts count as pending.
func Summarize(records []PayrollRecord) Summary {
	summary := Summary{TotalEmployees: len(records)}
	for _, rec := range records {
		summary.TotalGross += rec.GrossSalary
		summary.TotalNet += rec.NetSalary
		summary.TotalDeductions += rec.Deductions.Total()
		switch rec.Status {
		case StatusProcessed, StatusPaid:
			summary.Processed++
		case StatusDraft:
			summary.Pending++
		}
	}
	return summary
}
