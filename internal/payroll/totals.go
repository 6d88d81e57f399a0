package payroll

import "math"

// Round2 rounds half-up (away from zero) to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// coerce guards the arithmetic boundary: an invalid value never reaches a
// sum, it becomes 0 instead.
func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func sum(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += coerce(v)
	}
	return total
}

// ComputeTotals derives gross pay, total deductions and net salary from the
// reconciled view. Pure and deterministic; every result is rounded to two
// decimals.
//
// Gross pay includes the backwage rate. The total_overtime figure written to
// the backend does not (see TotalOvertimeValue); the two sums are intentionally
// different.
func ComputeTotals(p *ReconciledPayroll) Totals {
	gross := sum(
		p.Earnings.Basic,
		p.Earnings.Allowance,
		p.Earnings.NTax,
		p.Earnings.VacationLeave,
		p.Earnings.SickLeave,
		p.Earnings.BereavementLeave,
		p.Overtime.RegularOT.Rate,
		p.Overtime.RegularHoliday.Rate,
		p.Overtime.SpecialHoliday.Rate,
		p.Overtime.RestDay.Rate,
		p.Overtime.NightDiff.Rate,
		p.Overtime.Backwage.Rate,
	)

	deductions := sum(
		p.Deductions.SSS.Amount,
		p.Deductions.Philhealth.Amount,
		p.Deductions.Pagibig.Amount,
		p.Deductions.Late.Amount,
		p.Deductions.WTax.Amount,
		p.Deductions.NoWork.Amount,
		p.Deductions.Loan.Amount,
		p.Deductions.Charges.Amount,
		p.Deductions.Undertime.Amount,
		p.Deductions.MSFCLoan.Amount,
	)

	gross = Round2(gross)
	deductions = Round2(deductions)
	return Totals{
		GrossPay:        gross,
		TotalDeductions: deductions,
		NetSalary:       Round2(gross - deductions),
	}
}

// TotalOvertimeValue is the overtime figure persisted to the backend: the
// five premium rates without backwage.
func TotalOvertimeValue(ot Overtime) float64 {
	return Round2(sum(
		ot.RegularOT.Rate,
		ot.RegularHoliday.Rate,
		ot.SpecialHoliday.Rate,
		ot.RestDay.Rate,
		ot.NightDiff.Rate,
	))
}
