package payroll

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
)

// Locator reconciles the independently stored payroll categories of one
// employee into a single view and records the ids of whatever it found.
type Locator struct {
	client hrapi.ClientInterface
}

func NewLocator(c hrapi.ClientInterface) *Locator {
	return &Locator{client: c}
}

// Locate fetches every category for the given backend user id. The five
// reads are independent and run concurrently. A failed read is non-fatal:
// that category degrades to zero defaults and a warning is logged. Only a
// missing user id is fatal.
//
// Exactly one active record per category is expected; when the backend
// returns more, the first one is authoritative and the rest are ignored.
//
// monthlyRate seeds the earnings baseline when no payroll data exists yet:
// the bi-weekly basic is half the monthly rate.
func (l *Locator) Locate(ctx context.Context, userID int, monthlyRate float64) (*ReconciledPayroll, IdentifierCache, error) {
	ctxLogger := log.WithContext(ctx)
	if userID == 0 {
		return nil, IdentifierCache{}, ErrMissingIdentifier
	}
	ctxLogger.Infof("Reconciling payroll categories for user %v", userID)

	var (
		salaryRecords []hrapi.Salary
		earnings      []hrapi.Earnings
		deductions    []hrapi.Deductions
		overtime      []hrapi.TotalOvertime
		otHours       []hrapi.OvertimeHoursEntry

		salaryErr, earningsErr, deductionsErr, overtimeErr, otHoursErr error
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		salaryRecords, salaryErr = l.client.GetSalaryRecords(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		earnings, earningsErr = l.client.GetEarnings(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		deductions, deductionsErr = l.client.GetDeductions(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		overtime, overtimeErr = l.client.GetTotalOvertime(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		otHours, otHoursErr = l.client.GetOvertimeHours(ctx, userID)
	}()
	wg.Wait()

	for _, degraded := range []struct {
		category string
		err      error
	}{
		{CategorySalary, salaryErr},
		{CategoryEarnings, earningsErr},
		{CategoryDeductions, deductionsErr},
		{CategoryTotalOvertime, overtimeErr},
		{CategoryOvertimeHours, otHoursErr},
	} {
		if degraded.err != nil {
			fetchErr := &CategoryFetchError{Category: degraded.category, Err: degraded.err}
			ctxLogger.Warnf("%v, defaulting the category for user %v", fetchErr, userID)
		}
	}

	p := &ReconciledPayroll{}
	cache := IdentifierCache{}

	found := salaryErr == nil && len(salaryRecords) > 0

	if earningsErr == nil && len(earnings) > 0 {
		first := earnings[0]
		cache.EarningsID = first.ID
		p.Earnings = Earnings{
			BasicRate:        float64(first.BasicRate),
			Basic:            float64(first.Basic),
			Allowance:        float64(first.Allowance),
			NTax:             float64(first.NTax),
			VacationLeave:    float64(first.VacationLeave),
			SickLeave:        float64(first.SickLeave),
			BereavementLeave: float64(first.BereavementLeave),
		}
		found = true
	}

	if deductionsErr == nil && len(deductions) > 0 {
		first := deductions[0]
		cache.DeductionsID = first.ID
		p.Deductions = Deductions{
			SSS:        Deduction{Amount: float64(first.SSS)},
			Philhealth: Deduction{Amount: float64(first.Philhealth)},
			Pagibig:    Deduction{Amount: float64(first.Pagibig)},
			Late:       Deduction{Amount: float64(first.Late)},
			WTax:       Deduction{Amount: float64(first.WTax)},
			NoWork:     Deduction{Amount: float64(first.NoWork)},
			Loan:       Deduction{Amount: float64(first.Loan)},
			Charges:    Deduction{Amount: float64(first.Charges)},
			Undertime:  Deduction{Amount: float64(first.Undertime)},
			MSFCLoan:   Deduction{Amount: float64(first.MSFCLoan)},
		}
		found = true
	}

	if overtimeErr == nil && len(overtime) > 0 {
		first := overtime[0]
		cache.TotalOvertimeID = first.ID
		p.Overtime.RegularOT.Rate = float64(first.TotalRegularOT)
		p.Overtime.RegularHoliday.Rate = float64(first.TotalRegularHoliday)
		p.Overtime.SpecialHoliday.Rate = float64(first.TotalSpecialHoliday)
		p.Overtime.RestDay.Rate = float64(first.TotalRestDay)
		p.Overtime.NightDiff.Rate = float64(first.TotalNightDiff)
		p.Overtime.Backwage.Rate = float64(first.TotalBackwage)
		found = true
	}

	if otHoursErr == nil {
		regular, restDay, nightDiff := aggregateOvertimeHours(otHours)
		p.Overtime.RegularOT.Hours = regular
		p.Overtime.RestDay.Hours = restDay
		p.Overtime.NightDiff.Hours = nightDiff
	}

	p.HasPayrollData = found
	if !found && monthlyRate > 0 {
		p.Earnings.BasicRate = monthlyRate
		p.Earnings.Basic = Round2(monthlyRate / 2)
	}

	p.Totals = ComputeTotals(p)
	return p, cache, nil
}

// aggregateOvertimeHours sums the raw dated entries into per-type hour
// totals. Entry hours already pass the wire coercion, so an unparseable
// value counts as 0 rather than producing NaN.
func aggregateOvertimeHours(entries []hrapi.OvertimeHoursEntry) (regular, restDay, nightDiff float64) {
	for _, entry := range entries {
		switch entry.Type {
		case hrapi.OvertimeTypeRegular:
			regular += coerce(float64(entry.Hours))
		case hrapi.OvertimeTypeRestDay:
			restDay += coerce(float64(entry.Hours))
		case hrapi.OvertimeTypeNightDiff:
			nightDiff += coerce(float64(entry.Hours))
		}
	}
	return regular, restDay, nightDiff
}
