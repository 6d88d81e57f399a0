package payroll

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
)

// Coordinator persists a reconciled payroll with create-or-update semantics
// per category. Writes are issued sequentially in a fixed order and each
// one's success gates the next; a failure aborts the rest of the save.
// Concurrent saves are serialized, since two creates for the same category
// would duplicate the record.
type Coordinator struct {
	client hrapi.ClientInterface
	mu     sync.Mutex
	now    func() time.Time
}

func NewCoordinator(c hrapi.ClientInterface) *Coordinator {
	return &Coordinator{client: c, now: time.Now}
}

// Persist writes earnings, then deductions, then overtime totals. When the
// cache holds an id the category is fully replaced; otherwise a record is
// created and its id captured so the next save in this session updates
// instead of duplicating. The returned cache keeps every capture from
// successful writes, including those before a failed one.
func (co *Coordinator) Persist(ctx context.Context, userID int, p *ReconciledPayroll, cache IdentifierCache) (IdentifierCache, error) {
	co.mu.Lock()
	defer co.mu.Unlock()

	ctxLogger := log.WithContext(ctx)
	if userID == 0 {
		return cache, ErrMissingIdentifier
	}
	ctxLogger.Infof("Persisting payroll categories for user %v", userID)

	earnings := hrapi.Earnings{
		User:             userID,
		BasicRate:        hrapi.Number(p.Earnings.BasicRate),
		Basic:            hrapi.Number(p.Earnings.Basic),
		Allowance:        hrapi.Number(p.Earnings.Allowance),
		NTax:             hrapi.Number(p.Earnings.NTax),
		VacationLeave:    hrapi.Number(p.Earnings.VacationLeave),
		SickLeave:        hrapi.Number(p.Earnings.SickLeave),
		BereavementLeave: hrapi.Number(p.Earnings.BereavementLeave),
	}
	if cache.EarningsID != 0 {
		if err := co.client.UpdateEarnings(ctx, cache.EarningsID, earnings); err != nil {
			return cache, &CategoryWriteError{Category: CategoryEarnings, Err: err}
		}
	} else {
		created, err := co.client.CreateEarnings(ctx, earnings)
		if err != nil {
			return cache, &CategoryWriteError{Category: CategoryEarnings, Err: err}
		}
		cache.EarningsID = created.ID
	}

	deductions := hrapi.Deductions{
		User:       userID,
		SSS:        hrapi.Number(p.Deductions.SSS.Amount),
		Philhealth: hrapi.Number(p.Deductions.Philhealth.Amount),
		Pagibig:    hrapi.Number(p.Deductions.Pagibig.Amount),
		Late:       hrapi.Number(p.Deductions.Late.Amount),
		WTax:       hrapi.Number(p.Deductions.WTax.Amount),
		NoWork:     hrapi.Number(p.Deductions.NoWork.Amount),
		Loan:       hrapi.Number(p.Deductions.Loan.Amount),
		Charges:    hrapi.Number(p.Deductions.Charges.Amount),
		Undertime:  hrapi.Number(p.Deductions.Undertime.Amount),
		MSFCLoan:   hrapi.Number(p.Deductions.MSFCLoan.Amount),
	}
	if cache.DeductionsID != 0 {
		if err := co.client.UpdateDeductions(ctx, cache.DeductionsID, deductions); err != nil {
			return cache, &CategoryWriteError{Category: CategoryDeductions, Err: err}
		}
	} else {
		created, err := co.client.CreateDeductions(ctx, deductions)
		if err != nil {
			return cache, &CategoryWriteError{Category: CategoryDeductions, Err: err}
		}
		cache.DeductionsID = created.ID
	}

	// total_overtime excludes backwage, unlike gross pay. total_late and
	// total_undertime mirror the deduction amounts for independent
	// reporting. biweek_start is stamped at write time.
	overtime := hrapi.TotalOvertime{
		User:                userID,
		TotalRegularOT:      hrapi.Number(p.Overtime.RegularOT.Rate),
		TotalRegularHoliday: hrapi.Number(p.Overtime.RegularHoliday.Rate),
		TotalSpecialHoliday: hrapi.Number(p.Overtime.SpecialHoliday.Rate),
		TotalRestDay:        hrapi.Number(p.Overtime.RestDay.Rate),
		TotalNightDiff:      hrapi.Number(p.Overtime.NightDiff.Rate),
		TotalBackwage:       hrapi.Number(p.Overtime.Backwage.Rate),
		TotalOvertime:       hrapi.Number(TotalOvertimeValue(p.Overtime)),
		TotalLate:           hrapi.Number(p.Deductions.Late.Amount),
		TotalUndertime:      hrapi.Number(p.Deductions.Undertime.Amount),
		BiweekStart:         co.now().Format("2006-01-02"),
	}
	if cache.TotalOvertimeID != 0 {
		if err := co.client.UpdateTotalOvertime(ctx, cache.TotalOvertimeID, overtime); err != nil {
			return cache, &CategoryWriteError{Category: CategoryTotalOvertime, Err: err}
		}
	} else {
		created, err := co.client.CreateTotalOvertime(ctx, overtime)
		if err != nil {
			return cache, &CategoryWriteError{Category: CategoryTotalOvertime, Err: err}
		}
		cache.TotalOvertimeID = created.ID
	}

	return cache, nil
}
