package payroll

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
)

// ComputeBenefits asks the backend contribution schedules for the three
// statutory amounts at the candidate basic rate. A failure never blocks the
// editing session: the caller gets zero contributions and a warning is
// logged.
func ComputeBenefits(ctx context.Context, client hrapi.ClientInterface, basicRate float64) Benefits {
	ctxLogger := log.WithContext(ctx)

	sss, err := client.SSSContribution(ctx, basicRate)
	if err != nil {
		ctxLogger.WithError(err).Warnf("benefits computation failed for rate %.2f, defaulting contributions to zero", basicRate)
		return Benefits{}
	}

	philhealth, err := client.PhilhealthContribution(ctx, basicRate)
	if err != nil {
		ctxLogger.WithError(err).Warnf("benefits computation failed for rate %.2f, defaulting contributions to zero", basicRate)
		return Benefits{}
	}

	pagibig, err := client.PagibigContribution(ctx, basicRate)
	if err != nil {
		ctxLogger.WithError(err).Warnf("benefits computation failed for rate %.2f, defaulting contributions to zero", basicRate)
		return Benefits{}
	}

	return Benefits{SSS: sss, Philhealth: philhealth, Pagibig: pagibig}
}
