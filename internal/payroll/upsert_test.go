package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
)

func fixedClock() time.Time {
	return time.Date(2022, time.June, 13, 9, 0, 0, 0, time.UTC)
}

func samplePayroll() *ReconciledPayroll {
	return &ReconciledPayroll{
		HasPayrollData: true,
		Earnings: Earnings{
			BasicRate: 9500,
			Basic:     4750,
			Allowance: 750,
		},
		Deductions: Deductions{
			SSS:        Deduction{Amount: 495},
			Philhealth: Deduction{Amount: 475},
			Pagibig:    Deduction{Amount: 200},
			Late:       Deduction{Amount: 120.5},
			Undertime:  Deduction{Amount: 45.25},
		},
		Overtime: Overtime{
			RegularOT: RateHours{Hours: 2, Rate: 114.18},
			RestDay:   RateHours{Hours: 3, Rate: 231.56},
			Backwage:  RateHours{Rate: 500},
		},
	}
}

func TestPersist_MissingIdentifier(t *testing.T) {
	mockClient := new(MockHRClient)
	coordinator := NewCoordinator(mockClient)

	cache, err := coordinator.Persist(context.Background(), 0, samplePayroll(), IdentifierCache{})
	assert.Equal(t, ErrMissingIdentifier, err)
	assert.Equal(t, IdentifierCache{}, cache)
	mockClient.AssertNotCalled(t, "CreateEarnings")
}

func TestPersist_CreatesAndCapturesIdentifiers(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockHRClient)
	mockClient.On("CreateEarnings", ctx, mock.Anything).Return(&hrapi.Earnings{ID: 11}, nil)
	mockClient.On("CreateDeductions", ctx, mock.Anything).Return(&hrapi.Deductions{ID: 12}, nil)
	mockClient.On("CreateTotalOvertime", ctx, mock.Anything).Return(&hrapi.TotalOvertime{ID: 13}, nil)

	coordinator := NewCoordinator(mockClient)
	coordinator.now = fixedClock

	cache, err := coordinator.Persist(ctx, 101, samplePayroll(), IdentifierCache{})
	require.NoError(t, err)
	assert.Equal(t, IdentifierCache{EarningsID: 11, DeductionsID: 12, TotalOvertimeID: 13}, cache)

	overtime := mockClient.Calls[2].Arguments.Get(1).(hrapi.TotalOvertime)
	assert.Equal(t, 101, overtime.User)
	// persisted overtime total excludes backwage, late and undertime mirror
	// the deduction amounts
	assert.Equal(t, hrapi.Number(345.74), overtime.TotalOvertime)
	assert.Equal(t, hrapi.Number(500), overtime.TotalBackwage)
	assert.Equal(t, hrapi.Number(120.5), overtime.TotalLate)
	assert.Equal(t, hrapi.Number(45.25), overtime.TotalUndertime)
	assert.Equal(t, "2022-06-13", overtime.BiweekStart)
}

func TestPersist_UpdatesWithCachedIdentifiers(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockHRClient)
	mockClient.On("UpdateEarnings", ctx, 11, mock.Anything).Return(nil)
	mockClient.On("UpdateDeductions", ctx, 12, mock.Anything).Return(nil)
	mockClient.On("UpdateTotalOvertime", ctx, 13, mock.Anything).Return(nil)

	coordinator := NewCoordinator(mockClient)
	coordinator.now = fixedClock

	existing := IdentifierCache{EarningsID: 11, DeductionsID: 12, TotalOvertimeID: 13}
	cache, err := coordinator.Persist(ctx, 101, samplePayroll(), existing)
	require.NoError(t, err)
	assert.Equal(t, existing, cache)
	mockClient.AssertNotCalled(t, "CreateEarnings")
	mockClient.AssertNotCalled(t, "CreateDeductions")
	mockClient.AssertNotCalled(t, "CreateTotalOvertime")
}

func TestPersist_AbortsOnFirstFailure(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockHRClient)
	mockClient.On("CreateEarnings", ctx, mock.Anything).Return(&hrapi.Earnings{ID: 11}, nil)
	mockClient.On("CreateDeductions", ctx, mock.Anything).Return(nil,
		errors.New("payroll service (CreateDeductions) returned status 503 Service Unavailable: "))

	coordinator := NewCoordinator(mockClient)
	coordinator.now = fixedClock

	cache, err := coordinator.Persist(ctx, 101, samplePayroll(), IdentifierCache{})

	var writeErr *CategoryWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, CategoryDeductions, writeErr.Category)

	// the earnings id survives the abort so a retry updates instead of
	// duplicating
	assert.Equal(t, 11, cache.EarningsID)
	assert.Equal(t, 0, cache.DeductionsID)
	mockClient.AssertNotCalled(t, "CreateTotalOvertime")
}

func TestPersist_FailedUpdateKeepsCache(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockHRClient)
	mockClient.On("UpdateEarnings", ctx, 11, mock.Anything).Return(errors.New("connection reset"))

	coordinator := NewCoordinator(mockClient)
	coordinator.now = fixedClock

	existing := IdentifierCache{EarningsID: 11}
	cache, err := coordinator.Persist(ctx, 101, samplePayroll(), existing)

	var writeErr *CategoryWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, CategoryEarnings, writeErr.Category)
	assert.Equal(t, existing, cache)
	mockClient.AssertNotCalled(t, "CreateDeductions")
}
