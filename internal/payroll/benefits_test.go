package payroll

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBenefits(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockHRClient)
	mockClient.On("SSSContribution", ctx, 9500.0).Return(495.0, nil)
	mockClient.On("PhilhealthContribution", ctx, 9500.0).Return(475.0, nil)
	mockClient.On("PagibigContribution", ctx, 9500.0).Return(200.0, nil)

	got := ComputeBenefits(ctx, mockClient, 9500)
	assert.Equal(t, Benefits{SSS: 495, Philhealth: 475, Pagibig: 200}, got)
}

func TestComputeBenefits_FailureDefaultsToZero(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockHRClient)
	mockClient.On("SSSContribution", ctx, 9500.0).Return(0.0,
		errors.New("failed, retry limit expired: failed to call SSSContribution with cause 429 rate limit exceeded"))

	got := ComputeBenefits(ctx, mockClient, 9500)
	assert.Equal(t, Benefits{}, got)
	mockClient.AssertNotCalled(t, "PhilhealthContribution")
}

func TestBenefitsApplyTo(t *testing.T) {
	p := &ReconciledPayroll{
		Deductions: Deductions{
			SSS:  Deduction{Amount: 100},
			WTax: Deduction{Amount: 1000},
		},
	}

	Benefits{SSS: 495, Philhealth: 475, Pagibig: 200}.ApplyTo(p)

	assert.Equal(t, 495.0, p.Deductions.SSS.Amount)
	assert.Equal(t, 475.0, p.Deductions.Philhealth.Amount)
	assert.Equal(t, 200.0, p.Deductions.Pagibig.Amount)
	// unrelated deductions are untouched
	assert.Equal(t, 1000.0, p.Deductions.WTax.Amount)
}
