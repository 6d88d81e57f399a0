package payroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	p := &ReconciledPayroll{
		Earnings: Earnings{
			Basic:     9500,
			Allowance: 750,
		},
		Overtime: Overtime{
			RegularOT:      RateHours{Rate: 114.18},
			RegularHoliday: RateHours{Rate: 1461.54},
			SpecialHoliday: RateHours{Rate: 118.75},
			RestDay:        RateHours{Rate: 118.75},
			NightDiff:      RateHours{Rate: 9.11},
		},
		Deductions: Deductions{
			SSS:        Deduction{Amount: 495},
			Philhealth: Deduction{Amount: 475},
			Pagibig:    Deduction{Amount: 200},
			WTax:       Deduction{Amount: 1000},
		},
	}

	got := ComputeTotals(p)
	assert.Equal(t, 12072.33, got.GrossPay)
	assert.Equal(t, 2170.0, got.TotalDeductions)
	assert.Equal(t, 9902.33, got.NetSalary)
}

func TestComputeTotals_BackwageInGrossPay(t *testing.T) {
	p := &ReconciledPayroll{
		Earnings: Earnings{Basic: 5000},
		Overtime: Overtime{
			RegularOT: RateHours{Rate: 100},
			Backwage:  RateHours{Rate: 250},
		},
	}

	got := ComputeTotals(p)
	assert.Equal(t, 5350.0, got.GrossPay)

	// the persisted overtime figure leaves backwage out
	assert.Equal(t, 100.0, TotalOvertimeValue(p.Overtime))
}

func TestComputeTotals_CoercesInvalidValues(t *testing.T) {
	p := &ReconciledPayroll{
		Earnings: Earnings{
			Basic:     9500,
			Allowance: math.NaN(),
			NTax:      math.Inf(1),
		},
		Deductions: Deductions{
			Loan: Deduction{Amount: math.NaN()},
			WTax: Deduction{Amount: 500},
		},
	}

	got := ComputeTotals(p)
	assert.Equal(t, 9500.0, got.GrossPay)
	assert.Equal(t, 500.0, got.TotalDeductions)
	assert.Equal(t, 9000.0, got.NetSalary)
	assert.False(t, math.IsNaN(got.NetSalary))
}

func TestComputeTotals_EmptyPayroll(t *testing.T) {
	got := ComputeTotals(&ReconciledPayroll{})
	assert.Equal(t, Totals{}, got)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.14, Round2(3.14159))
	assert.Equal(t, 2.72, Round2(2.71828))
	// halves round away from zero
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
}

func TestDeriveOvertimeRates(t *testing.T) {
	ot := Overtime{
		RegularOT:      RateHours{Hours: 2},
		RegularHoliday: RateHours{Hours: 4},
		SpecialHoliday: RateHours{Hours: 2},
		RestDay:        RateHours{Hours: 3},
		NightDiff:      RateHours{Hours: 1},
		Backwage:       RateHours{Rate: 500},
	}

	got := DeriveOvertimeRates(9500, ot)

	// hourly base is 9500 / 26 / 8
	assert.Equal(t, 114.18, got.RegularOT.Rate)
	assert.Equal(t, 475.0, got.RegularHoliday.Rate)
	assert.Equal(t, 118.75, got.SpecialHoliday.Rate)
	assert.Equal(t, 231.56, got.RestDay.Rate)
	assert.Equal(t, 100.48, got.NightDiff.Rate)
	assert.Equal(t, 500.0, got.Backwage.Rate)

	// hours carry through untouched
	assert.Equal(t, 2.0, got.RegularOT.Hours)
}

func TestDeriveOvertimeRates_ZeroHours(t *testing.T) {
	got := DeriveOvertimeRates(9500, Overtime{})
	assert.Equal(t, Overtime{}, got)
}
