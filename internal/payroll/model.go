package payroll

// Earnings is the reconciled earnings view for one employee. BasicRate is
// the monthly figure; Basic is the bi-weekly amount actually paid out.
type Earnings struct {
	BasicRate        float64 `json:"basicRate"`
	Basic            float64 `json:"basic"`
	Allowance        float64 `json:"allowance"`
	NTax             float64 `json:"ntax"`
	VacationLeave    float64 `json:"vacationLeave"`
	SickLeave        float64 `json:"sickLeave"`
	BereavementLeave float64 `json:"bereavementLeave"`
}

type Deduction struct {
	Amount float64 `json:"amount"`
}

type Deductions struct {
	SSS        Deduction `json:"sss"`
	Philhealth Deduction `json:"philhealth"`
	Pagibig    Deduction `json:"pagibig"`
	Late       Deduction `json:"late"`
	WTax       Deduction `json:"wtax"`
	NoWork     Deduction `json:"nowork"`
	Loan       Deduction `json:"loan"`
	Charges    Deduction `json:"charges"`
	Undertime  Deduction `json:"undertime"`
	MSFCLoan   Deduction `json:"msfcloan"`
}

type RateHours struct {
	Hours float64 `json:"hours"`
	Rate  float64 `json:"rate"`
}

type Overtime struct {
	RegularOT      RateHours `json:"regularOT"`
	RegularHoliday RateHours `json:"regularHoliday"`
	SpecialHoliday RateHours `json:"specialHoliday"`
	RestDay        RateHours `json:"restDay"`
	NightDiff      RateHours `json:"nightDiff"`
	Backwage       RateHours `json:"backwage"`
}

type Totals struct {
	GrossPay        float64 `json:"grossPay"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetSalary       float64 `json:"netSalary"`
}

// ReconciledPayroll is the merged view of every category for one employee.
// It is built fresh each time an edit session opens and discarded when it
// closes; nothing here is cached across sessions.
type ReconciledPayroll struct {
	HasPayrollData bool       `json:"hasPayrollData"`
	Earnings       Earnings   `json:"earnings"`
	Deductions     Deductions `json:"deductions"`
	Overtime       Overtime   `json:"overtimeTotals"`
	Totals         Totals     `json:"totals"`
}

// IdentifierCache holds the backend record ids discovered (or created)
// during one editing session. Zero means the category has no record yet and
// the next save will create one.
type IdentifierCache struct {
	EarningsID      int `json:"earningsId"`
	DeductionsID    int `json:"deductionsId"`
	TotalOvertimeID int `json:"totalOvertimeId"`
}

// Benefits are the statutory contribution amounts for a given basic rate.
type Benefits struct {
	SSS        float64 `json:"sss"`
	Philhealth float64 `json:"philhealth"`
	Pagibig    float64 `json:"pagibig"`
}

// ApplyTo writes the contribution amounts into the deduction fields they
// fund. Benefits depend on the rate and totals depend on benefits, so this
// must run before ComputeTotals whenever the basic rate changed.
func (b Benefits) ApplyTo(p *ReconciledPayroll) {
	p.Deductions.SSS.Amount = b.SSS
	p.Deductions.Philhealth.Amount = b.Philhealth
	p.Deductions.Pagibig.Amount = b.Pagibig
}
