package hrapi

// Overtime hours entry type tags as stored by the backend.
const (
	OvertimeTypeRegular   = "regular"
	OvertimeTypeRestDay   = "rest_day"
	OvertimeTypeNightDiff = "night_diff"
)

type Salary struct {
	ID   int `json:"id"`
	User int `json:"user"`
}

type Earnings struct {
	ID               int    `json:"id,omitempty"`
	User             int    `json:"user"`
	BasicRate        Number `json:"basic_rate"`
	Basic            Number `json:"basic"`
	Allowance        Number `json:"allowance"`
	NTax             Number `json:"ntax"`
	VacationLeave    Number `json:"vacationleave"`
	SickLeave        Number `json:"sickleave"`
	BereavementLeave Number `json:"bereavementleave"`
}

type Deductions struct {
	ID         int    `json:"id,omitempty"`
	User       int    `json:"user"`
	SSS        Number `json:"sss"`
	Philhealth Number `json:"philhealth"`
	Pagibig    Number `json:"pagibig"`
	Late       Number `json:"late"`
	WTax       Number `json:"wtax"`
	NoWork     Number `json:"nowork"`
	Loan       Number `json:"loan"`
	Charges    Number `json:"charges"`
	Undertime  Number `json:"undertime"`
	MSFCLoan   Number `json:"msfcloan"`
}

type TotalOvertime struct {
	ID                  int    `json:"id,omitempty"`
	User                int    `json:"user"`
	TotalRegularOT      Number `json:"total_regularot"`
	TotalRegularHoliday Number `json:"total_regularholiday"`
	TotalSpecialHoliday Number `json:"total_specialholiday"`
	TotalRestDay        Number `json:"total_restday"`
	TotalNightDiff      Number `json:"total_nightdiff"`
	TotalBackwage       Number `json:"total_backwage"`
	TotalOvertime       Number `json:"total_overtime"`
	TotalLate           Number `json:"total_late"`
	TotalUndertime      Number `json:"total_undertime"`
	BiweekStart         string `json:"biweek_start,omitempty"`
}

type OvertimeHoursEntry struct {
	ID    int    `json:"id"`
	User  int    `json:"user"`
	Date  string `json:"date"`
	Type  string `json:"type"`
	Hours Number `json:"hours"`
}

type ContributionResponse struct {
	Contribution Number `json:"contribution"`
}
