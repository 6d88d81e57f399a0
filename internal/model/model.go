package model

// TokenResponse is the token pair issued by the HR backend auth endpoint.
// The access token is persisted to a file and read back by the API client
// on every outgoing call.
type TokenResponse struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// RosterEntry is one row of the uploaded payroll roster: the employee's
// backend user id plus the monthly rate from the employment record.
type RosterEntry struct {
	UserID       int
	RatePerMonth float64
}
