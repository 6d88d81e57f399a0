package payroll

import (
	"errors"
	"fmt"
)

// Category names as used in error reporting and logs.
const (
	CategorySalary        = "salary"
	CategoryEarnings      = "earnings"
	CategoryDeductions    = "deductions"
	CategoryTotalOvertime = "totalovertime"
	CategoryOvertimeHours = "overtimehours"
)

// ErrMissingIdentifier is fatal to the editing session: without an employee
// user id there is nothing to locate or persist against.
var ErrMissingIdentifier = errors.New("payroll: missing employee user identifier")

// CategoryFetchError marks a failed read of one category. It is absorbed at
// the locator boundary: the category degrades to defaults and the session
// continues.
type CategoryFetchError struct {
	Category string
	Err      error
}

func (e *CategoryFetchError) Error() string {
	return fmt.Sprintf("payroll: fetching %s failed: %v", e.Category, e.Err)
}

func (e *CategoryFetchError) Unwrap() error { return e.Err }

// CategoryWriteError aborts the save operation it occurred in. Identifiers
// captured by earlier successful writes are kept so a retry updates instead
// of duplicating.
type CategoryWriteError struct {
	Category string
	Err      error
}

func (e *CategoryWriteError) Error() string {
	return fmt.Sprintf("payroll: writing %s failed: %v", e.Category, e.Err)
}

func (e *CategoryWriteError) Unwrap() error { return e.Err }
