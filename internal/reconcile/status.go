package reconcile

import (
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

// Status is the display state of one (employee, date) cell. How a status
// looks is up to the caller.
type Status string

const (
	StatusScheduled    Status = "scheduled"
	StatusWorkedPaid   Status = "worked-paid"
	StatusWorkedUnpaid Status = "worked-unpaid"
	StatusNotWorked    Status = "not-worked"
	StatusNotScheduled Status = "not-scheduled"
)

// Statuses lists every status, in legend order.
func Statuses() []Status {
	return []Status{StatusWorkedPaid, StatusWorkedUnpaid, StatusScheduled, StatusNotWorked, StatusNotScheduled}
}

func (s Status) String() string {
	return string(s)
}

// DateError reports a date that could not be classified.
type DateError struct {
	Date string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("classify %q: %v", e.Date, isodate.ErrInvalid)
}

func (e *DateError) Unwrap() error {
	return isodate.ErrInvalid
}

// Classify maps a date and its optional record to exactly one Status.
//
// Today is taken in now's location and is never in the future. A future
// record is scheduled whatever its flags say. A malformed date yields
// StatusNotScheduled together with a *DateError; the status is always
// usable even when the error is not nil.
func Classify(date string, wd *workday.WorkDay, now time.Time) (Status, error) {
	if !isodate.Valid(date) {
		return StatusNotScheduled, &DateError{Date: date}
	}

	if wd == nil {
		return StatusNotScheduled, nil
	}

	switch {
	case date > isodate.Today(now):
		return StatusScheduled, nil
	case wd.Worked && wd.Paid:
		return StatusWorkedPaid, nil
	case wd.Worked:
		return StatusWorkedUnpaid, nil
	default:
		return StatusNotWorked, nil
	}
}

// Visible reports whether a calendar should show wd at all. Past days that
// were never worked are hidden; the record itself is kept.
func Visible(wd workday.WorkDay, now time.Time) bool {
	return wd.Worked || wd.Date >= isodate.Today(now)
}
