package attendance

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusOnLeave = "on_leave"
	StatusHoliday = "holiday"
	StatusHalfDay = "half_day"
)

// Record is one employee's attendance for one calendar day. LeavePaid
// carries the paid/unpaid category of the originating leave request and
// is only meaningful when Status is on_leave.
type Record struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	Status    string     `json:"status"`
	CheckIn   *time.Time `json:"checkIn,omitempty"`
	CheckOut  *time.Time `json:"checkOut,omitempty"`
	LeavePaid bool       `json:"leavePaid,omitempty"`
}

// Summary aggregates a date range into per-status counts and the
// pro-ration factor used by the payslip generator.
type Summary struct {
	PresentDays     int     `json:"presentDays"`
	AbsentDays      int     `json:"absentDays"`
	HalfDays        int     `json:"halfDays"`
	PaidLeaveDays   int     `json:"paidLeaveDays"`
	UnpaidLeaveDays int     `json:"unpaidLeaveDays"`
	HolidayDays     int     `json:"holidayDays"`
	WorkingDays     int     `json:"workingDays"`
	WorkedDays      float64 `json:"workedDays"`
	WorkedFraction  float64 `json:"workedFraction"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusOnLeave, StatusHoliday, StatusHalfDay:
		return true
	}
	return false
}
