package leave

import (
	"errors"
	"time"
)

// CalculateDays returns inclusive day count between start and end.
func CalculateDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// Overlap clips a leave window to a pay period and returns the day
// count inside the period, zero when the ranges do not intersect.
func Overlap(leaveStart, leaveEnd, periodStart, periodEnd time.Time) float64 {
	start := leaveStart
	if periodStart.After(start) {
		start = periodStart
	}
	end := leaveEnd
	if periodEnd.Before(end) {
		end = periodEnd
	}
	days, err := CalculateDays(start, end)
	if err != nil {
		return 0
	}
	return days
}
