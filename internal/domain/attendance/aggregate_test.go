package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, time.September, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateFullAttendance(t *testing.T) {
	start, end := MonthRange(9, 2025)

	var records []Record
	for d := 1; d <= 30; d++ {
		records = append(records, Record{Date: day(d), Status: StatusPresent})
	}

	summary := Aggregate(records, start, end)
	assert.Equal(t, 30, summary.PresentDays)
	assert.Equal(t, 30, summary.WorkingDays)
	assert.Equal(t, 1.0, summary.WorkedFraction)
	assert.Equal(t, 0, summary.AbsentDays)
}

func TestAggregateMissingDaysAreAbsent(t *testing.T) {
	records := []Record{
		{Date: day(1), Status: StatusPresent},
		{Date: day(2), Status: StatusPresent},
	}

	summary := Aggregate(records, day(1), day(5))
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 3, summary.AbsentDays)
	assert.Equal(t, 5, summary.WorkingDays)
	assert.InDelta(t, 0.4, summary.WorkedFraction, 1e-9)
}

func TestAggregateHalfDaysCountHalf(t *testing.T) {
	records := []Record{
		{Date: day(1), Status: StatusPresent},
		{Date: day(2), Status: StatusHalfDay},
	}

	summary := Aggregate(records, day(1), day(2))
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.InDelta(t, 0.75, summary.WorkedFraction, 1e-9)
}

func TestAggregateHolidaysExcludedFromWorkingDays(t *testing.T) {
	records := []Record{
		{Date: day(1), Status: StatusPresent},
		{Date: day(2), Status: StatusHoliday},
		{Date: day(3), Status: StatusPresent},
	}

	summary := Aggregate(records, day(1), day(3))
	assert.Equal(t, 1, summary.HolidayDays)
	assert.Equal(t, 2, summary.WorkingDays)
	assert.Equal(t, 1.0, summary.WorkedFraction)
}

func TestAggregateLeaveClassification(t *testing.T) {
	records := []Record{
		{Date: day(1), Status: StatusOnLeave, LeavePaid: true},
		{Date: day(2), Status: StatusOnLeave, LeavePaid: false},
		{Date: day(3), Status: StatusPresent},
	}

	summary := Aggregate(records, day(1), day(3))
	assert.Equal(t, 1, summary.PaidLeaveDays)
	assert.Equal(t, 1, summary.UnpaidLeaveDays)
	// paid leave counts as worked, unpaid does not
	assert.InDelta(t, 2.0/3.0, summary.WorkedFraction, 1e-9)
}

func TestAggregateNoRecords(t *testing.T) {
	summary := Aggregate(nil, day(1), day(30))
	assert.Equal(t, 30, summary.AbsentDays)
	assert.Equal(t, 0.0, summary.WorkedFraction)
}

func TestAggregateEmptyRange(t *testing.T) {
	summary := Aggregate(nil, day(5), day(1))
	assert.Equal(t, 0, summary.WorkingDays)
}
