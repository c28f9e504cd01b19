package attendance

import "time"

// Aggregate walks every calendar day in the closed range [start, end]
// and produces per-status counts plus the worked fraction.
//
// Working days are all days not marked holiday; HR marks holidays
// explicitly, weekends are not excluded automatically. A day with no
// record counts as absent: silence is never paid. Half days contribute
// 0.5 worked days and paid leave counts as worked in full, so paid
// leave never reduces pro-rata pay.
func Aggregate(records []Record, start, end time.Time) Summary {
	var summary Summary
	if end.Before(start) {
		return summary
	}

	byDay := make(map[string]Record, len(records))
	for _, record := range records {
		byDay[dayKey(record.Date)] = record
	}

	last := startOfDay(end)
	for day := startOfDay(start); !day.After(last); day = day.AddDate(0, 0, 1) {
		record, ok := byDay[dayKey(day)]
		if !ok {
			record = Record{Date: day, Status: StatusAbsent}
		}

		switch record.Status {
		case StatusPresent:
			summary.PresentDays++
			summary.WorkedDays++
		case StatusHalfDay:
			summary.HalfDays++
			summary.WorkedDays += 0.5
		case StatusHoliday:
			summary.HolidayDays++
		case StatusOnLeave:
			if record.LeavePaid {
				summary.PaidLeaveDays++
				summary.WorkedDays++
			} else {
				summary.UnpaidLeaveDays++
			}
		default:
			summary.AbsentDays++
		}
	}

	totalDays := int(last.Sub(startOfDay(start)).Hours()/24) + 1
	summary.WorkingDays = totalDays - summary.HolidayDays
	if summary.WorkingDays > 0 {
		summary.WorkedFraction = summary.WorkedDays / float64(summary.WorkingDays)
	}
	return summary
}

// MonthRange returns the first and last day of a calendar month.
func MonthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
