package increment

import (
	"strconv"
	"strings"
	"time"

	"hrpay/internal/platform/money"
)

// MinTenureDays is the minimum days since joining before any increment.
const MinTenureDays = 180

// ratingWindowDays is the trailing window for the performance average.
const ratingWindowDays = 180

// ExperienceYears parses the free-form experience string ("4.5 years",
// "3 yrs", "2") down to full years. Unparseable input is zero years.
func ExperienceYears(experience string) int {
	fields := strings.Fields(strings.TrimSpace(experience))
	if len(fields) == 0 {
		return 0
	}
	years, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || years < 0 {
		return 0
	}
	return int(years)
}

// TenurePercent maps full years of experience to the increment percent.
// Zero and more-than-five years get nothing; that is the policy, not an
// oversight.
func TenurePercent(years int) float64 {
	switch years {
	case 1:
		return 5
	case 2:
		return 8
	case 3:
		return 10
	case 4, 5:
		return 15
	default:
		return 0
	}
}

// TaskPercent maps a trailing average task rating to the additive
// performance percent.
func TaskPercent(average float64) float64 {
	switch {
	case average >= 4.5:
		return 5
	case average >= 4.0:
		return 3
	case average >= 3.0:
		return 1
	default:
		return 0
	}
}

// AverageRating averages the ratings completed within the trailing
// window ending at today. No ratings in the window yields zero.
func AverageRating(ratings []TaskRating, today time.Time) float64 {
	cutoff := today.AddDate(0, 0, -ratingWindowDays)
	var sum float64
	var count int
	for _, rating := range ratings {
		if rating.CompletedAt.Before(cutoff) || rating.CompletedAt.After(today) {
			continue
		}
		sum += rating.Rating
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Evaluate returns the tenure-based increment recommendation for each
// eligible candidate. Candidates under the minimum tenure or whose
// percent comes out zero are excluded.
func Evaluate(candidates []Candidate, today time.Time) []EligibleEmployee {
	var eligible []EligibleEmployee
	for _, candidate := range candidates {
		if candidate.DateOfJoining.IsZero() {
			continue
		}
		if daysBetween(candidate.DateOfJoining, today) < MinTenureDays {
			continue
		}
		years := ExperienceYears(candidate.Experience)
		percent := TenurePercent(years)
		if percent == 0 {
			continue
		}
		amount := money.RoundWhole(money.PercentOf(candidate.Salary, percent))
		eligible = append(eligible, EligibleEmployee{
			EmployeeID: candidate.EmployeeID,
			Name:       candidate.Name,
			Years:      years,
			Salary:     candidate.Salary,
			Percent:    percent,
			Amount:     amount,
			NewSalary:  candidate.Salary + amount,
		})
	}
	return eligible
}

// MergeTaskRatings folds the performance percent into each entry once.
// Entries already merged are left untouched, so a second call is a
// no-op.
func MergeTaskRatings(eligible []EligibleEmployee, ratings map[string][]TaskRating, today time.Time) []EligibleEmployee {
	for i := range eligible {
		entry := &eligible[i]
		if entry.TaskMerged {
			continue
		}
		entry.TaskMerged = true
		entry.AverageRating = AverageRating(ratings[entry.EmployeeID], today)
		extra := TaskPercent(entry.AverageRating)
		if extra == 0 {
			continue
		}
		entry.Percent += extra
		entry.Amount = money.RoundWhole(money.PercentOf(entry.Salary, entry.Percent))
		entry.NewSalary = entry.Salary + entry.Amount
	}
	return eligible
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
