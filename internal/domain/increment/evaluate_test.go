package increment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

func TestExperienceYears(t *testing.T) {
	assert.Equal(t, 4, ExperienceYears("4.5 years"))
	assert.Equal(t, 3, ExperienceYears("3 years"))
	assert.Equal(t, 2, ExperienceYears("2"))
	assert.Equal(t, 0, ExperienceYears("0.5 years"))
	assert.Equal(t, 0, ExperienceYears("fresher"))
	assert.Equal(t, 0, ExperienceYears(""))
}

func TestTenurePercentTable(t *testing.T) {
	assert.Equal(t, float64(0), TenurePercent(0))
	assert.Equal(t, float64(5), TenurePercent(1))
	assert.Equal(t, float64(8), TenurePercent(2))
	assert.Equal(t, float64(10), TenurePercent(3))
	assert.Equal(t, float64(15), TenurePercent(4))
	assert.Equal(t, float64(15), TenurePercent(5))
	assert.Equal(t, float64(0), TenurePercent(6))
}

func TestEvaluateExperiencedEmployee(t *testing.T) {
	candidates := []Candidate{{
		EmployeeID:    "e1",
		Name:          "Priya Nair",
		DateOfJoining: today.AddDate(0, 0, -200),
		Experience:    "4.5 years",
		Salary:        50000,
	}}

	eligible := Evaluate(candidates, today)
	assert.Len(t, eligible, 1)
	assert.Equal(t, float64(15), eligible[0].Percent)
	assert.Equal(t, float64(7500), eligible[0].Amount)
	assert.Equal(t, float64(57500), eligible[0].NewSalary)
}

func TestEvaluateExcludesShortTenureAndZeroPercent(t *testing.T) {
	candidates := []Candidate{
		{EmployeeID: "short", DateOfJoining: today.AddDate(0, 0, -90), Experience: "3 years", Salary: 40000},
		{EmployeeID: "junior", DateOfJoining: today.AddDate(0, 0, -300), Experience: "0.5 years", Salary: 30000},
		{EmployeeID: "veteran", DateOfJoining: today.AddDate(-8, 0, 0), Experience: "8 years", Salary: 90000},
	}

	eligible := Evaluate(candidates, today)
	assert.Empty(t, eligible)
}

func TestEvaluateRoundsAmountToWhole(t *testing.T) {
	candidates := []Candidate{{
		EmployeeID:    "e1",
		DateOfJoining: today.AddDate(-2, 0, 0),
		Experience:    "1 year",
		Salary:        33333,
	}}

	eligible := Evaluate(candidates, today)
	assert.Len(t, eligible, 1)
	// 5% of 33333 = 1666.65, rounded to whole currency.
	assert.Equal(t, float64(1667), eligible[0].Amount)
	assert.Equal(t, float64(35000), eligible[0].NewSalary)
}

func TestMergeTaskRatingsAddsPerformancePercent(t *testing.T) {
	eligible := []EligibleEmployee{{
		EmployeeID: "e1",
		Salary:     50000,
		Percent:    10,
		Amount:     5000,
		NewSalary:  55000,
	}}
	ratings := map[string][]TaskRating{
		"e1": {
			{CompletedAt: today.AddDate(0, 0, -10), Rating: 5},
			{CompletedAt: today.AddDate(0, 0, -40), Rating: 4},
			{CompletedAt: today.AddDate(0, -13, 0), Rating: 1}, // outside the window
		},
	}

	merged := MergeTaskRatings(eligible, ratings, today)
	assert.Equal(t, float64(4.5), merged[0].AverageRating)
	assert.Equal(t, float64(15), merged[0].Percent)
	assert.Equal(t, float64(7500), merged[0].Amount)
	assert.True(t, merged[0].TaskMerged)
}

func TestMergeTaskRatingsIsOneShot(t *testing.T) {
	eligible := []EligibleEmployee{{
		EmployeeID: "e1",
		Salary:     50000,
		Percent:    10,
		Amount:     5000,
		NewSalary:  55000,
	}}
	ratings := map[string][]TaskRating{
		"e1": {{CompletedAt: today.AddDate(0, 0, -5), Rating: 5}},
	}

	once := MergeTaskRatings(eligible, ratings, today)
	twice := MergeTaskRatings(once, ratings, today)
	assert.Equal(t, float64(15), twice[0].Percent)
	assert.Equal(t, float64(7500), twice[0].Amount)
}

func TestMergeTaskRatingsNoRatings(t *testing.T) {
	eligible := []EligibleEmployee{{
		EmployeeID: "e1",
		Salary:     50000,
		Percent:    10,
		Amount:     5000,
		NewSalary:  55000,
	}}

	merged := MergeTaskRatings(eligible, nil, today)
	assert.Equal(t, float64(10), merged[0].Percent)
	assert.True(t, merged[0].TaskMerged)
}
