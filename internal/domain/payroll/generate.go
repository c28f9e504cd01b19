package payroll

import (
	"hrpay/internal/domain/attendance"
	"hrpay/internal/domain/component"
	"hrpay/internal/domain/salary"
	"hrpay/internal/platform/money"
)

// Compute turns resolved components plus an attendance summary into
// payslip lines and totals.
//
// Pro-rata components scale by the worked fraction; others pass through
// at their full resolved amount. Proration already prices loss of pay,
// so no separate loss-of-pay deduction line is added here — the
// breakdown carries the day counts for callers that want to audit or
// deduct explicitly. Negative net is reported as-is, never clamped.
func Compute(resolved []salary.Resolved, summary attendance.Summary) ([]ComponentLine, float64, float64, float64) {
	lines := make([]ComponentLine, 0, len(resolved))
	var gross, deductions float64

	for _, item := range resolved {
		amount := item.Amount
		if item.ProRata {
			amount = money.Scale(amount, summary.WorkedFraction)
		}
		lines = append(lines, ComponentLine{
			Name:     item.Name,
			Category: item.Category,
			Amount:   amount,
		})
		switch item.Category {
		case component.CategoryEarning:
			gross += amount
		case component.CategoryDeduction:
			deductions += amount
		}
	}

	gross = money.Round2(gross)
	deductions = money.Round2(deductions)
	net := money.Round2(gross - deductions)
	return lines, gross, deductions, net
}

func breakdownFrom(summary attendance.Summary) Breakdown {
	return Breakdown{
		PresentDays:     summary.PresentDays,
		AbsentDays:      summary.AbsentDays,
		HalfDays:        summary.HalfDays,
		UnpaidLeaveDays: summary.UnpaidLeaveDays,
	}
}
