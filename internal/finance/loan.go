// Package finance provides the closed-form calculations behind the credit
// application form: installment amounts, Colombian-peso formatting, and
// cédula validation. Everything here is pure and stateless.
package finance

import "math"

const (
	percentageMultiplier = 100.0
	monthsPerYear        = 12.0
)

// MonthlyPayment calculates the fixed installment for a loan using the
// standard annuity formula. The rate is the annual interest rate as a
// percentage (14.4 means 14.4%). A zero rate degenerates to principal/term;
// the caller must guard termMonths == 0. The result is rounded to the
// nearest whole currency unit (half away from zero).
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if annualRatePercent == 0 {
		return math.Round(principal / float64(termMonths))
	}

	monthlyRate := annualRatePercent / percentageMultiplier / monthsPerYear
	power := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal * (monthlyRate * power) / (power - 1)

	return math.Round(payment)
}
