package money

import "math"

// MonthlyPayment computes the level monthly payment in micros for a loan of
// principalMicros at rateBps annual interest over termMonths.
//
// A zero rate degenerates the annuity formula (division by zero), so it is
// handled as a linear schedule: ceil(principal/term). Otherwise the standard
// annuity formula runs at float precision for the single compounding step and
// the result is ceiled back to integer micros, so the schedule never
// undercollects.
func MonthlyPayment(principalMicros int64, rateBps int32, termMonths int32) int64 {
	if termMonths < 1 || principalMicros <= 0 {
		return 0
	}
	if rateBps == 0 {
		return CeilDiv(principalMicros, int64(termMonths))
	}
	monthlyRate := float64(rateBps) / BpsPerUnit / MonthsPerYear
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := float64(principalMicros) * monthlyRate * factor / (factor - 1)
	return int64(math.Ceil(payment))
}

// DebtToIncomeRatio returns (monthlyDebt + monthlyPayment) / monthlyIncome as
// a plain ratio. The second return is false when annual income is absent or
// zero, meaning no ratio can be computed; a nil monthly debt counts as zero.
func DebtToIncomeRatio(annualIncomeMicros, monthlyDebtMicros *int64, monthlyPaymentMicros int64) (float64, bool) {
	if annualIncomeMicros == nil || *annualIncomeMicros == 0 {
		return 0, false
	}
	var debt int64
	if monthlyDebtMicros != nil {
		debt = *monthlyDebtMicros
	}
	monthlyIncome := float64(*annualIncomeMicros) / MonthsPerYear
	return (float64(debt) + float64(monthlyPaymentMicros)) / monthlyIncome, true
}
