package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// IsActiveByLifetime reports whether a client of the given ages is still
// inside the allowed relationship lifetime. A limit of zero or less means
// unlimited. Once a cohort fails the gate at some age it fails at every
// greater age; there is no reactivation.
func IsActiveByLifetime(ageFromActivation, ageFromFirstPayment, lifetimeMonths int, mode domain.LifetimeMode) bool {
	if lifetimeMonths <= 0 {
		return true
	}
	if mode == domain.LifetimeFromActivation {
		return ageFromActivation < lifetimeMonths
	}
	return ageFromFirstPayment < lifetimeMonths
}

// SurvivalFactor returns the expected fraction of an original cohort still
// active after churnAge months of constant monthly churn: (1-rate)^age,
// geometric survival. Ages and rates at or below zero mean no attrition yet.
func SurvivalFactor(churnRate decimal.Decimal, churnAge int) decimal.Decimal {
	if churnRate.LessThanOrEqual(decimal.Zero) || churnAge <= 0 {
		return decimalOne
	}
	return decimalOne.Sub(churnRate).Pow(decimal.NewFromInt(int64(churnAge)))
}

// ChurnAge returns the age the survival clock runs on. It follows the same
// reference point as the lifetime gate.
func ChurnAge(ageFromActivation, ageFromFirstPayment int, mode domain.LifetimeMode) int {
	if mode == domain.LifetimeFromActivation {
		return ageFromActivation
	}
	return ageFromFirstPayment
}
