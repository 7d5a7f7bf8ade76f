package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// PerClientPayment computes one client's gross payment for the month at the
// given age under the contract plan. Free months price at zero regardless of
// contract type; after that the intro/recurring split (or the flat amount)
// is keyed off the age net of free months.
func PerClientPayment(plan domain.ContractPlan, ageFromActivation int) decimal.Decimal {
	if ageFromActivation < plan.FreeMonths {
		return decimal.Zero
	}
	effAge := ageFromActivation - plan.FreeMonths
	if plan.Type == domain.ContractIntroRecurring {
		if effAge < plan.IntroMonths {
			return plan.IntroAmount
		}
		return plan.RecurringAmount
	}
	return plan.FlatAmount
}
