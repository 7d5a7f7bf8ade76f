package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// Project runs the cohort simulation and returns one row per month from 1
// to the horizon, in order. Deterministic given the parameter set. The only
// defensive normalization inside the engine is the churn-rate clamp to
// [0, 0.99]; everything else is a precondition on the caller.
func (pe *ProjectionEngine) Project(params *domain.ParameterSet) ([]domain.MonthlyRow, error) {
	if err := checkPreconditions(params); err != nil {
		return nil, err
	}

	churnRate := params.ChurnRate()
	commissionRate := params.CommissionRate()
	includeBonus := params.PayoutPolicy.IncludesBonus()
	includeRecurring := params.PayoutPolicy.IncludesRecurring()

	pe.Logger.Debugf("projecting: %s", params.Describe())

	rows := make([]domain.MonthlyRow, 0, params.Months)
	// Cohorts feed recurring revenue only; the bonus is gated on the
	// agent's own elapsed months, never on cohort age.
	cohorts := make([]domain.Cohort, 0, params.Months)
	signedCum := 0

	for m := 1; m <= params.Months; m++ {
		newClients := params.NewClientsPerMonth
		if params.Override.AppliesTo(m) {
			newClients = params.Override.NewClients
		}

		netSize := newClients
		if params.CancellationMode == domain.CancellationFixed {
			netSize = newClients - params.FixedCancellations
			if netSize < 0 {
				netSize = 0
			}
		}
		cohorts = append(cohorts, domain.Cohort{BirthMonth: m, Size: netSize})
		signedCum += netSize

		grossPayments := decimal.Zero
		payingClients := decimal.Zero

		if includeRecurring {
			for _, c := range cohorts {
				ageFromActivation := c.Age(m)
				if ageFromActivation < 0 {
					continue
				}
				ageFromFirstPayment := ageFromActivation - params.Contract.FreeMonths
				if ageFromFirstPayment < 0 {
					ageFromFirstPayment = 0
				}

				if !IsActiveByLifetime(ageFromActivation, ageFromFirstPayment, params.LifetimeMonths, params.LifetimeMode) {
					continue
				}

				survival := decimalOne
				if params.CancellationMode == domain.CancellationChurn {
					churnAge := ChurnAge(ageFromActivation, ageFromFirstPayment, params.LifetimeMode)
					survival = SurvivalFactor(churnRate, churnAge)
				}

				perClient := PerClientPayment(params.Contract, ageFromActivation)
				if perClient.GreaterThan(decimal.Zero) {
					active := decimal.NewFromInt(int64(c.Size)).Mul(survival)
					payingClients = payingClients.Add(active)
					grossPayments = grossPayments.Add(perClient.Mul(active))
				}
			}
		}

		commission := decimal.Zero
		if includeRecurring {
			commission = grossPayments.Mul(commissionRate)
		}

		// Bonus eligibility runs on the agent's first payout-duration
		// months, based on this month's new-client count (override
		// included), not on any cumulative or cohort figure.
		bonusRaw := decimal.Zero
		if includeBonus && params.Bonus.Enabled && params.Bonus.DurationMonths > 0 && m <= params.Bonus.DurationMonths {
			bonusRaw = params.Bonus.AmountPerClient.Mul(decimal.NewFromInt(int64(newClients)))
		}
		bonusToAgent := bonusRaw
		if params.PayoutType == domain.PayoutCommissionable {
			bonusToAgent = bonusRaw.Mul(commissionRate)
		}

		var total decimal.Decimal
		switch params.PayoutPolicy {
		case domain.PayoutBonusOnly:
			total = bonusToAgent
		case domain.PayoutRecurringOnly:
			total = commission
		default:
			total = bonusToAgent.Add(commission)
		}

		if pe.Debug {
			pe.Logger.Debugf("month %d: new=%d signed=%d paying=%s gross=%s total=%s",
				m, newClients, signedCum, payingClients.StringFixed(4),
				grossPayments.StringFixed(2), total.StringFixed(2))
		}

		rows = append(rows, domain.MonthlyRow{
			Month:                 m,
			NewClients:            newClients,
			Cancellations:         params.FixedCancellations,
			Mode:                  params.CancellationMode,
			NetActivations:        netSize,
			SignedCum:             signedCum,
			PayingClients:         payingClients,
			GrossClientPayments:   grossPayments,
			NewSaleIncome:         bonusToAgent,
			CommissionFromClients: commission,
			TotalEarnings:         total,
		})
	}

	return rows, nil
}
