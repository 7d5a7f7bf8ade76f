package domain

import (
	"github.com/shopspring/decimal"
)

// Cohort is the group of clients activated in the same month, tracked as a
// single aggregate. Size is fixed at creation; attrition is applied at read
// time by the survival model, never by shrinking the record.
type Cohort struct {
	BirthMonth int `json:"birthMonth"`
	// Size is the net count at birth (after fixed cancellations, if that
	// mode applies).
	Size int `json:"size"`
}

// Age returns the cohort's age in months at simulation month m. Negative
// before the birth month.
func (c Cohort) Age(m int) int {
	return m - c.BirthMonth
}

// MonthlyRow is one month of projected funnel activity and agent earnings.
// Rows are produced in increasing month order and never revisited.
type MonthlyRow struct {
	Month          int              `json:"month"`
	NewClients     int              `json:"newClients"`
	Cancellations  int              `json:"cancellations"`
	Mode           CancellationMode `json:"mode"`
	NetActivations int              `json:"netActivations"`
	SignedCum      int              `json:"signedCumulative"`

	// PayingClients is an expected count and may be fractional under churn.
	PayingClients decimal.Decimal `json:"payingClients"`

	GrossClientPayments   decimal.Decimal `json:"grossClientPayments"`
	NewSaleIncome         decimal.Decimal `json:"newSaleIncome"`
	CommissionFromClients decimal.Decimal `json:"commissionFromClients"`
	TotalEarnings         decimal.Decimal `json:"totalEarnings"`
}

// Year returns the 1-based year this month falls in.
func (r MonthlyRow) Year() int {
	return (r.Month-1)/12 + 1
}

// YearlyTotal is the rollup of up to twelve consecutive monthly rows.
type YearlyTotal struct {
	Year                  int             `json:"year"`
	GrossClientPayments   decimal.Decimal `json:"grossClientPayments"`
	NewSaleIncome         decimal.Decimal `json:"newSaleIncome"`
	CommissionFromClients decimal.Decimal `json:"commissionFromClients"`
	TotalEarnings         decimal.Decimal `json:"totalEarnings"`
}

// ProjectionResult bundles the engine output handed to display and export
// collaborators. It is a pure value with no reference back to the engine.
type ProjectionResult struct {
	Parameters *ParameterSet `json:"parameters"`
	Rows       []MonthlyRow  `json:"rows"`
	Yearly     []YearlyTotal `json:"yearly"`
}

// TotalEarnings sums total monthly earnings over the whole horizon.
func (pr *ProjectionResult) TotalEarnings() decimal.Decimal {
	total := decimal.Zero
	for _, row := range pr.Rows {
		total = total.Add(row.TotalEarnings)
	}
	return total
}

// FinalSignedCum returns the cumulative signed-client count at the horizon,
// or 0 for an empty projection.
func (pr *ProjectionResult) FinalSignedCum() int {
	if len(pr.Rows) == 0 {
		return 0
	}
	return pr.Rows[len(pr.Rows)-1].SignedCum
}
