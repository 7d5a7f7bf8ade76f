package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CancellationMode selects how client attrition is modeled.
type CancellationMode string

const (
	// CancellationFixed subtracts a fixed number of cancellations from each
	// month's new clients before the cohort is recorded.
	CancellationFixed CancellationMode = "fixed"
	// CancellationChurn records cohorts at full size and applies a constant
	// monthly churn probability at read time.
	CancellationChurn CancellationMode = "churn"
)

// PayoutPolicy selects which earning components the agent receives.
type PayoutPolicy string

const (
	PayoutBonusOnly      PayoutPolicy = "bonus_only"
	PayoutBonusRecurring PayoutPolicy = "bonus_recurring"
	PayoutRecurringOnly  PayoutPolicy = "recurring_only"
)

// IncludesBonus reports whether the new-sale bonus is part of the payout.
func (p PayoutPolicy) IncludesBonus() bool {
	return p == PayoutBonusOnly || p == PayoutBonusRecurring
}

// IncludesRecurring reports whether recurring commission is part of the payout.
func (p PayoutPolicy) IncludesRecurring() bool {
	return p == PayoutBonusRecurring || p == PayoutRecurringOnly
}

// PayoutType selects whether the bonus is commissioned or paid out directly.
type PayoutType string

const (
	PayoutCommissionable PayoutType = "commissionable"
	PayoutFlat           PayoutType = "flat"
)

// ContractType selects the client payment schedule.
type ContractType string

const (
	ContractIntroRecurring ContractType = "intro_recurring"
	ContractFlat           ContractType = "flat"
)

// LifetimeMode selects the reference point for the lifetime cutoff and,
// in churn mode, for the survival clock.
type LifetimeMode string

const (
	LifetimeFromActivation  LifetimeMode = "from_activation"
	LifetimeAfterFreeMonths LifetimeMode = "after_free_months"
)

// FunnelOverride replaces the default new-client count for a single month.
type FunnelOverride struct {
	Enabled    bool `yaml:"enabled" json:"enabled"`
	Month      int  `yaml:"month" json:"month"`
	NewClients int  `yaml:"new_clients" json:"newClients"`
}

// AppliesTo reports whether the override replaces the default for month m.
func (o FunnelOverride) AppliesTo(m int) bool {
	return o.Enabled && o.Month == m && o.Month > 0
}

// ContractPlan describes one client's gross payment schedule.
type ContractPlan struct {
	Type            ContractType    `yaml:"type" json:"type"`
	FreeMonths      int             `yaml:"free_months" json:"freeMonths"`
	IntroMonths     int             `yaml:"intro_months" json:"introMonths"`
	IntroAmount     decimal.Decimal `yaml:"intro_amount" json:"introAmount"`
	RecurringAmount decimal.Decimal `yaml:"recurring_amount" json:"recurringAmount"`
	FlatAmount      decimal.Decimal `yaml:"flat_amount" json:"flatAmount"`
}

// BonusPlan describes the one-off new-sale payout.
type BonusPlan struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	// AmountPerClient is paid for every client signed in an eligible month.
	AmountPerClient decimal.Decimal `yaml:"amount_per_client" json:"amountPerClient"`
	// DurationMonths counts the agent's own elapsed simulation months,
	// not any individual client's age. 0 disables the bonus.
	DurationMonths int `yaml:"duration_months" json:"durationMonths"`
}

// ParameterSet is the complete, immutable input to one projection run.
type ParameterSet struct {
	Months   int    `yaml:"months" json:"months"`
	Currency string `yaml:"currency" json:"currency"`

	NewClientsPerMonth int            `yaml:"new_clients_per_month" json:"newClientsPerMonth"`
	Override           FunnelOverride `yaml:"override" json:"override"`

	CancellationMode   CancellationMode `yaml:"cancellation_mode" json:"cancellationMode"`
	FixedCancellations int              `yaml:"fixed_cancellations" json:"fixedCancellations"`
	ChurnPercent       decimal.Decimal  `yaml:"churn_percent" json:"churnPercent"`

	CommissionPercent decimal.Decimal `yaml:"commission_percent" json:"commissionPercent"`
	PayoutPolicy      PayoutPolicy    `yaml:"payout_policy" json:"payoutPolicy"`
	PayoutType        PayoutType      `yaml:"payout_type" json:"payoutType"`
	Bonus             BonusPlan       `yaml:"bonus" json:"bonus"`

	Contract ContractPlan `yaml:"contract" json:"contract"`

	// LifetimeMonths caps the client relationship; 0 means unlimited.
	LifetimeMonths int          `yaml:"lifetime_months" json:"lifetimeMonths"`
	LifetimeMode   LifetimeMode `yaml:"lifetime_mode" json:"lifetimeMode"`
}

// CommissionRate returns the commission as a fraction in [0, 1].
func (ps *ParameterSet) CommissionRate() decimal.Decimal {
	return ps.CommissionPercent.Div(decimal.NewFromInt(100))
}

// ChurnRate returns the churn percentage as a monthly probability, clamped
// into [0, 0.99]. A rate of exactly 1.0 would make a cohort vanish the
// instant it ages, so the top of the range is clamped rather than rejected.
func (ps *ParameterSet) ChurnRate() decimal.Decimal {
	rate := ps.ChurnPercent.Div(decimal.NewFromInt(100))
	if rate.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	ceiling := decimal.NewFromFloat(0.99)
	if rate.GreaterThan(ceiling) {
		return ceiling
	}
	return rate
}

// DefaultParameters mirrors the stock form values of the original calculator.
func DefaultParameters() *ParameterSet {
	return &ParameterSet{
		Months:             36,
		Currency:           "£",
		NewClientsPerMonth: 12,
		CancellationMode:   CancellationFixed,
		FixedCancellations: 2,
		ChurnPercent:       decimal.Zero,
		CommissionPercent:  decimal.NewFromInt(80),
		PayoutPolicy:       PayoutBonusRecurring,
		PayoutType:         PayoutCommissionable,
		Bonus: BonusPlan{
			Enabled:         true,
			AmountPerClient: decimal.NewFromInt(160),
			DurationMonths:  1,
		},
		Contract: ContractPlan{
			Type:            ContractIntroRecurring,
			IntroMonths:     3,
			IntroAmount:     decimal.NewFromInt(300),
			RecurringAmount: decimal.NewFromInt(150),
		},
		LifetimeMode: LifetimeFromActivation,
	}
}

// Valid reports whether the mode is a known cancellation mode.
func (m CancellationMode) Valid() bool {
	return m == CancellationFixed || m == CancellationChurn
}

// Valid reports whether the policy is a known payout policy.
func (p PayoutPolicy) Valid() bool {
	return p == PayoutBonusOnly || p == PayoutBonusRecurring || p == PayoutRecurringOnly
}

// Valid reports whether the type is a known payout type.
func (t PayoutType) Valid() bool {
	return t == PayoutCommissionable || t == PayoutFlat
}

// Valid reports whether the type is a known contract type.
func (t ContractType) Valid() bool {
	return t == ContractIntroRecurring || t == ContractFlat
}

// Valid reports whether the mode is a known lifetime mode.
func (m LifetimeMode) Valid() bool {
	return m == LifetimeFromActivation || m == LifetimeAfterFreeMonths
}

// Label returns the human-readable form used in reports and exports.
func (m CancellationMode) Label() string {
	switch m {
	case CancellationFixed:
		return "Fixed"
	case CancellationChurn:
		return "Churn"
	default:
		return string(m)
	}
}

// Label returns the human-readable form used in reports and exports.
func (p PayoutPolicy) Label() string {
	switch p {
	case PayoutBonusOnly:
		return "Bonus only (no recurring)"
	case PayoutBonusRecurring:
		return "Bonus + Recurring"
	case PayoutRecurringOnly:
		return "Recurring only (no bonus)"
	default:
		return string(p)
	}
}

// Label returns the human-readable form used in reports and exports.
func (t PayoutType) Label() string {
	switch t {
	case PayoutCommissionable:
		return "Commissionable (x%)"
	case PayoutFlat:
		return "Flat (direct)"
	default:
		return string(t)
	}
}

// Label returns the human-readable form used in reports and exports.
func (t ContractType) Label() string {
	switch t {
	case ContractIntroRecurring:
		return "Intro + Recurring"
	case ContractFlat:
		return "Flat Monthly"
	default:
		return string(t)
	}
}

// Label returns the human-readable form used in reports and exports.
func (m LifetimeMode) Label() string {
	switch m {
	case LifetimeFromActivation:
		return "From activation"
	case LifetimeAfterFreeMonths:
		return "After free months"
	default:
		return string(m)
	}
}

func (ps *ParameterSet) describeOverride() string {
	if !ps.Override.Enabled {
		return "-"
	}
	return fmt.Sprintf("month %d -> %d clients", ps.Override.Month, ps.Override.NewClients)
}

// Describe returns a short one-line summary for logs.
func (ps *ParameterSet) Describe() string {
	return fmt.Sprintf("%d months, %d new/month (override %s), %s cancellations, %s",
		ps.Months, ps.NewClientsPerMonth, ps.describeOverride(),
		ps.CancellationMode.Label(), ps.PayoutPolicy.Label())
}
