package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayoutPolicyComponents(t *testing.T) {
	cases := []struct {
		policy        PayoutPolicy
		wantBonus     bool
		wantRecurring bool
	}{
		{PayoutBonusOnly, true, false},
		{PayoutBonusRecurring, true, true},
		{PayoutRecurringOnly, false, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.wantBonus, tc.policy.IncludesBonus(), "%s bonus", tc.policy)
		assert.Equal(t, tc.wantRecurring, tc.policy.IncludesRecurring(), "%s recurring", tc.policy)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, CancellationFixed.Valid())
	assert.True(t, CancellationChurn.Valid())
	assert.False(t, CancellationMode("weekly").Valid())

	assert.True(t, PayoutBonusOnly.Valid())
	assert.False(t, PayoutPolicy("everything").Valid())

	assert.True(t, PayoutCommissionable.Valid())
	assert.False(t, PayoutType("deferred").Valid())

	assert.True(t, ContractIntroRecurring.Valid())
	assert.False(t, ContractType("usage").Valid())

	assert.True(t, LifetimeFromActivation.Valid())
	assert.False(t, LifetimeMode("forever").Valid())
}

func TestChurnRateClamp(t *testing.T) {
	ps := &ParameterSet{ChurnPercent: decimal.NewFromInt(10)}
	assert.True(t, ps.ChurnRate().Equal(decimal.NewFromFloat(0.1)))

	ps.ChurnPercent = decimal.NewFromInt(100)
	assert.True(t, ps.ChurnRate().Equal(decimal.NewFromFloat(0.99)), "rate 1.0 is clamped to 0.99")

	ps.ChurnPercent = decimal.NewFromInt(250)
	assert.True(t, ps.ChurnRate().Equal(decimal.NewFromFloat(0.99)))

	ps.ChurnPercent = decimal.NewFromInt(-5)
	assert.True(t, ps.ChurnRate().IsZero())
}

func TestCommissionRate(t *testing.T) {
	ps := &ParameterSet{CommissionPercent: decimal.NewFromInt(80)}
	assert.True(t, ps.CommissionRate().Equal(decimal.NewFromFloat(0.8)))
}

func TestFunnelOverrideAppliesTo(t *testing.T) {
	o := FunnelOverride{Enabled: true, Month: 5, NewClients: 20}
	assert.True(t, o.AppliesTo(5))
	assert.False(t, o.AppliesTo(4))

	o.Enabled = false
	assert.False(t, o.AppliesTo(5))

	// month 0 means "not set" even if somehow enabled
	o = FunnelOverride{Enabled: true, Month: 0}
	assert.False(t, o.AppliesTo(0))
}

func TestCohortAge(t *testing.T) {
	c := Cohort{BirthMonth: 4, Size: 10}
	assert.Equal(t, 0, c.Age(4))
	assert.Equal(t, 3, c.Age(7))
	assert.Equal(t, -2, c.Age(2))
}

func TestMonthlyRowYear(t *testing.T) {
	assert.Equal(t, 1, MonthlyRow{Month: 1}.Year())
	assert.Equal(t, 1, MonthlyRow{Month: 12}.Year())
	assert.Equal(t, 2, MonthlyRow{Month: 13}.Year())
	assert.Equal(t, 3, MonthlyRow{Month: 25}.Year())
}

func TestProjectionResultHelpers(t *testing.T) {
	pr := &ProjectionResult{
		Rows: []MonthlyRow{
			{Month: 1, SignedCum: 10, TotalEarnings: decimal.NewFromInt(100)},
			{Month: 2, SignedCum: 20, TotalEarnings: decimal.NewFromInt(250)},
		},
	}
	assert.True(t, pr.TotalEarnings().Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 20, pr.FinalSignedCum())

	empty := &ProjectionResult{}
	assert.Equal(t, 0, empty.FinalSignedCum())
	assert.True(t, empty.TotalEarnings().IsZero())
}

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	assert.Equal(t, 36, p.Months)
	assert.Equal(t, CancellationFixed, p.CancellationMode)
	assert.Equal(t, PayoutBonusRecurring, p.PayoutPolicy)
	assert.True(t, p.Bonus.Enabled)
	assert.Equal(t, ContractIntroRecurring, p.Contract.Type)
}
