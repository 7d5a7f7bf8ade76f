package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

func TestIsActiveByLifetime_UnlimitedWhenZero(t *testing.T) {
	assert.True(t, IsActiveByLifetime(100, 100, 0, domain.LifetimeFromActivation))
	assert.True(t, IsActiveByLifetime(100, 100, -1, domain.LifetimeAfterFreeMonths))
}

func TestIsActiveByLifetime_FromActivation(t *testing.T) {
	assert.True(t, IsActiveByLifetime(5, 2, 6, domain.LifetimeFromActivation))
	assert.False(t, IsActiveByLifetime(6, 2, 6, domain.LifetimeFromActivation))
}

func TestIsActiveByLifetime_AfterFreeMonths(t *testing.T) {
	// activation age is past the limit but the payment clock is not
	assert.True(t, IsActiveByLifetime(8, 5, 6, domain.LifetimeAfterFreeMonths))
	assert.False(t, IsActiveByLifetime(8, 6, 6, domain.LifetimeAfterFreeMonths))
}

func TestIsActiveByLifetime_MonotonicDeactivation(t *testing.T) {
	// Once the gate fails at some age it must fail at every greater age.
	for _, mode := range []domain.LifetimeMode{domain.LifetimeFromActivation, domain.LifetimeAfterFreeMonths} {
		failedAt := -1
		for age := 0; age < 24; age++ {
			active := IsActiveByLifetime(age, age, 6, mode)
			if !active && failedAt < 0 {
				failedAt = age
			}
			if failedAt >= 0 && age >= failedAt {
				assert.False(t, active, "mode %s reactivated at age %d", mode, age)
			}
		}
		assert.Equal(t, 6, failedAt)
	}
}

func TestSurvivalFactor_NoAttritionAtAgeZero(t *testing.T) {
	rate := decimal.NewFromFloat(0.25)
	assert.True(t, SurvivalFactor(rate, 0).Equal(decimal.NewFromInt(1)))
	assert.True(t, SurvivalFactor(rate, -1).Equal(decimal.NewFromInt(1)))
	assert.True(t, SurvivalFactor(decimal.Zero, 10).Equal(decimal.NewFromInt(1)))
}

func TestSurvivalFactor_GeometricDecay(t *testing.T) {
	rate := decimal.NewFromFloat(0.2)

	assert.True(t, SurvivalFactor(rate, 1).Equal(decimal.NewFromFloat(0.8)))
	assert.True(t, SurvivalFactor(rate, 2).Equal(decimal.NewFromFloat(0.64)))
	assert.True(t, SurvivalFactor(rate, 3).Equal(decimal.NewFromFloat(0.512)))
}

func TestSurvivalFactor_StrictlyDecreasing(t *testing.T) {
	rate := decimal.NewFromFloat(0.1)
	prev := SurvivalFactor(rate, 0)
	for age := 1; age <= 24; age++ {
		cur := SurvivalFactor(rate, age)
		assert.True(t, cur.LessThan(prev), "survival should strictly decrease at age %d", age)
		assert.True(t, cur.GreaterThan(decimal.Zero))
		prev = cur
	}
}

func TestChurnAge_FollowsLifetimeMode(t *testing.T) {
	assert.Equal(t, 7, ChurnAge(7, 4, domain.LifetimeFromActivation))
	assert.Equal(t, 4, ChurnAge(7, 4, domain.LifetimeAfterFreeMonths))
}
