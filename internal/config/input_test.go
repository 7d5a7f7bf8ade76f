package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

func writeParamsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_FullDocument(t *testing.T) {
	path := writeParamsFile(t, `
months: 24
currency: "$"
new_clients_per_month: 10
override:
  enabled: true
  month: 3
  new_clients: 50
cancellation_mode: churn
churn_percent: 5
commission_percent: 50
payout_policy: recurring_only
payout_type: flat
bonus:
  enabled: false
  amount_per_client: 0
  duration_months: 0
contract:
  type: flat
  free_months: 1
  flat_amount: 100
lifetime_months: 12
lifetime_mode: after_free_months
`)

	params, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 24, params.Months)
	assert.Equal(t, "$", params.Currency)
	assert.True(t, params.Override.AppliesTo(3))
	assert.Equal(t, domain.CancellationChurn, params.CancellationMode)
	assert.True(t, params.ChurnPercent.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, domain.PayoutRecurringOnly, params.PayoutPolicy)
	assert.Equal(t, domain.ContractFlat, params.Contract.Type)
	assert.Equal(t, 12, params.LifetimeMonths)
	assert.Equal(t, domain.LifetimeAfterFreeMonths, params.LifetimeMode)
}

func TestLoadFromFile_PartialDocumentKeepsDefaults(t *testing.T) {
	path := writeParamsFile(t, `
months: 12
new_clients_per_month: 4
`)

	params, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	defaults := domain.DefaultParameters()
	assert.Equal(t, 12, params.Months)
	assert.Equal(t, 4, params.NewClientsPerMonth)
	assert.Equal(t, defaults.Currency, params.Currency)
	assert.Equal(t, defaults.PayoutPolicy, params.PayoutPolicy)
	assert.True(t, params.CommissionPercent.Equal(defaults.CommissionPercent))
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	path := writeParamsFile(t, "months: [not a number")
	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateParameters(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(p *domain.ParameterSet)
		wantErr string
	}{
		{"valid defaults", func(p *domain.ParameterSet) {}, ""},
		{"zero months", func(p *domain.ParameterSet) { p.Months = 0 }, "months must be at least 1"},
		{"negative new clients", func(p *domain.ParameterSet) { p.NewClientsPerMonth = -1 }, "cannot be negative"},
		{"override month too large", func(p *domain.ParameterSet) {
			p.Override = domain.FunnelOverride{Enabled: true, Month: 99, NewClients: 5}
		}, "override month must be in [1, 36]"},
		{"disabled override not validated", func(p *domain.ParameterSet) {
			p.Override = domain.FunnelOverride{Enabled: false, Month: 99}
		}, ""},
		{"unknown cancellation mode", func(p *domain.ParameterSet) { p.CancellationMode = "weekly" }, "unknown cancellation mode"},
		{"churn percent over 100", func(p *domain.ParameterSet) {
			p.ChurnPercent = decimal.NewFromInt(101)
		}, "churn percent must be in [0, 100]"},
		{"commission percent negative", func(p *domain.ParameterSet) {
			p.CommissionPercent = decimal.NewFromInt(-1)
		}, "commission percent must be in [0, 100]"},
		{"unknown payout policy", func(p *domain.ParameterSet) { p.PayoutPolicy = "all" }, "unknown payout policy"},
		{"unknown payout type", func(p *domain.ParameterSet) { p.PayoutType = "deferred" }, "unknown payout type"},
		{"negative bonus", func(p *domain.ParameterSet) {
			p.Bonus.AmountPerClient = decimal.NewFromInt(-10)
		}, "new sale payout cannot be negative"},
		{"unknown contract type", func(p *domain.ParameterSet) { p.Contract.Type = "usage" }, "unknown contract type"},
		{"negative intro amount", func(p *domain.ParameterSet) {
			p.Contract.IntroAmount = decimal.NewFromInt(-1)
		}, "intro amount cannot be negative"},
		{"negative lifetime", func(p *domain.ParameterSet) { p.LifetimeMonths = -1 }, "lifetime months cannot be negative"},
		{"unknown lifetime mode", func(p *domain.ParameterSet) { p.LifetimeMode = "forever" }, "unknown lifetime mode"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := domain.DefaultParameters()
			tc.mutate(params)
			err := NewInputParser().ValidateParameters(params)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
