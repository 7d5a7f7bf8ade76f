package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// InputParser handles parsing of parameter files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a parameter set from a YAML file and validates it.
// Fields absent from the file keep their defaults, so a partial file only
// overrides what it names.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ParameterSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	params := domain.DefaultParameters()
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateParameters(params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return params, nil
}

// ValidateParameters enforces the engine's input contract: the engine
// assumes these hold, so every violation must be rejected here.
func (ip *InputParser) ValidateParameters(params *domain.ParameterSet) error {
	if params == nil {
		return fmt.Errorf("parameter set is required")
	}

	if params.Months < 1 {
		return fmt.Errorf("months must be at least 1, got %d", params.Months)
	}

	if params.NewClientsPerMonth < 0 {
		return fmt.Errorf("new clients per month cannot be negative, got %d", params.NewClientsPerMonth)
	}

	if err := ip.validateOverride(params); err != nil {
		return err
	}
	if err := ip.validateCancellation(params); err != nil {
		return err
	}
	if err := ip.validateContract(&params.Contract); err != nil {
		return err
	}
	if err := ip.validatePayout(params); err != nil {
		return err
	}

	if params.LifetimeMonths < 0 {
		return fmt.Errorf("lifetime months cannot be negative, got %d", params.LifetimeMonths)
	}
	if !params.LifetimeMode.Valid() {
		return fmt.Errorf("unknown lifetime mode %q", params.LifetimeMode)
	}

	return nil
}

func (ip *InputParser) validateOverride(params *domain.ParameterSet) error {
	if !params.Override.Enabled {
		return nil
	}
	if params.Override.Month < 1 || params.Override.Month > params.Months {
		return fmt.Errorf("override month must be in [1, %d], got %d", params.Months, params.Override.Month)
	}
	if params.Override.NewClients < 0 {
		return fmt.Errorf("override new clients cannot be negative, got %d", params.Override.NewClients)
	}
	return nil
}

func (ip *InputParser) validateCancellation(params *domain.ParameterSet) error {
	if !params.CancellationMode.Valid() {
		return fmt.Errorf("unknown cancellation mode %q", params.CancellationMode)
	}
	if params.FixedCancellations < 0 {
		return fmt.Errorf("fixed cancellations cannot be negative, got %d", params.FixedCancellations)
	}
	if params.ChurnPercent.LessThan(decimal.Zero) || params.ChurnPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("churn percent must be in [0, 100], got %s", params.ChurnPercent)
	}
	return nil
}

func (ip *InputParser) validateContract(plan *domain.ContractPlan) error {
	if !plan.Type.Valid() {
		return fmt.Errorf("unknown contract type %q", plan.Type)
	}
	if plan.FreeMonths < 0 {
		return fmt.Errorf("free months cannot be negative, got %d", plan.FreeMonths)
	}
	if plan.IntroMonths < 0 {
		return fmt.Errorf("intro months cannot be negative, got %d", plan.IntroMonths)
	}
	for _, amt := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"intro amount", plan.IntroAmount},
		{"recurring amount", plan.RecurringAmount},
		{"flat amount", plan.FlatAmount},
	} {
		if amt.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative, got %s", amt.name, amt.value)
		}
	}
	return nil
}

func (ip *InputParser) validatePayout(params *domain.ParameterSet) error {
	if params.CommissionPercent.LessThan(decimal.Zero) || params.CommissionPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("commission percent must be in [0, 100], got %s", params.CommissionPercent)
	}
	if !params.PayoutPolicy.Valid() {
		return fmt.Errorf("unknown payout policy %q", params.PayoutPolicy)
	}
	if !params.PayoutType.Valid() {
		return fmt.Errorf("unknown payout type %q", params.PayoutType)
	}
	if params.Bonus.AmountPerClient.LessThan(decimal.Zero) {
		return fmt.Errorf("new sale payout cannot be negative, got %s", params.Bonus.AmountPerClient)
	}
	if params.Bonus.DurationMonths < 0 {
		return fmt.Errorf("payout duration cannot be negative, got %d", params.Bonus.DurationMonths)
	}
	return nil
}
