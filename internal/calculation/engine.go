package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

var (
	decimalOne = decimal.NewFromInt(1)
)

// ErrPrecondition marks caller contract violations (out-of-range horizon,
// negative amounts). The projection itself is total for any input that
// passes these checks.
var ErrPrecondition = errors.New("precondition violation")

// Logger is a minimal leveled logging interface so callers can plug in
// their preferred logger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output. It is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// ProjectionEngine drives the month-by-month earnings simulation. It holds
// no per-run state, so a single engine may serve concurrent runs.
type ProjectionEngine struct {
	Logger Logger
	Debug  bool
}

// NewProjectionEngine creates an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger installs a custom logger; nil restores the no-op logger.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// checkPreconditions fails fast on inputs the config layer should already
// have rejected, so a direct caller cannot mistake garbage for a result.
func checkPreconditions(params *domain.ParameterSet) error {
	if params == nil {
		return fmt.Errorf("%w: nil parameter set", ErrPrecondition)
	}
	if params.Months < 1 {
		return fmt.Errorf("%w: projection horizon must be at least 1 month, got %d", ErrPrecondition, params.Months)
	}
	if params.NewClientsPerMonth < 0 {
		return fmt.Errorf("%w: new clients per month cannot be negative, got %d", ErrPrecondition, params.NewClientsPerMonth)
	}
	if params.FixedCancellations < 0 {
		return fmt.Errorf("%w: cancellations per month cannot be negative, got %d", ErrPrecondition, params.FixedCancellations)
	}
	for _, amt := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"intro amount", params.Contract.IntroAmount},
		{"recurring amount", params.Contract.RecurringAmount},
		{"flat amount", params.Contract.FlatAmount},
		{"new sale payout", params.Bonus.AmountPerClient},
	} {
		if amt.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: %s cannot be negative, got %s", ErrPrecondition, amt.name, amt.value)
		}
	}
	if params.CommissionPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: commission percent cannot be negative, got %s", ErrPrecondition, params.CommissionPercent)
	}
	return nil
}

// Run projects the full horizon and returns monthly rows plus the yearly
// rollup as one self-contained result.
func (pe *ProjectionEngine) Run(params *domain.ParameterSet) (*domain.ProjectionResult, error) {
	rows, err := pe.Project(params)
	if err != nil {
		return nil, err
	}
	return &domain.ProjectionResult{
		Parameters: params,
		Rows:       rows,
		Yearly:     AggregateByYear(rows),
	}, nil
}
