package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/investsim/investment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// percentDivisor converts percent-denominated inputs (7.0 for 7%) to fractions.
	percentDivisor = 100

	monthsPerYear = 12
)

// ErrInvalidHorizon is returned when the investment horizon is shorter than one
// year. A zero-length horizon has no final-year withdrawal base.
var ErrInvalidHorizon = errors.New("investment horizon must be at least one year")

// ProjectionEngine projects a recurring investment plan over a multi-year
// horizon. It is a pure function of its construction parameters: every call
// with the same parameters yields identical output. The engine holds no
// mutable state, so any number of calls may run concurrently.
type ProjectionEngine struct {
	params domain.Parameters

	initialInvestment  decimal.Decimal
	monthlyInvestment  decimal.Decimal
	contributionGrowth decimal.Decimal
	annualReturn       decimal.Decimal
	inflationRate      decimal.Decimal
	years              int

	// monthlyReturn is the monthly-equivalent rate: (1+annual)^(1/12)-1.
	monthlyReturn decimal.Decimal
	// monthlyInflation is derived for symmetry with monthlyReturn but is not
	// used for deflation; real values always deflate by the annual rate
	// compounded per whole year.
	monthlyInflation decimal.Decimal

	Logger Logger
}

// NewProjectionEngine builds an engine from percent-denominated parameters.
// Rate and amount ranges are accepted as given; only the horizon is guarded.
func NewProjectionEngine(params domain.Parameters) (*ProjectionEngine, error) {
	if params.Years < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, params.Years)
	}

	annualReturn := params.AnnualReturn / percentDivisor
	inflationRate := params.InflationRate / percentDivisor

	return &ProjectionEngine{
		params:             params,
		initialInvestment:  decimal.NewFromFloat(params.InitialInvestment),
		monthlyInvestment:  decimal.NewFromFloat(params.MonthlyInvestment),
		contributionGrowth: decimal.NewFromFloat(params.AnnualContributionGrowth / percentDivisor),
		annualReturn:       decimal.NewFromFloat(annualReturn),
		inflationRate:      decimal.NewFromFloat(inflationRate),
		years:              params.Years,
		monthlyReturn:      decimal.NewFromFloat(math.Pow(1+annualReturn, 1.0/monthsPerYear) - 1),
		monthlyInflation:   decimal.NewFromFloat(math.Pow(1+inflationRate, 1.0/monthsPerYear) - 1),
		Logger:             NopLogger{},
	}, nil
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Years returns the projection horizon in years.
func (pe *ProjectionEngine) Years() int {
	return pe.years
}

// MonthlyReturn returns the derived monthly-equivalent return rate.
func (pe *ProjectionEngine) MonthlyReturn() decimal.Decimal {
	return pe.monthlyReturn
}

// deflationFactor is (1+inflation)^year, the divisor that expresses a nominal
// value in today's purchasing power. Deflation is per whole year on purpose.
func (pe *ProjectionEngine) deflationFactor(year int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(pe.inflationRate).Pow(decimal.NewFromInt(int64(year)))
}

// Report runs both trajectories and the summary and bundles them for the
// output layer.
func (pe *ProjectionEngine) Report() *domain.ProjectionReport {
	return &domain.ProjectionReport{
		Parameters: pe.params,
		Growth:     pe.GrowthTrajectory(),
		Baseline:   pe.NoInvestmentTrajectory(),
		Summary:    pe.Summarize(),
	}
}
