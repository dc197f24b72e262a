package config

import (
	"fmt"
	"os"

	"github.com/investsim/investment-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Plausibility bounds enforced on parameter files. The engine itself only
// guards the horizon; everything else is checked here at the input boundary.
const (
	maxContributionGrowthPercent = 20.0
	maxReturnPercent             = 30.0
	maxInflationPercent          = 10.0
	maxYears                     = 50
)

// InputParser handles parsing of parameter files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads projection parameters from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Parameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	params := DefaultParameters()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &params, nil
}

// ValidateParameters validates loaded parameters against plausibility bounds.
func (ip *InputParser) ValidateParameters(params *domain.Parameters) error {
	if params.InitialInvestment < 0 {
		return fmt.Errorf("initial investment cannot be negative")
	}
	if params.MonthlyInvestment < 0 {
		return fmt.Errorf("monthly investment cannot be negative")
	}
	if params.AnnualContributionGrowth < 0 || params.AnnualContributionGrowth > maxContributionGrowthPercent {
		return fmt.Errorf("annual contribution growth must be between 0 and %v percent", maxContributionGrowthPercent)
	}
	if params.AnnualReturn < 0 || params.AnnualReturn > maxReturnPercent {
		return fmt.Errorf("annual return must be between 0 and %v percent", maxReturnPercent)
	}
	if params.InflationRate < 0 || params.InflationRate > maxInflationPercent {
		return fmt.Errorf("inflation rate must be between 0 and %v percent", maxInflationPercent)
	}
	if params.Years < 1 || params.Years > maxYears {
		return fmt.Errorf("investment years must be between 1 and %d", maxYears)
	}
	return nil
}

// DefaultParameters returns the standard starting parameter set: a 10k lump
// sum, 1k per month growing 3% a year, 7% return, 2.5% inflation, 30 years.
func DefaultParameters() domain.Parameters {
	return domain.Parameters{
		InitialInvestment:        10000,
		MonthlyInvestment:        1000,
		AnnualContributionGrowth: 3.0,
		AnnualReturn:             7.0,
		InflationRate:            2.5,
		Years:                    30,
	}
}

// SaveParameters writes a parameter set to a YAML file.
func SaveParameters(params *domain.Parameters, filename string) error {
	b, err := yaml.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
