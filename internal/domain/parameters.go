package domain

// Parameters holds the six inputs that fully determine a projection.
// Rate fields are percent-denominated (7.0 means 7%); the calculation
// engine converts them to fractions at construction.
type Parameters struct {
	InitialInvestment        float64 `yaml:"initial_investment" json:"initial_investment"`
	MonthlyInvestment        float64 `yaml:"monthly_investment" json:"monthly_investment"`
	AnnualContributionGrowth float64 `yaml:"annual_contribution_growth" json:"annual_contribution_growth"`
	AnnualReturn             float64 `yaml:"annual_return" json:"annual_return"`
	InflationRate            float64 `yaml:"inflation_rate" json:"inflation_rate"`
	Years                    int     `yaml:"investment_years" json:"investment_years"`
}
