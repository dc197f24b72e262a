package domain

import (
	"github.com/shopspring/decimal"
)

// GrowthPoint is one year of the compounding investment trajectory.
//
// MonthlyContribution carries the amount after that year's contribution-growth
// bump, i.e. the rate in effect at the start of the following year. Downstream
// consumers (charts, CSV export) rely on this labeling.
type GrowthPoint struct {
	Year                int             `json:"year"`
	TotalContributions  decimal.Decimal `json:"total_contributions"`
	NominalValue        decimal.Decimal `json:"nominal_value"`
	RealValue           decimal.Decimal `json:"real_value"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
}

// BaselinePoint is one year of the no-investment savings baseline.
type BaselinePoint struct {
	Year         int             `json:"year"`
	TotalSavings decimal.Decimal `json:"total_savings"`
	RealValue    decimal.Decimal `json:"real_value"`
}

// WithdrawalEstimate holds the 4%-rule sustainable withdrawal figures for a
// terminal portfolio value, in both nominal terms and today's purchasing power.
type WithdrawalEstimate struct {
	Annual      decimal.Decimal `json:"annual_withdrawal"`
	Monthly     decimal.Decimal `json:"monthly_withdrawal"`
	RealAnnual  decimal.Decimal `json:"real_annual_withdrawal"`
	RealMonthly decimal.Decimal `json:"real_monthly_withdrawal"`
}

// Summary aggregates the final trajectory entries, the withdrawal estimate and
// the no-investment baseline. It is a pure projection of the two trajectories
// and carries no independent state.
type Summary struct {
	TotalContributions decimal.Decimal    `json:"total_contributions"`
	FinalNominalValue  decimal.Decimal    `json:"final_nominal_value"`
	FinalRealValue     decimal.Decimal    `json:"final_real_value"`
	InvestmentGain     decimal.Decimal    `json:"investment_gain"`
	RealGain           decimal.Decimal    `json:"real_gain"`
	Withdrawal         WithdrawalEstimate `json:"withdrawal"`
	NoInvestmentFinal  decimal.Decimal    `json:"no_investment_final"`
	NoInvestmentReal   decimal.Decimal    `json:"no_investment_real"`
}

// ProjectionReport bundles everything a formatter needs to render one
// projection run. Formatters must treat it as read-only.
type ProjectionReport struct {
	Parameters Parameters      `json:"parameters"`
	Growth     []GrowthPoint   `json:"growth"`
	Baseline   []BaselinePoint `json:"baseline"`
	Summary    Summary         `json:"summary"`
}
