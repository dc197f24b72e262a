package calculation

import (
	"github.com/investsim/investment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// GrowthTrajectory projects the compounding investment scenario year by year.
//
// Each year applies twelve monthly steps: the balance grows by the monthly
// return, then the month's contribution is added (ordinary-annuity style,
// contributed at month end). After the twelve steps the monthly contribution
// is scaled by the annual contribution growth for the following year; the
// recorded MonthlyContribution is that post-bump value.
func (pe *ProjectionEngine) GrowthTrajectory() []domain.GrowthPoint {
	points := make([]domain.GrowthPoint, pe.years)

	one := decimal.NewFromInt(1)
	growthFactor := one.Add(pe.monthlyReturn)
	contributionBump := one.Add(pe.contributionGrowth)

	nominalValue := pe.initialInvestment
	totalContributions := pe.initialInvestment
	currentMonthly := pe.monthlyInvestment

	for year := 1; year <= pe.years; year++ {
		for month := 0; month < monthsPerYear; month++ {
			nominalValue = nominalValue.Mul(growthFactor).Add(currentMonthly)
			totalContributions = totalContributions.Add(currentMonthly)
		}

		currentMonthly = currentMonthly.Mul(contributionBump)

		points[year-1] = domain.GrowthPoint{
			Year:                year,
			TotalContributions:  totalContributions,
			NominalValue:        nominalValue,
			RealValue:           nominalValue.Div(pe.deflationFactor(year)),
			MonthlyContribution: currentMonthly,
		}
	}

	return points
}

// NoInvestmentTrajectory projects the savings-only baseline: the same
// contribution schedule with zero return. Deposits are credited once per year
// as monthly x 12, a deliberately coarser model than the monthly recurrence
// above.
func (pe *ProjectionEngine) NoInvestmentTrajectory() []domain.BaselinePoint {
	points := make([]domain.BaselinePoint, pe.years)

	one := decimal.NewFromInt(1)
	contributionBump := one.Add(pe.contributionGrowth)
	yearMonths := decimal.NewFromInt(monthsPerYear)

	totalSavings := pe.initialInvestment
	currentMonthly := pe.monthlyInvestment

	for year := 1; year <= pe.years; year++ {
		totalSavings = totalSavings.Add(currentMonthly.Mul(yearMonths))
		currentMonthly = currentMonthly.Mul(contributionBump)

		points[year-1] = domain.BaselinePoint{
			Year:         year,
			TotalSavings: totalSavings,
			RealValue:    totalSavings.Div(pe.deflationFactor(year)),
		}
	}

	return points
}
