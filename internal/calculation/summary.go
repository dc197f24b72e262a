package calculation

import (
	"github.com/investsim/investment-simulator/internal/domain"
)

// Summarize composes both trajectories and the withdrawal estimate into a
// single aggregation. It calls the same trajectory methods used for chart and
// export data, so summary figures can never drift from the series they
// describe.
func (pe *ProjectionEngine) Summarize() domain.Summary {
	growth := pe.GrowthTrajectory()
	baseline := pe.NoInvestmentTrajectory()

	final := growth[len(growth)-1]
	baselineFinal := baseline[len(baseline)-1]

	horizonDeflation := pe.deflationFactor(pe.years)

	return domain.Summary{
		TotalContributions: final.TotalContributions,
		FinalNominalValue:  final.NominalValue,
		FinalRealValue:     final.RealValue,
		InvestmentGain:     final.NominalValue.Sub(final.TotalContributions),
		RealGain:           final.RealValue.Sub(final.TotalContributions.Div(horizonDeflation)),
		Withdrawal:         pe.RetirementWithdrawal(final.NominalValue),
		NoInvestmentFinal:  baselineFinal.TotalSavings,
		NoInvestmentReal:   baselineFinal.RealValue,
	}
}
