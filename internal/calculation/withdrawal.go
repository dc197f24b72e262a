package calculation

import (
	"github.com/investsim/investment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// safeWithdrawalRate is the fixed 4% rule: the fraction of a terminal
// portfolio assumed sustainable as a perpetual annual withdrawal.
var safeWithdrawalRate = decimal.NewFromFloat(0.04)

// RetirementWithdrawal estimates the post-horizon withdrawal supported by a
// terminal portfolio value under the 4% rule. The real figures deflate the
// nominal withdrawal over the full horizon, expressing it in today's
// purchasing power. A zero finalValue yields zero withdrawals.
func (pe *ProjectionEngine) RetirementWithdrawal(finalValue decimal.Decimal) domain.WithdrawalEstimate {
	months := decimal.NewFromInt(monthsPerYear)

	annual := finalValue.Mul(safeWithdrawalRate)
	realAnnual := annual.Div(pe.deflationFactor(pe.years))

	return domain.WithdrawalEstimate{
		Annual:      annual,
		Monthly:     annual.Div(months),
		RealAnnual:  realAnnual,
		RealMonthly: realAnnual.Div(months),
	}
}
