package output

import (
	"bytes"
	"fmt"

	"github.com/investsim/investment-simulator/internal/domain"
	moneydec "github.com/investsim/investment-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a concise text summary of a projection run.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Parameters
	s := report.Summary

	fmt.Fprintln(&buf, "INVESTMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Horizon: %d years | Return: %.2f%% | Inflation: %.2f%% | Contribution growth: %.2f%%\n",
		p.Years, p.AnnualReturn, p.InflationRate, p.AnnualContributionGrowth)
	fmt.Fprintf(&buf, "Initial: %s | Monthly: %s\n",
		moneydec.NewMoney(p.InitialInvestment).Format(), moneydec.NewMoney(p.MonthlyInvestment).Format())
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Total Contributions:     %s\n", formatCurrency(s.TotalContributions))
	fmt.Fprintf(&buf, "Final Value (nominal):   %s (gain %s)\n", formatCurrency(s.FinalNominalValue), formatCurrency(s.InvestmentGain))
	fmt.Fprintf(&buf, "Final Value (real):      %s (gain %s)\n", formatCurrency(s.FinalRealValue), formatCurrency(s.RealGain))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "No-Investment Baseline:  %s nominal / %s real\n",
		formatCurrency(s.NoInvestmentFinal), formatCurrency(s.NoInvestmentReal))
	fmt.Fprintf(&buf, "Investment Advantage:    %s nominal / %s real\n",
		formatCurrency(s.FinalNominalValue.Sub(s.NoInvestmentFinal)),
		formatCurrency(s.FinalRealValue.Sub(s.NoInvestmentReal)))
	fmt.Fprintln(&buf)

	w := s.Withdrawal
	fmt.Fprintln(&buf, "RETIREMENT WITHDRAWAL (4% RULE)")
	fmt.Fprintf(&buf, "  Annual:  %s nominal / %s real\n", formatCurrency(w.Annual), formatCurrency(w.RealAnnual))
	fmt.Fprintf(&buf, "  Monthly: %s nominal / %s real\n", formatCurrency(w.Monthly), formatCurrency(w.RealMonthly))

	return buf.Bytes(), nil
}

func formatCurrency(d decimal.Decimal) string {
	return moneydec.NewMoneyFromDecimal(d).Round().Format()
}
