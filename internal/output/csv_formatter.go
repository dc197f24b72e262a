package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/investsim/investment-simulator/internal/domain"
)

// CSVFormatter emits the joined yearly view of both trajectories, one row per
// year, same column order as the engine's direct CSV export.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "Total_Contributions", "Investment_Nominal_Value", "Investment_Real_Value", "No_Investment_Total", "No_Investment_Real", "Monthly_Contribution"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, point := range report.Growth {
		row := []string{
			strconv.Itoa(point.Year),
			point.TotalContributions.StringFixed(2),
			point.NominalValue.StringFixed(2),
			point.RealValue.StringFixed(2),
			report.Baseline[i].TotalSavings.StringFixed(2),
			report.Baseline[i].RealValue.StringFixed(2),
			point.MonthlyContribution.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
