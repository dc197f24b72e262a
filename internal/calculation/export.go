package calculation

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the fixed column set of the joined yearly view. Field order is
// part of the export contract and identical on every call.
var csvHeader = []string{
	"Year",
	"Total_Contributions",
	"Investment_Nominal_Value",
	"Investment_Real_Value",
	"No_Investment_Total",
	"No_Investment_Real",
	"Monthly_Contribution",
}

// ExportCSV writes the joined view of both trajectories to w: a header row,
// then one row per year. Write failures are surfaced, never swallowed.
func (pe *ProjectionEngine) ExportCSV(w io.Writer) error {
	growth := pe.GrowthTrajectory()
	baseline := pe.NoInvestmentTrajectory()

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, point := range growth {
		row := []string{
			strconv.Itoa(point.Year),
			point.TotalContributions.StringFixed(2),
			point.NominalValue.StringFixed(2),
			point.RealValue.StringFixed(2),
			baseline[i].TotalSavings.StringFixed(2),
			baseline[i].RealValue.StringFixed(2),
			point.MonthlyContribution.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for year %d: %w", point.Year, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportCSVFile writes the joined view to the given path, creating or
// truncating the file. The file is closed on all exit paths.
func (pe *ProjectionEngine) ExportCSVFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export destination %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export destination %s: %w", path, cerr)
		}
	}()

	if err := pe.ExportCSV(f); err != nil {
		return err
	}
	pe.Logger.Infof("exported projection to %s", path)
	return nil
}
