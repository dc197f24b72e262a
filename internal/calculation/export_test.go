package calculation

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/investsim/investment-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportParams() domain.Parameters {
	return domain.Parameters{
		InitialInvestment:        10000,
		MonthlyInvestment:        1000,
		AnnualContributionGrowth: 3,
		AnnualReturn:             7,
		InflationRate:            2.5,
		Years:                    5,
	}
}

func TestExportCSVHeaderAndRows(t *testing.T) {
	engine := mustEngine(t, exportParams())

	var buf bytes.Buffer
	require.NoError(t, engine.ExportCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6) // header + one row per year

	assert.Equal(t, []string{
		"Year",
		"Total_Contributions",
		"Investment_Nominal_Value",
		"Investment_Real_Value",
		"No_Investment_Total",
		"No_Investment_Real",
		"Monthly_Contribution",
	}, records[0])

	growth := engine.GrowthTrajectory()
	baseline := engine.NoInvestmentTrajectory()
	for i, row := range records[1:] {
		assert.Equal(t, strconv.Itoa(i+1), row[0])
		assert.Equal(t, growth[i].TotalContributions.StringFixed(2), row[1])
		assert.Equal(t, growth[i].NominalValue.StringFixed(2), row[2])
		assert.Equal(t, growth[i].RealValue.StringFixed(2), row[3])
		assert.Equal(t, baseline[i].TotalSavings.StringFixed(2), row[4])
		assert.Equal(t, baseline[i].RealValue.StringFixed(2), row[5])
		assert.Equal(t, growth[i].MonthlyContribution.StringFixed(2), row[6])
	}
}

func TestExportCSVIsStableAcrossCalls(t *testing.T) {
	engine := mustEngine(t, exportParams())

	var first, second bytes.Buffer
	require.NoError(t, engine.ExportCSV(&first))
	require.NoError(t, engine.ExportCSV(&second))
	assert.Equal(t, first.String(), second.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("destination unavailable")
}

func TestExportCSVSurfacesWriteFailure(t *testing.T) {
	engine := mustEngine(t, exportParams())
	err := engine.ExportCSV(failingWriter{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "destination unavailable")
}

func TestExportCSVFile(t *testing.T) {
	engine := mustEngine(t, exportParams())
	path := filepath.Join(t.TempDir(), "investment_simulation.csv")

	require.NoError(t, engine.ExportCSVFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("Year,Total_Contributions")))
}

func TestExportCSVFileBadDestination(t *testing.T) {
	engine := mustEngine(t, exportParams())
	err := engine.ExportCSVFile(filepath.Join(t.TempDir(), "missing", "out.csv"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "export destination")
}
