package integration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/investsim/investment-simulator/internal/calculation"
	"github.com/investsim/investment-simulator/internal/config"
	"github.com/investsim/investment-simulator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullProjectionPipeline(t *testing.T) {
	parser := config.NewInputParser()
	params, err := parser.LoadFromFile("../testdata/example_params.yaml")
	require.NoError(t, err)

	engine, err := calculation.NewProjectionEngine(*params)
	require.NoError(t, err)

	report := engine.Report()
	require.Len(t, report.Growth, 30)
	require.Len(t, report.Baseline, 30)

	// A 7% return over 30 years has to leave the plan well above both the
	// contributions and the savings baseline.
	assert.True(t, report.Summary.FinalNominalValue.GreaterThan(report.Summary.TotalContributions))
	assert.True(t, report.Summary.FinalNominalValue.GreaterThan(report.Summary.NoInvestmentFinal))
	assert.True(t, report.Summary.Withdrawal.Annual.GreaterThan(decimal.Zero))

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		path := filepath.Join(dir, "report."+format)
		written, err := output.WriteReport(report, format, path)
		require.NoError(t, err, "format %s", format)

		info, err := os.Stat(written)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), "format %s wrote an empty file", format)
	}
}

func TestEngineExportMatchesCSVFormatter(t *testing.T) {
	params := config.DefaultParameters()
	params.Years = 8

	engine, err := calculation.NewProjectionEngine(params)
	require.NoError(t, err)

	exportPath := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, engine.ExportCSVFile(exportPath))

	exported, err := os.ReadFile(exportPath)
	require.NoError(t, err)

	formatted, err := output.CSVFormatter{}.Format(engine.Report())
	require.NoError(t, err)

	assert.Equal(t, string(formatted), string(exported))

	records, err := csv.NewReader(strings.NewReader(string(exported))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 9) // header + 8 years
}
