package output

import (
	"encoding/json"

	"github.com/investsim/investment-simulator/internal/domain"
)

// JSONFormatter serializes the projection report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
