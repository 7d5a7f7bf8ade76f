package output

import (
	"encoding/json"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// JSONFormatter marshals the full projection result, parameters included.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
