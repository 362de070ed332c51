package output

import (
	"encoding/json"

	"github.com/rvo/rentvsown-calculator/internal/domain"
)

// JSONFormatter serializes the comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.Comparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
