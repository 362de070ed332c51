package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rvo/rentvsown-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw annual projection, one row per year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "OwnerEquity", "RenterEquity", "NetBenefit", "OwnerWins"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range results.Years {
		row := []string{
			intToString(yr.Year),
			yr.OwnerEquity.StringFixed(2),
			yr.RenterEquity.StringFixed(2),
			yr.Benefit.StringFixed(2),
			boolToString(yr.OwnerWins()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
