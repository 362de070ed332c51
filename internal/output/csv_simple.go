package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rvo/rentvsown-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per milestone year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "OwnerEquity", "RenterEquity", "NetBenefit", "Winner"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range results.Milestones {
		yr := results.YearByIndex(m.Year)
		if yr == nil {
			continue
		}
		row := []string{
			intToString(m.Year),
			yr.OwnerEquity.StringFixed(2),
			yr.RenterEquity.StringFixed(2),
			m.Benefit.StringFixed(2),
			m.Winner,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
