package output

import (
	"bytes"
	"fmt"

	"github.com/rvo/rentvsown-calculator/internal/domain"
)

// ConsoleFormatter renders the comparison as a plain-text report: derived
// inputs, the milestone "who wins" metrics, and the full year-by-year table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RENT VS. OWN ANALYSIS")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Loan Amount:           %s\n", FormatCurrency(results.LoanAmount))
	fmt.Fprintf(&buf, "Monthly P&I:           %s\n", FormatCurrency(results.MonthlyPI))
	fmt.Fprintf(&buf, "Initial Market Value:  %s\n", FormatCurrency(results.InitialMarketValue))
	fmt.Fprintf(&buf, "Initial Cash Invested: %s\n", FormatCurrency(results.InitialCashInvested))
	fmt.Fprintf(&buf, "Initial Tax Bill:      %s\n", FormatCurrency(results.InitialTaxBill))
	fmt.Fprintln(&buf)

	for _, m := range results.Milestones {
		fmt.Fprintf(&buf, "Year %2d Benefit: %s (%s)\n", m.Year, FormatCurrency(m.Benefit), m.Winner)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-5s %18s %18s %22s\n", "Year", "Owner Wealth", "Renter Wealth", "Net Benefit of Owning")
	for _, yr := range results.Years {
		fmt.Fprintf(&buf, "%-5d %18s %18s %22s\n",
			yr.Year,
			FormatCurrency(yr.OwnerEquity),
			FormatCurrency(yr.RenterEquity),
			FormatCurrency(yr.Benefit),
		)
	}
	return buf.Bytes(), nil
}
