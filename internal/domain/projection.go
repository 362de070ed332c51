package domain

import (
	"github.com/shopspring/decimal"
)

// YearResult is one row of the comparison: end-of-year wealth positions for
// the owner and the renter, and the gap between them.
type YearResult struct {
	Year         int             `json:"year"`
	OwnerEquity  decimal.Decimal `json:"owner_equity"`
	RenterEquity decimal.Decimal `json:"renter_equity"`
	Benefit      decimal.Decimal `json:"net_benefit_of_owning"`
}

// OwnerWins reports whether owning is ahead in this year. A zero benefit is a
// renter win: the label tracks the strict benefit > 0 comparison.
func (yr *YearResult) OwnerWins() bool {
	return yr.Benefit.GreaterThan(decimal.Zero)
}

// WinnerLabel returns the display label for this year's leader.
func (yr *YearResult) WinnerLabel() string {
	if yr.OwnerWins() {
		return "Owner Wins"
	}
	return "Renter Wins"
}

// Milestone is a highlighted projection year (year 5, 10, 15) with its
// winner label precomputed for display.
type Milestone struct {
	Year    int             `json:"year"`
	Benefit decimal.Decimal `json:"benefit"`
	Winner  string          `json:"winner"`
}

// Comparison is the engine's full output: the chronological YearResult
// sequence plus the derived scalars presentation layers display on their own.
type Comparison struct {
	Assumptions Assumptions `json:"assumptions"`

	// Derived at simulation start.
	LoanAmount          decimal.Decimal `json:"loan_amount"`
	MonthlyPI           decimal.Decimal `json:"monthly_pi"`
	InitialMarketValue  decimal.Decimal `json:"initial_market_value"`
	InitialCashInvested decimal.Decimal `json:"initial_cash_invested"`
	InitialTaxBill      decimal.Decimal `json:"initial_tax_bill"`

	// One entry per simulated year, chronological, years 1..ProjectionYears.
	Years []YearResult `json:"years"`

	Milestones []Milestone `json:"milestones"`
}

// YearByIndex returns the result for a 1-based year, or nil when the year is
// outside the projection.
func (c *Comparison) YearByIndex(year int) *YearResult {
	if year < 1 || year > len(c.Years) {
		return nil
	}
	return &c.Years[year-1]
}

// FinalYear returns the last projected year, or nil for an empty projection.
func (c *Comparison) FinalYear() *YearResult {
	if len(c.Years) == 0 {
		return nil
	}
	return &c.Years[len(c.Years)-1]
}
