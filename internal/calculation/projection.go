package calculation

import (
	"github.com/rvo/rentvsown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// simulationState carries every running total across a year boundary. One
// instance is owned by one simulation run; nothing is shared between runs.
type simulationState struct {
	HomeValue       decimal.Decimal
	MonthlyRent     decimal.Decimal
	MonthlyHOA      decimal.Decimal
	Maintenance     decimal.Decimal // annual, inflation-escalated from the initial value baseline
	Insurance       decimal.Decimal // annual, same baseline
	TaxBill         decimal.Decimal
	Loan            LoanState
	RenterPortfolio decimal.Decimal
}

// newSimulationState seeds the run from the assumptions. Maintenance and
// insurance are derived once from the initial market value; after year 1 they
// track inflation, not the appreciated home value.
func newSimulationState(a *domain.Assumptions) simulationState {
	initialValue := a.InitialMarketValue()
	return simulationState{
		HomeValue:       initialValue,
		MonthlyRent:     a.MonthlyRent,
		MonthlyHOA:      a.HOAMonthly,
		Maintenance:     initialValue.Mul(a.MaintenanceRate),
		Insurance:       initialValue.Mul(a.InsuranceRate),
		TaxBill:         a.InitialTaxBill(),
		Loan:            NewLoanState(a),
		RenterPortfolio: a.InitialCashInvested(),
	}
}

// escalate applies the annual growth rules for the given 1-based year, before
// that year's cash flows. The home appreciates every year including year 1;
// rent, HOA, maintenance, insurance and the tax bill stay at their initial
// values for year 1 and grow from year 2 on. The tax bill grows by the lesser
// of inflation and the assessment cap.
func (s simulationState) escalate(a *domain.Assumptions, year int) simulationState {
	one := decimal.NewFromInt(1)
	s.HomeValue = s.HomeValue.Mul(one.Add(a.AppreciationRate))
	if year > 1 {
		s.MonthlyRent = s.MonthlyRent.Mul(one.Add(a.RentAppreciation))
		s.MonthlyHOA = s.MonthlyHOA.Mul(one.Add(a.InflationRate))
		s.Maintenance = s.Maintenance.Mul(one.Add(a.InflationRate))
		s.Insurance = s.Insurance.Mul(one.Add(a.InflationRate))

		taxGrowth := decimal.Min(a.InflationRate, a.TaxCapRate)
		s.TaxBill = s.TaxBill.Mul(one.Add(taxGrowth))
	}
	return s
}

// projectYear advances the simulation by one year and produces that year's
// result. The state is threaded through by value: callers keep the returned
// state for the next year.
func projectYear(s simulationState, a *domain.Assumptions, year int) (simulationState, domain.YearResult) {
	s = s.escalate(a, year)

	months := decimal.NewFromInt(domain.MonthsPerYear)
	ownerSpend := s.Loan.AnnualPayment().
		Add(s.MonthlyHOA.Mul(months)).
		Add(s.TaxBill).
		Add(s.Maintenance).
		Add(s.Insurance)
	renterSpend := s.MonthlyRent.Mul(months)

	// When the owner spends more, the renter invests the difference; when the
	// renter spends more, the shortfall is withdrawn from the portfolio.
	cashFlowDiff := ownerSpend.Sub(renterSpend)

	// Return applies to the prior balance; the year's contribution lands at
	// year end (single annual compounding point).
	s.RenterPortfolio = s.RenterPortfolio.
		Mul(decimal.NewFromInt(1).Add(a.CostOfCapital)).
		Add(cashFlowDiff)

	s.Loan.AmortizeYear()

	sellingCosts := s.HomeValue.Mul(a.SellingCostsPct)
	ownerEquity := s.HomeValue.Sub(sellingCosts).Sub(s.Loan.Balance)
	renterEquity := s.RenterPortfolio

	return s, domain.YearResult{
		Year:         year,
		OwnerEquity:  ownerEquity,
		RenterEquity: renterEquity,
		Benefit:      ownerEquity.Sub(renterEquity),
	}
}

// GenerateProjection runs the full fixed-horizon simulation and returns the
// chronological YearResult sequence.
func GenerateProjection(a *domain.Assumptions) []domain.YearResult {
	years := make([]domain.YearResult, domain.ProjectionYears)
	state := newSimulationState(a)
	for year := 1; year <= domain.ProjectionYears; year++ {
		state, years[year-1] = projectYear(state, a, year)
	}
	return years
}
