package calculation

import (
	"fmt"

	"github.com/rvo/rentvsown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// milestoneYears are the projection years highlighted in summaries.
var milestoneYears = []int{5, 10, 15}

// ProjectionEngine computes the rent-vs-own wealth comparison. It is a pure
// function of its Assumptions input: no I/O, no state shared across runs,
// safe for concurrent use with independent inputs.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine's logger. A nil logger restores the no-op default.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunComparison validates the assumptions and simulates the full fixed
// horizon. Validation happens entirely up front: a failure returns before any
// projection year is computed, never a truncated sequence.
func (pe *ProjectionEngine) RunComparison(a *domain.Assumptions) (*domain.Comparison, error) {
	if err := ValidateAssumptions(a); err != nil {
		return nil, err
	}

	loan := NewLoanState(a)
	pe.Logger.Debugf("derived inputs: loan=%s monthly_pi=%s initial_value=%s cash_invested=%s tax_bill=%s",
		a.LoanAmount().StringFixed(2),
		loan.MonthlyPayment.StringFixed(2),
		a.InitialMarketValue().StringFixed(2),
		a.InitialCashInvested().StringFixed(2),
		a.InitialTaxBill().StringFixed(2))

	years := GenerateProjection(a)

	comparison := &domain.Comparison{
		Assumptions:         *a,
		LoanAmount:          a.LoanAmount(),
		MonthlyPI:           loan.MonthlyPayment,
		InitialMarketValue:  a.InitialMarketValue(),
		InitialCashInvested: a.InitialCashInvested(),
		InitialTaxBill:      a.InitialTaxBill(),
		Years:               years,
	}

	for _, y := range milestoneYears {
		yr := comparison.YearByIndex(y)
		if yr == nil {
			continue
		}
		comparison.Milestones = append(comparison.Milestones, domain.Milestone{
			Year:    y,
			Benefit: yr.Benefit,
			Winner:  yr.WinnerLabel(),
		})
		pe.Logger.Debugf("year %d: owner=%s renter=%s benefit=%s (%s)",
			y, yr.OwnerEquity.StringFixed(2), yr.RenterEquity.StringFixed(2),
			yr.Benefit.StringFixed(2), yr.WinnerLabel())
	}

	return comparison, nil
}

// ValidateAssumptions checks the input domain before any simulation begins.
// Every failure wraps domain.ErrInvalidAssumption.
func ValidateAssumptions(a *domain.Assumptions) error {
	one := decimal.NewFromInt(1)

	currency := []struct {
		name  string
		value decimal.Decimal
	}{
		{"purchase_price", a.PurchasePrice},
		{"renovation_cost", a.RenovationCost},
		{"hoa_monthly", a.HOAMonthly},
		{"monthly_rent", a.MonthlyRent},
		{"homestead_exemption", a.HomesteadExemption},
	}
	for _, c := range currency {
		if c.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidAssumption, c.name)
		}
	}

	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"mortgage_rate", a.MortgageRate},
		{"insurance_rate", a.InsuranceRate},
		{"maintenance_rate", a.MaintenanceRate},
		{"tax_rate", a.TaxRate},
		{"assessed_value_percent", a.AssessedValuePct},
		{"tax_cap_rate", a.TaxCapRate},
		{"appreciation_rate", a.AppreciationRate},
		{"inflation_rate", a.InflationRate},
		{"rent_appreciation", a.RentAppreciation},
		{"cost_of_capital", a.CostOfCapital},
		{"selling_costs_percent", a.SellingCostsPct},
	}
	for _, r := range rates {
		if r.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidAssumption, r.name)
		}
	}

	fractions := []struct {
		name  string
		value decimal.Decimal
	}{
		{"down_payment_percent", a.DownPaymentPercent},
		{"reno_recapture_percent", a.RenoRecapturePct},
	}
	for _, f := range fractions {
		if f.value.IsNegative() || f.value.GreaterThan(one) {
			return fmt.Errorf("%w: %s must be between 0 and 1", domain.ErrInvalidAssumption, f.name)
		}
	}

	if !supportedTerm(a.MortgageTermYears) {
		return fmt.Errorf("%w: mortgage_term_years must be one of %v, got %d",
			domain.ErrInvalidAssumption, domain.SupportedMortgageTerms, a.MortgageTermYears)
	}

	return nil
}

func supportedTerm(years int) bool {
	for _, t := range domain.SupportedMortgageTerms {
		if years == t {
			return true
		}
	}
	return false
}
