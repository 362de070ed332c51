package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAssumption is wrapped by every validation failure so callers can
// classify input problems without string matching.
var ErrInvalidAssumption = errors.New("invalid assumption")

// SupportedMortgageTerms lists the mortgage terms (in years) the model accepts.
var SupportedMortgageTerms = []int{15, 30}

// ProjectionYears is the fixed simulation horizon. The comparison is always
// computed for years 1..ProjectionYears.
const ProjectionYears = 15

// MonthsPerYear is the amortization granularity within a simulated year.
const MonthsPerYear = 12

// Assumptions holds every scalar input to the rent-vs-own comparison.
// The record is read-only to the engine; all running state lives inside a
// single simulation run.
type Assumptions struct {
	// Purchase & loan
	PurchasePrice       decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	DownPaymentPercent  decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"` // fraction of price, 0..1
	MortgageRate        decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`               // annual, e.g. 0.0625
	MortgageTermYears   int             `yaml:"mortgage_term_years" json:"mortgage_term_years"`   // 15 or 30
	RenovationCost      decimal.Decimal `yaml:"renovation_cost" json:"renovation_cost"`
	RenoRecapturePct    decimal.Decimal `yaml:"reno_recapture_percent" json:"reno_recapture_percent"` // value added immediately, 0..1

	// Ongoing costs
	HOAMonthly      decimal.Decimal `yaml:"hoa_monthly" json:"hoa_monthly"`
	InsuranceRate   decimal.Decimal `yaml:"insurance_rate" json:"insurance_rate"`     // fraction of value per year
	MaintenanceRate decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate"` // fraction of value per year

	// Property tax (capped-assessment model)
	TaxRate            decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
	AssessedValuePct   decimal.Decimal `yaml:"assessed_value_percent" json:"assessed_value_percent"`
	HomesteadExemption decimal.Decimal `yaml:"homestead_exemption" json:"homestead_exemption"`
	TaxCapRate         decimal.Decimal `yaml:"tax_cap_rate" json:"tax_cap_rate"`

	// Market
	AppreciationRate decimal.Decimal `yaml:"appreciation_rate" json:"appreciation_rate"`
	InflationRate    decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	RentAppreciation decimal.Decimal `yaml:"rent_appreciation" json:"rent_appreciation"`
	CostOfCapital    decimal.Decimal `yaml:"cost_of_capital" json:"cost_of_capital"`

	// Rent & exit
	MonthlyRent     decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	SellingCostsPct decimal.Decimal `yaml:"selling_costs_percent" json:"selling_costs_percent"`
}

// DownPaymentDollars returns the cash portion of the purchase price.
func (a *Assumptions) DownPaymentDollars() decimal.Decimal {
	return a.PurchasePrice.Mul(a.DownPaymentPercent)
}

// LoanAmount returns the financed portion of the purchase price.
func (a *Assumptions) LoanAmount() decimal.Decimal {
	return a.PurchasePrice.Sub(a.DownPaymentDollars())
}

// InitialMarketValue is the home's day-one market value: purchase price plus
// the portion of the renovation spend that is immediately recaptured as value.
func (a *Assumptions) InitialMarketValue() decimal.Decimal {
	return a.PurchasePrice.Add(a.RenovationCost.Mul(a.RenoRecapturePct))
}

// InitialCashInvested is the owner's upfront outlay (down payment plus the
// full renovation cost). It seeds the renter's opportunity-cost portfolio.
func (a *Assumptions) InitialCashInvested() decimal.Decimal {
	return a.DownPaymentDollars().Add(a.RenovationCost)
}

// TaxableValueBase applies the homestead exemption and assessment ratio to the
// purchase price. Not clamped: an exemption larger than the price yields a
// negative base, and a negative initial tax bill.
func (a *Assumptions) TaxableValueBase() decimal.Decimal {
	return a.PurchasePrice.Sub(a.HomesteadExemption).Mul(a.AssessedValuePct)
}

// InitialTaxBill is the year-1 property tax bill derived from the taxable base.
func (a *Assumptions) InitialTaxBill() decimal.Decimal {
	return a.TaxableValueBase().Mul(a.TaxRate)
}

// MonthlyMortgageRate is the annual mortgage rate divided by 12.
func (a *Assumptions) MonthlyMortgageRate() decimal.Decimal {
	return a.MortgageRate.Div(decimal.NewFromInt(MonthsPerYear))
}

// TermMonths is the total number of amortization periods.
func (a *Assumptions) TermMonths() int {
	return a.MortgageTermYears * MonthsPerYear
}
