package calculation

import (
	"github.com/rvo/rentvsown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// LoanState tracks a fixed-rate mortgage through the simulation. Payment and
// monthly rate are derived once; only the balance changes, and it never goes
// negative.
type LoanState struct {
	Balance        decimal.Decimal
	MonthlyPayment decimal.Decimal
	MonthlyRate    decimal.Decimal
}

// NewLoanState derives the loan's starting state from the assumptions.
func NewLoanState(a *domain.Assumptions) LoanState {
	return LoanState{
		Balance:        a.LoanAmount(),
		MonthlyPayment: MonthlyPayment(a.LoanAmount(), a.MonthlyMortgageRate(), a.TermMonths()),
		MonthlyRate:    a.MonthlyMortgageRate(),
	}
}

// MonthlyPayment computes the fixed payment M that retires principal over n
// equal periods at monthly rate r, via the standard annuity formula
//
//	M = r*principal / (1 - (1+r)^-n)
//
// For a zero rate the annuity degenerates to principal/n.
func MonthlyPayment(principal, monthlyRate decimal.Decimal, periods int) decimal.Decimal {
	n := decimal.NewFromInt(int64(periods))
	if monthlyRate.IsZero() {
		return principal.Div(n)
	}
	onePlusR := decimal.NewFromInt(1).Add(monthlyRate)
	// (1+r)^-n computed as a reciprocal to stay on integer-exponent Pow.
	discount := decimal.NewFromInt(1).Div(onePlusR.Pow(n))
	return monthlyRate.Mul(principal).Div(decimal.NewFromInt(1).Sub(discount))
}

// MonthResult is the interest/principal split of one scheduled payment.
type MonthResult struct {
	Interest  decimal.Decimal
	Principal decimal.Decimal
}

// AmortizeMonth applies one payment to the balance. Once the balance reaches
// zero no further interest accrues and the state is unchanged.
func (ls *LoanState) AmortizeMonth() MonthResult {
	if ls.Balance.LessThanOrEqual(decimal.Zero) {
		ls.Balance = decimal.Zero
		return MonthResult{}
	}
	interest := ls.Balance.Mul(ls.MonthlyRate)
	principal := ls.MonthlyPayment.Sub(interest)
	ls.Balance = ls.Balance.Sub(principal)
	if ls.Balance.IsNegative() {
		ls.Balance = decimal.Zero
	}
	return MonthResult{Interest: interest, Principal: principal}
}

// AmortizeYear runs twelve scheduled payments and returns the year's combined
// interest and principal totals.
func (ls *LoanState) AmortizeYear() (interestPaid, principalPaid decimal.Decimal) {
	for m := 0; m < domain.MonthsPerYear; m++ {
		month := ls.AmortizeMonth()
		interestPaid = interestPaid.Add(month.Interest)
		principalPaid = principalPaid.Add(month.Principal)
	}
	return interestPaid, principalPaid
}

// AnnualPayment is the owner's yearly principal-and-interest outlay. The same
// fixed amount is charged every simulated year even after payoff; the model
// deliberately does not stop payments at a mid-horizon payoff.
func (ls *LoanState) AnnualPayment() decimal.Decimal {
	return ls.MonthlyPayment.Mul(decimal.NewFromInt(domain.MonthsPerYear))
}
