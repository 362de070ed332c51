package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvo/rentvsown-calculator/internal/domain"
)

func TestValidateAssumptionsAcceptsExample(t *testing.T) {
	assert.NoError(t, ValidateAssumptions(exampleAssumptions()))
}

func TestValidateAssumptionsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Assumptions)
	}{
		{"negative price", func(a *domain.Assumptions) { a.PurchasePrice = decimal.NewFromInt(-1) }},
		{"negative rent", func(a *domain.Assumptions) { a.MonthlyRent = decimal.NewFromInt(-100) }},
		{"negative mortgage rate", func(a *domain.Assumptions) { a.MortgageRate = decimal.NewFromFloat(-0.01) }},
		{"down payment above one", func(a *domain.Assumptions) { a.DownPaymentPercent = decimal.NewFromFloat(1.5) }},
		{"negative recapture", func(a *domain.Assumptions) { a.RenoRecapturePct = decimal.NewFromFloat(-0.2) }},
		{"unsupported term", func(a *domain.Assumptions) { a.MortgageTermYears = 20 }},
		{"zero term", func(a *domain.Assumptions) { a.MortgageTermYears = 0 }},
		{"negative hoa", func(a *domain.Assumptions) { a.HOAMonthly = decimal.NewFromInt(-700) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := exampleAssumptions()
			tc.mutate(a)
			err := ValidateAssumptions(a)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidAssumption), "error should wrap ErrInvalidAssumption: %v", err)
		})
	}
}

func TestRunComparisonRejectsBeforeSimulating(t *testing.T) {
	a := exampleAssumptions()
	a.MortgageTermYears = 20

	engine := NewProjectionEngine()
	comparison, err := engine.RunComparison(a)
	require.Error(t, err)
	assert.Nil(t, comparison, "a validation failure must not produce partial results")
}

func TestRunComparisonMilestones(t *testing.T) {
	engine := NewProjectionEngine()
	comparison, err := engine.RunComparison(exampleAssumptions())
	require.NoError(t, err)

	require.Len(t, comparison.Milestones, 3)
	for i, wantYear := range []int{5, 10, 15} {
		m := comparison.Milestones[i]
		assert.Equal(t, wantYear, m.Year)

		yr := comparison.YearByIndex(wantYear)
		require.NotNil(t, yr)
		assert.True(t, m.Benefit.Equal(yr.Benefit))
		if yr.Benefit.GreaterThan(decimal.Zero) {
			assert.Equal(t, "Owner Wins", m.Winner)
		} else {
			assert.Equal(t, "Renter Wins", m.Winner)
		}
	}
}

func TestWinnerLabelTieGoesToRenter(t *testing.T) {
	yr := domain.YearResult{Year: 1}
	assert.False(t, yr.OwnerWins())
	assert.Equal(t, "Renter Wins", yr.WinnerLabel())
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	engine := NewProjectionEngine()
	engine.SetLogger(nil)
	require.NotNil(t, engine.Logger)
	_, err := engine.RunComparison(exampleAssumptions())
	assert.NoError(t, err)
}
