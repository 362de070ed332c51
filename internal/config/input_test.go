package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvo/rentvsown-calculator/internal/domain"
)

const validYAML = `
purchase_price: 550000
down_payment_percent: 0.20
mortgage_rate: 0.0625
mortgage_term_years: 15
renovation_cost: 50000
reno_recapture_percent: 0.80
hoa_monthly: 700
insurance_rate: 0.01
maintenance_rate: 0.01
tax_rate: 0.025
assessed_value_percent: 0.86
homestead_exemption: 75000
tax_cap_rate: 0.03
appreciation_rate: 0.03
inflation_rate: 0.03
rent_appreciation: 0.03
cost_of_capital: 0.05
monthly_rent: 3500
selling_costs_percent: 0.07
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	a, err := parser.LoadFromFile(writeTempConfig(t, validYAML))
	require.NoError(t, err)

	assert.True(t, a.PurchasePrice.Equal(decimal.NewFromInt(550000)))
	assert.True(t, a.DownPaymentPercent.Equal(decimal.NewFromFloat(0.20)))
	assert.Equal(t, 15, a.MortgageTermYears)
	assert.True(t, a.MonthlyRent.Equal(decimal.NewFromInt(3500)))
	assert.True(t, a.SellingCostsPct.Equal(decimal.NewFromFloat(0.07)))
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileBadYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempConfig(t, "purchase_price: [not scalar"))
	assert.Error(t, err)
}

func TestLoadFromFileInvalidAssumptions(t *testing.T) {
	parser := NewInputParser()
	bad := strings.Replace(validYAML, "mortgage_term_years: 15", "mortgage_term_years: 20", 1)
	_, err := parser.LoadFromFile(writeTempConfig(t, bad))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidAssumption))
}

func TestCreateExampleAssumptionsIsValid(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleAssumptions()

	// The example must round-trip through the same validation the engine uses.
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.WriteExampleFile(path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.PurchasePrice.Equal(example.PurchasePrice))
	assert.True(t, loaded.MortgageRate.Equal(example.MortgageRate))
	assert.Equal(t, example.MortgageTermYears, loaded.MortgageTermYears)
	assert.True(t, loaded.CostOfCapital.Equal(example.CostOfCapital))
}
