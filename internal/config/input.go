package config

import (
	"fmt"
	"os"

	"github.com/rvo/rentvsown-calculator/internal/calculation"
	"github.com/rvo/rentvsown-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of assumption files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads assumptions from a YAML file and validates them before
// they reach the engine.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Assumptions, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var assumptions domain.Assumptions
	if err := yaml.Unmarshal(data, &assumptions); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := calculation.ValidateAssumptions(&assumptions); err != nil {
		return nil, fmt.Errorf("assumption validation failed: %w", err)
	}

	return &assumptions, nil
}

// WriteExampleFile writes the example assumptions as YAML to the given path.
func (ip *InputParser) WriteExampleFile(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleAssumptions())
	if err != nil {
		return fmt.Errorf("failed to marshal example assumptions: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// CreateExampleAssumptions returns a fully-populated example record: a
// $550k purchase with 20% down on a 15-year 6.25% note, against $3,500
// equivalent rent.
func (ip *InputParser) CreateExampleAssumptions() *domain.Assumptions {
	return &domain.Assumptions{
		PurchasePrice:      decimal.NewFromInt(550000),
		DownPaymentPercent: decimal.NewFromFloat(0.20),
		MortgageRate:       decimal.NewFromFloat(0.0625),
		MortgageTermYears:  15,
		RenovationCost:     decimal.NewFromInt(50000),
		RenoRecapturePct:   decimal.NewFromFloat(0.80),

		HOAMonthly:      decimal.NewFromInt(700),
		InsuranceRate:   decimal.NewFromFloat(0.01),
		MaintenanceRate: decimal.NewFromFloat(0.01),

		TaxRate:            decimal.NewFromFloat(0.025),
		AssessedValuePct:   decimal.NewFromFloat(0.86),
		HomesteadExemption: decimal.NewFromInt(75000),
		TaxCapRate:         decimal.NewFromFloat(0.03),

		AppreciationRate: decimal.NewFromFloat(0.03),
		InflationRate:    decimal.NewFromFloat(0.03),
		RentAppreciation: decimal.NewFromFloat(0.03),
		CostOfCapital:    decimal.NewFromFloat(0.05),

		MonthlyRent:     decimal.NewFromInt(3500),
		SellingCostsPct: decimal.NewFromFloat(0.07),
	}
}
