package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `
transactions:
  - name: Salary
    type: income
    amount: 3000
    date: 2025-06-01
    category: Salary
  - name: Netflix
    type: expense
    amount: 12.99
    date: 2025-01-03
    category: Subscriptions
    is_recurring: true
    frequency: monthly
accounts:
  - name: Checking
    type: bank
    balance: 5400.50
  - name: Visa
    type: credit
    balance: -430
    payment_day: 1
debts:
  - name: Car loan
    remaining_balance: 8000
    min_payment: 250
    due_date: "10"
budgets:
  - category: Groceries
    limit: 500
    period: monthly
retirement_plan:
  current_age: 35
  target_age: 65
  current_savings: 25000
  monthly_contribution: 500
  expected_return: 7
  inflation_rate: 2
  target_monthly_income: 2000
shopping_list:
  - name: Tomatoes
    quantity: 2
    unit: kg
    category: Vegetables
assumptions:
  as_of: 2025-06-15
  lookahead_days: 45
  currency: EUR
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_ParsesFullDataset(t *testing.T) {
	parser := NewInputParser()

	dataset, err := parser.LoadFromFile(writeDataset(t, sampleDataset))
	require.NoError(t, err)

	require.Len(t, dataset.Transactions, 2)
	assert.Equal(t, domain.TransactionIncome, dataset.Transactions[0].Type)
	assert.True(t, dataset.Transactions[0].Amount.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "2025-06-01", dataset.Transactions[0].Date.String())
	assert.True(t, dataset.Transactions[1].IsRecurring)
	assert.Equal(t, domain.FrequencyMonthly, dataset.Transactions[1].Frequency)

	require.Len(t, dataset.Accounts, 2)
	assert.Equal(t, domain.AccountCredit, dataset.Accounts[1].Type)
	assert.Equal(t, 1, dataset.Accounts[1].PaymentDay)

	require.Len(t, dataset.Debts, 1)
	assert.Equal(t, "10", dataset.Debts[0].DueDate)

	require.NotNil(t, dataset.RetirementPlan)
	assert.Equal(t, 65, dataset.RetirementPlan.TargetAge)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), dataset.AsOf())
	assert.Equal(t, 45, dataset.LookaheadDays())
	assert.Equal(t, "EUR", dataset.Assumptions.Currency)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDataset_Defaults(t *testing.T) {
	dataset := &Dataset{}

	assert.Equal(t, DefaultLookaheadDays, dataset.LookaheadDays())
	assert.False(t, dataset.AsOf().IsZero())
}

func TestValidateDataset_Failures(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*Dataset)
		message string
	}{
		{
			"negative amount",
			func(d *Dataset) { d.Transactions[0].Amount = decimal.NewFromInt(-5) },
			"amount must be non-negative",
		},
		{
			"unknown transaction type",
			func(d *Dataset) { d.Transactions[0].Type = "refund" },
			"unknown transaction type",
		},
		{
			"recurring without frequency",
			func(d *Dataset) {
				d.Transactions[0].IsRecurring = true
				d.Transactions[0].Frequency = ""
			},
			"valid frequency",
		},
		{
			"unknown account type",
			func(d *Dataset) { d.Accounts[0].Type = "crypto" },
			"unknown account type",
		},
		{
			"negative bank balance",
			func(d *Dataset) { d.Accounts[0].Balance = decimal.NewFromInt(-10) },
			"credit accounts",
		},
		{
			"payment day out of range",
			func(d *Dataset) { d.Accounts[0].PaymentDay = 32 },
			"payment day",
		},
		{
			"negative min payment",
			func(d *Dataset) { d.Debts[0].MinPayment = decimal.NewFromInt(-1) },
			"minimum payment",
		},
		{
			"non-positive budget limit",
			func(d *Dataset) { d.Budgets[0].Limit = decimal.Zero },
			"limit must be positive",
		},
		{
			"unordered plan ages",
			func(d *Dataset) { d.RetirementPlan.TargetAge = d.RetirementPlan.CurrentAge },
			"target age",
		},
		{
			"non-positive quantity",
			func(d *Dataset) { d.ShoppingList[0].Quantity = decimal.Zero },
			"quantity must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dataset, err := parser.LoadFromFile(writeDataset(t, sampleDataset))
			require.NoError(t, err)

			tc.mutate(dataset)
			err = parser.ValidateDataset(dataset)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}
