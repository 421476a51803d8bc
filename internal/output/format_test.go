package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayments() []domain.UpcomingPayment {
	return []domain.UpcomingPayment{
		{
			Name:         "Netflix",
			Amount:       decimal.NewFromFloat(12.99),
			DueDate:      time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
			Category:     "Subscriptions",
			Source:       domain.SourceRecurring,
			DaysUntilDue: 3,
		},
		{
			Name:         "Car loan",
			Amount:       decimal.NewFromInt(250),
			DueDate:      time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			Category:     "Debt",
			Source:       domain.SourceDebt,
			DaysUntilDue: 25,
		},
	}
}

func TestTableFormatter_FormatProjection(t *testing.T) {
	formatter := &TableFormatter{Currency: "EUR"}

	plan := domain.RetirementPlan{CurrentAge: 35, TargetAge: 65}
	projection := domain.RetirementProjection{
		TotalSavings:   decimal.NewFromInt(540000),
		MonthlyIncome:  decimal.NewFromInt(1800),
		YearsOfFunding: decimal.NewFromFloat(23.4),
	}
	out := formatter.FormatProjection(plan, projection, []string{"Review your plan annually."})

	assert.Contains(t, out, "RETIREMENT PROJECTION")
	assert.Contains(t, out, "age 35 to 65")
	assert.Contains(t, out, "540000.00€")
	assert.Contains(t, out, "23.4 years")
	assert.Contains(t, out, "Review your plan annually.")
}

func TestTableFormatter_FormatHealthReport(t *testing.T) {
	formatter := &TableFormatter{}

	report := domain.HealthReport{
		Score: 72,
		Level: domain.HealthGood,
		Breakdown: map[string]domain.FactorScore{
			domain.FactorSavingsRatio:  {Value: decimal.NewFromFloat(0.25), Score: 22},
			domain.FactorEmergencyFund: {Value: decimal.NewFromFloat(0.80), Score: 16},
		},
		Recommendations: []string{"Build an emergency fund covering six months of expenses."},
	}
	out := formatter.FormatHealthReport(report)

	assert.Contains(t, out, "72 / 100")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "Savings ratio")
	assert.Contains(t, out, "22 pts")
	assert.Contains(t, out, "emergency fund")
}

func TestTableFormatter_FormatPayments(t *testing.T) {
	formatter := &TableFormatter{Currency: "EUR"}
	payments := samplePayments()

	out := formatter.FormatPayments(payments, decimal.NewFromFloat(262.99),
		payments[:1], nil)

	assert.Contains(t, out, "UPCOMING PAYMENTS")
	assert.Contains(t, out, "Netflix")
	assert.Contains(t, out, "2025-06-18")
	assert.Contains(t, out, "262.99€")
	assert.Contains(t, out, "due within 3 days")
	assert.NotContains(t, out, "overdue")
}

func TestTableFormatter_FormatPaymentsEmpty(t *testing.T) {
	formatter := &TableFormatter{}

	out := formatter.FormatPayments(nil, decimal.Zero, nil, nil)
	assert.Contains(t, out, "No payments due")
}

func TestFormatFundingYears_SentinelCollapses(t *testing.T) {
	assert.Equal(t, "23.4 years", FormatFundingYears(decimal.NewFromFloat(23.4)))
	assert.Equal(t, "> 50 years", FormatFundingYears(decimal.NewFromInt(999)))
	assert.Equal(t, "> 50 years", FormatFundingYears(decimal.NewFromInt(50)))
}

func TestCSVFormatter_FormatPayments(t *testing.T) {
	formatter := &CSVFormatter{}

	out, err := formatter.FormatPayments(samplePayments())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Amount,Due Date,Category,Source,Days Until Due,Overdue", lines[0])
	assert.Equal(t, "Netflix,12.99,2025-06-18,Subscriptions,recurring,3,false", lines[1])
}

func TestCSVFormatter_FormatProjection(t *testing.T) {
	formatter := &CSVFormatter{}

	out, err := formatter.FormatProjection(domain.RetirementProjection{
		TotalSavings:   decimal.NewFromInt(540000),
		MonthlyIncome:  decimal.NewFromInt(1800),
		YearsOfFunding: decimal.NewFromFloat(23.4),
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "540000,1800,23.4", lines[1])
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &JSONFormatter{Pretty: true}

	out, err := formatter.Format(samplePayments())
	require.NoError(t, err)

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "Netflix", parsed[0]["name"])
}
