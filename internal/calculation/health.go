package calculation

import (
	"sort"
	"time"

	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
)

// Sub-factor weights; they sum to 100.
const (
	weightSavingsRatio    = 30
	weightEmergencyFund   = 20
	weightDebtRatio       = 15
	weightBudgets         = 15
	weightDiversification = 10

	// Points granted when no budgets exist yet.
	noBudgetsScore = 5

	emergencyFundTargetMonths = 6
	maxRecommendations        = 3
)

// Health score level cutpoints.
var (
	levelExcellentMin = 80
	levelGoodMin      = 60
	levelFairMin      = 40
)

// FinancialHealthScorer aggregates transactions, accounts, debts and budgets
// into a 0-100 composite score with a per-factor breakdown. The scoring
// window is the calendar month containing the reference date.
type FinancialHealthScorer struct{}

// NewFinancialHealthScorer creates a new scorer.
func NewFinancialHealthScorer() *FinancialHealthScorer {
	return &FinancialHealthScorer{}
}

type recommendation struct {
	message  string
	severity int
}

// Score computes the health report as of the given date. Total function:
// zero income, zero balances and empty inputs all resolve to defined bands.
func (hs *FinancialHealthScorer) Score(transactions []domain.Transaction, accounts []domain.Account, debts []domain.Debt, budgets []domain.Budget, asOf time.Time) domain.HealthReport {
	window := monthWindow(asOf)

	income, expense := cashFlowTotals(transactions, window)

	breakdown := make(map[string]domain.FactorScore, 5)
	candidates := make([]recommendation, 0, 4)

	savings := scoreSavingsRatio(income, expense)
	breakdown[domain.FactorSavingsRatio] = savings
	if savings.Score < weightSavingsRatio/2 {
		candidates = append(candidates, recommendation{
			message:  "Your savings rate is low; aim to keep at least 10-20% of monthly income.",
			severity: weightSavingsRatio - savings.Score,
		})
	}

	debt := scoreDebtRatio(accounts, debts)
	breakdown[domain.FactorDebtRatio] = debt
	if debt.Score < weightDebtRatio/2 {
		candidates = append(candidates, recommendation{
			message:  "Debt is high relative to your net worth; prioritize paying it down.",
			severity: weightDebtRatio - debt.Score,
		})
	}

	emergency := scoreEmergencyFund(accounts, expense)
	breakdown[domain.FactorEmergencyFund] = emergency
	if emergency.Score < weightEmergencyFund/2 {
		candidates = append(candidates, recommendation{
			message:  "Build an emergency fund covering six months of expenses in liquid accounts.",
			severity: weightEmergencyFund - emergency.Score,
		})
	}

	compliance := scoreBudgetCompliance(transactions, budgets, asOf)
	breakdown[domain.FactorBudgetCompliance] = compliance
	if len(budgets) == 0 {
		candidates = append(candidates, recommendation{
			message:  "Create budgets for your main spending categories to keep limits visible.",
			severity: weightBudgets - compliance.Score,
		})
	} else if compliance.Score < weightBudgets/2 {
		candidates = append(candidates, recommendation{
			message:  "Several budgets are over their limit this period; review category spending.",
			severity: weightBudgets - compliance.Score,
		})
	}

	diversification := scoreIncomeDiversification(transactions, window)
	breakdown[domain.FactorIncomeDiversification] = diversification

	total := savings.Score + debt.Score + emergency.Score + compliance.Score + diversification.Score
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return domain.HealthReport{
		Score:           total,
		Level:           levelForScore(total),
		Breakdown:       breakdown,
		Recommendations: topRecommendations(candidates),
	}
}

type dateWindow struct {
	start time.Time
	end   time.Time // exclusive
}

func (w dateWindow) contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

func monthWindow(asOf time.Time) dateWindow {
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	return dateWindow{start: start, end: start.AddDate(0, 1, 0)}
}

func yearWindow(asOf time.Time) dateWindow {
	start := time.Date(asOf.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	return dateWindow{start: start, end: start.AddDate(1, 0, 0)}
}

// cashFlowTotals sums income and expense inside the window, skipping
// internal transfers so they cannot distort the ratios.
func cashFlowTotals(transactions []domain.Transaction, window dateWindow) (income, expense decimal.Decimal) {
	income, expense = decimalZero, decimalZero
	for _, tx := range transactions {
		if tx.IsTransfer() || !window.contains(tx.Date.Time) {
			continue
		}
		switch tx.Type {
		case domain.TransactionIncome:
			income = income.Add(tx.Amount)
		case domain.TransactionExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense
}

func scoreSavingsRatio(income, expense decimal.Decimal) domain.FactorScore {
	if income.LessThanOrEqual(decimalZero) {
		return domain.FactorScore{Value: decimalZero, Score: 0}
	}
	ratio := income.Sub(expense).Div(income)

	score := 0
	switch {
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(0.30)):
		score = 30
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(0.20)):
		score = 22
	case ratio.GreaterThanOrEqual(decimal.NewFromFloat(0.10)):
		score = 15
	case ratio.GreaterThan(decimalZero):
		score = 8
	}
	return domain.FactorScore{Value: ratio, Score: score}
}

func scoreDebtRatio(accounts []domain.Account, debts []domain.Debt) domain.FactorScore {
	totalDebt := decimalZero
	for _, d := range debts {
		totalDebt = totalDebt.Add(d.RemainingBalance)
	}
	if totalDebt.LessThanOrEqual(decimalZero) {
		return domain.FactorScore{Value: decimalZero, Score: weightDebtRatio}
	}

	netWorth := decimalZero
	for _, a := range accounts {
		netWorth = netWorth.Add(a.Balance)
	}
	netWorth = netWorth.Sub(totalDebt)
	if netWorth.LessThanOrEqual(decimalZero) {
		// Insolvent; worst band, and no ratio can be formed.
		return domain.FactorScore{Value: decimalOne, Score: 0}
	}

	ratio := totalDebt.Div(netWorth)
	score := 0
	switch {
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.20)):
		score = 15
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.35)):
		score = 11
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.50)):
		score = 7
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.75)):
		score = 3
	}
	return domain.FactorScore{Value: ratio, Score: score}
}

func scoreEmergencyFund(accounts []domain.Account, monthlyExpenses decimal.Decimal) domain.FactorScore {
	liquid := decimalZero
	for _, a := range accounts {
		if a.IsLiquid() {
			liquid = liquid.Add(a.Balance)
		}
	}

	if monthlyExpenses.LessThanOrEqual(decimalZero) {
		// No recorded expenses; any liquid balance counts as full coverage.
		if liquid.GreaterThan(decimalZero) {
			return domain.FactorScore{Value: decimalOne, Score: weightEmergencyFund}
		}
		return domain.FactorScore{Value: decimalZero, Score: 0}
	}

	target := monthlyExpenses.Mul(decimal.NewFromInt(emergencyFundTargetMonths))
	value := liquid.Div(target)
	if value.GreaterThan(decimalOne) {
		value = decimalOne
	}
	if value.LessThan(decimalZero) {
		value = decimalZero
	}
	score := int(value.Mul(decimal.NewFromInt(weightEmergencyFund)).Round(0).IntPart())
	return domain.FactorScore{Value: value, Score: score}
}

func scoreBudgetCompliance(transactions []domain.Transaction, budgets []domain.Budget, asOf time.Time) domain.FactorScore {
	if len(budgets) == 0 {
		return domain.FactorScore{Value: decimalZero, Score: noBudgetsScore}
	}

	within := 0
	for _, b := range budgets {
		window := monthWindow(asOf)
		if b.Period == domain.BudgetYearly {
			window = yearWindow(asOf)
		}
		spent := categorySpend(transactions, b.Category, window)
		if spent.LessThanOrEqual(b.Limit) {
			within++
		}
	}

	fraction := decimal.NewFromInt(int64(within)).Div(decimal.NewFromInt(int64(len(budgets))))
	score := int(fraction.Mul(decimal.NewFromInt(weightBudgets)).Round(0).IntPart())
	return domain.FactorScore{Value: fraction, Score: score}
}

func categorySpend(transactions []domain.Transaction, category string, window dateWindow) decimal.Decimal {
	total := decimalZero
	for _, tx := range transactions {
		if tx.Type != domain.TransactionExpense || tx.IsTransfer() {
			continue
		}
		if tx.Category != category || !window.contains(tx.Date.Time) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

func scoreIncomeDiversification(transactions []domain.Transaction, window dateWindow) domain.FactorScore {
	categories := make(map[string]struct{})
	for _, tx := range transactions {
		if tx.Type != domain.TransactionIncome || tx.IsTransfer() {
			continue
		}
		if !window.contains(tx.Date.Time) {
			continue
		}
		categories[tx.Category] = struct{}{}
	}

	count := len(categories)
	score := 0
	switch {
	case count >= 3:
		score = 10
	case count == 2:
		score = 7
	case count == 1:
		score = 4
	}
	return domain.FactorScore{Value: decimal.NewFromInt(int64(count)), Score: score}
}

func levelForScore(score int) domain.HealthLevel {
	switch {
	case score >= levelExcellentMin:
		return domain.HealthExcellent
	case score >= levelGoodMin:
		return domain.HealthGood
	case score >= levelFairMin:
		return domain.HealthFair
	default:
		return domain.HealthPoor
	}
}

func topRecommendations(candidates []recommendation) []string {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].severity > candidates[j].severity
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	messages := make([]string, 0, len(candidates))
	for _, c := range candidates {
		messages = append(messages, c.message)
	}
	return messages
}

// ScoreColor maps a composite score to its display color band.
func ScoreColor(score int) string {
	switch {
	case score >= levelExcellentMin:
		return "#16a34a"
	case score >= levelGoodMin:
		return "#2563eb"
	case score >= levelFairMin:
		return "#d97706"
	default:
		return "#dc2626"
	}
}

// LevelLabel maps a health level to its display string. Unknown inputs map
// to an explicit fallback instead of failing.
func LevelLabel(level domain.HealthLevel) string {
	switch level {
	case domain.HealthExcellent:
		return "Excellent"
	case domain.HealthGood:
		return "Good"
	case domain.HealthFair:
		return "Fair"
	case domain.HealthPoor:
		return "Needs Improvement"
	default:
		return "Unknown"
	}
}
