package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rvillegas/finpulse/internal/calculation"
	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter renders engine results as console tables.
type TableFormatter struct {
	Currency string
}

const reportWidth = 72

func rule(char string) string {
	return strings.Repeat(char, reportWidth) + "\n"
}

// FormatProjection renders a retirement projection with its recommendations.
func (tf *TableFormatter) FormatProjection(plan domain.RetirementPlan, projection domain.RetirementProjection, recommendations []string) string {
	var sb strings.Builder

	sb.WriteString("RETIREMENT PROJECTION\n")
	sb.WriteString(rule("="))
	sb.WriteString(fmt.Sprintf("Horizon: age %d to %d (%d years)\n",
		plan.CurrentAge, plan.TargetAge, plan.TargetAge-plan.CurrentAge))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-36s %s\n", "Projected savings (today's money):",
		tf.money(projection.TotalSavings)))
	sb.WriteString(fmt.Sprintf("%-36s %s\n", "Sustainable monthly income (4%):",
		tf.money(projection.MonthlyIncome)))
	sb.WriteString(fmt.Sprintf("%-36s %s\n", "Target income funded for:",
		FormatFundingYears(projection.YearsOfFunding)))
	sb.WriteString(rule("-"))

	for _, rec := range recommendations {
		sb.WriteString("  * " + rec + "\n")
	}
	return sb.String()
}

// FormatHealthReport renders the health score, colored breakdown and
// recommendations.
func (tf *TableFormatter) FormatHealthReport(report domain.HealthReport) string {
	var sb strings.Builder

	sb.WriteString("FINANCIAL HEALTH\n")
	sb.WriteString(rule("="))

	scoreStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(calculation.ScoreColor(report.Score)))
	sb.WriteString(fmt.Sprintf("Score: %s  (%s)\n",
		scoreStyle.Render(fmt.Sprintf("%d / 100", report.Score)),
		calculation.LevelLabel(report.Level)))
	sb.WriteString("\n")

	factors := []struct {
		key   string
		label string
	}{
		{domain.FactorSavingsRatio, "Savings ratio"},
		{domain.FactorDebtRatio, "Debt ratio"},
		{domain.FactorEmergencyFund, "Emergency fund"},
		{domain.FactorBudgetCompliance, "Budget compliance"},
		{domain.FactorIncomeDiversification, "Income sources"},
	}
	for _, f := range factors {
		fs, ok := report.Breakdown[f.key]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-22s %8s %10s\n",
			f.label, fs.Value.StringFixed(2), fmt.Sprintf("%d pts", fs.Score)))
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString(rule("-"))
		for _, rec := range report.Recommendations {
			sb.WriteString("  * " + rec + "\n")
		}
	}
	return sb.String()
}

// FormatPayments renders the schedule with urgent and overdue sections and
// the total amount due inside the window.
func (tf *TableFormatter) FormatPayments(payments []domain.UpcomingPayment, total decimal.Decimal, urgent, overdue []domain.UpcomingPayment) string {
	var sb strings.Builder

	sb.WriteString("UPCOMING PAYMENTS\n")
	sb.WriteString(rule("="))

	if len(payments) == 0 {
		sb.WriteString("No payments due inside the lookahead window.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%-24s %12s %-12s %-12s %6s\n",
		"Name", "Amount", "Due", "Source", "Days"))
	sb.WriteString(rule("-"))
	for _, p := range payments {
		sb.WriteString(fmt.Sprintf("%-24s %12s %-12s %-12s %6d\n",
			truncate(p.Name, 24), tf.money(p.Amount),
			p.DueDate.Format("2006-01-02"), string(p.Source), p.DaysUntilDue))
	}
	sb.WriteString(rule("-"))
	sb.WriteString(fmt.Sprintf("%-24s %12s\n", "Total", tf.money(total)))

	if len(urgent) > 0 {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d97706"))
		sb.WriteString("\n" + style.Render(fmt.Sprintf("%d payment(s) due within 3 days", len(urgent))) + "\n")
	}
	if len(overdue) > 0 {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626"))
		sb.WriteString(style.Render(fmt.Sprintf("%d payment(s) overdue", len(overdue))) + "\n")
	}
	return sb.String()
}

// FormatShoppingList renders per-item estimates and the list total.
func (tf *TableFormatter) FormatShoppingList(items []domain.ShoppingItem, estimates []decimal.Decimal, total decimal.Decimal) string {
	var sb strings.Builder

	sb.WriteString("SHOPPING LIST ESTIMATE\n")
	sb.WriteString(rule("="))
	sb.WriteString(fmt.Sprintf("%-24s %10s %-6s %-12s %10s\n",
		"Item", "Qty", "Unit", "Category", "Price"))
	sb.WriteString(rule("-"))
	for i, item := range items {
		price := decimal.Zero
		if i < len(estimates) {
			price = estimates[i]
		}
		sb.WriteString(fmt.Sprintf("%-24s %10s %-6s %-12s %10s\n",
			truncate(item.Name, 24), item.Quantity.String(), item.Unit,
			truncate(item.Category, 12), tf.money(price)))
	}
	sb.WriteString(rule("-"))
	sb.WriteString(fmt.Sprintf("%-24s %46s\n", "Total", tf.money(total)))
	return sb.String()
}

func (tf *TableFormatter) money(amount decimal.Decimal) string {
	return calculation.FormatPrice(amount, tf.Currency)
}

// FormatFundingYears renders a drawdown duration, collapsing the capped
// sentinel into an open-ended display value.
func FormatFundingYears(years decimal.Decimal) string {
	if years.GreaterThanOrEqual(decimal.NewFromInt(50)) {
		return "> 50 years"
	}
	return years.StringFixed(1) + " years"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
