package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rvillegas/finpulse/internal/calculation"
	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/rvillegas/finpulse/internal/output"
)

// View renders the dashboard (required by tea.Model).
func (m Model) View() string {
	if m.err != nil {
		return AppStyle.Render(ErrorStyle.Render("Error: "+m.err.Error()) + "\n\nPress q to quit.")
	}
	if m.loading || m.dataset == nil {
		return AppStyle.Render("Loading dataset...")
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("finpulse") + "  " + m.renderTabs() + "\n\n")

	switch m.currentScene {
	case ScenePayments:
		sb.WriteString(m.renderPayments())
	case SceneRetirement:
		sb.WriteString(m.renderRetirement())
	default:
		sb.WriteString(m.renderOverview())
	}

	sb.WriteString("\n" + HelpStyle.Render("tab/1-3: switch view  •  q: quit"))
	return AppStyle.Render(sb.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(sceneTitles))
	for i, title := range sceneTitles {
		if Scene(i) == m.currentScene {
			tabs[i] = ActiveTabStyle.Render(title)
		} else {
			tabs[i] = TabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderOverview() string {
	currency := m.dataset.Assumptions.Currency

	scoreStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(calculation.ScoreColor(m.report.Score)))
	scoreCard := CardStyle.Render(fmt.Sprintf("%s\n%s  %s",
		LabelStyle.Render("Health score"),
		scoreStyle.Render(fmt.Sprintf("%d/100", m.report.Score)),
		calculation.LevelLabel(m.report.Level)))

	scheduler := calculation.NewUpcomingPaymentsScheduler()
	paymentsCard := CardStyle.Render(fmt.Sprintf("%s\n%s due in %d payment(s)",
		LabelStyle.Render("Upcoming"),
		calculation.FormatPrice(scheduler.Total(m.payments), currency),
		len(m.payments)))

	cards := lipgloss.JoinHorizontal(lipgloss.Top, scoreCard, paymentsCard)

	var sb strings.Builder
	sb.WriteString(cards + "\n\n")

	sb.WriteString(LabelStyle.Render("Breakdown") + "\n")
	for _, key := range []string{
		domain.FactorSavingsRatio,
		domain.FactorDebtRatio,
		domain.FactorEmergencyFund,
		domain.FactorBudgetCompliance,
		domain.FactorIncomeDiversification,
	} {
		fs, ok := m.report.Breakdown[key]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-24s %3d pts\n", key, fs.Score))
	}

	if len(m.report.Recommendations) > 0 {
		sb.WriteString("\n" + LabelStyle.Render("Recommendations") + "\n")
		for _, rec := range m.report.Recommendations {
			sb.WriteString("  * " + rec + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderPayments() string {
	var sb strings.Builder
	sb.WriteString(m.paymentsTable.View() + "\n")

	if len(m.urgent) > 0 {
		style := lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
		sb.WriteString(style.Render(fmt.Sprintf("%d payment(s) due within 3 days", len(m.urgent))) + "\n")
	}
	if len(m.overdue) > 0 {
		style := lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
		sb.WriteString(style.Render(fmt.Sprintf("%d payment(s) overdue", len(m.overdue))) + "\n")
	}
	return sb.String()
}

func (m Model) renderRetirement() string {
	if m.projection == nil {
		return "No retirement plan in this dataset.\n"
	}
	currency := m.dataset.Assumptions.Currency

	var sb strings.Builder
	sb.WriteString(CardStyle.Render(fmt.Sprintf("%s\n%s",
		LabelStyle.Render("Projected savings"),
		calculation.FormatPrice(m.projection.TotalSavings, currency))))
	sb.WriteString(CardStyle.Render(fmt.Sprintf("%s\n%s / month",
		LabelStyle.Render("Sustainable income"),
		calculation.FormatPrice(m.projection.MonthlyIncome, currency))))
	sb.WriteString(CardStyle.Render(fmt.Sprintf("%s\n%s",
		LabelStyle.Render("Funding horizon"),
		output.FormatFundingYears(m.projection.YearsOfFunding))))
	sb.WriteString("\n\n")

	for _, rec := range m.recommendations {
		sb.WriteString("  * " + rec + "\n")
	}
	return sb.String()
}
