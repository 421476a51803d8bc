package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvillegas/finpulse/internal/calculation"
	"github.com/rvillegas/finpulse/internal/config"
	"github.com/rvillegas/finpulse/internal/domain"
)

// Scene identifies the active dashboard tab.
type Scene int

const (
	SceneOverview Scene = iota
	ScenePayments
	SceneRetirement
)

var sceneTitles = []string{"Overview", "Payments", "Retirement"}

// Model represents the dashboard state.
type Model struct {
	currentScene Scene

	width  int
	height int

	datasetPath string
	dataset     *config.Dataset

	report          domain.HealthReport
	payments        []domain.UpcomingPayment
	urgent          []domain.UpcomingPayment
	overdue         []domain.UpcomingPayment
	projection      *domain.RetirementProjection
	recommendations []string

	paymentsTable table.Model

	err     error
	loading bool
}

// NewModel creates the dashboard model for a dataset file.
func NewModel(datasetPath string) Model {
	return Model{
		currentScene: SceneOverview,
		datasetPath:  datasetPath,
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init kicks off dataset loading (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadDatasetCmd(m.datasetPath)
}

// loadDatasetCmd loads and evaluates the dataset off the update loop.
func loadDatasetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		dataset, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return DatasetLoadedMsg{Dataset: dataset}
	}
}

// evaluate runs all four engines over the loaded dataset.
func (m *Model) evaluate() {
	dataset := m.dataset
	asOf := dataset.AsOf()

	scorer := calculation.NewFinancialHealthScorer()
	m.report = scorer.Score(dataset.Transactions, dataset.Accounts, dataset.Debts, dataset.Budgets, asOf)

	scheduler := calculation.NewUpcomingPaymentsScheduler()
	m.payments = scheduler.Schedule(dataset.Transactions, dataset.Debts, dataset.Accounts, dataset.LookaheadDays(), asOf)
	m.urgent = scheduler.Urgent(m.payments)
	m.overdue = scheduler.Overdue(m.payments)

	if dataset.RetirementPlan != nil {
		projector := calculation.NewRetirementProjector()
		projection := projector.Project(*dataset.RetirementPlan)
		m.projection = &projection
		m.recommendations = projector.Recommend(projection, dataset.RetirementPlan.TargetMonthlyIncome)
	}

	m.paymentsTable = newPaymentsTable(m.payments, dataset.Assumptions.Currency, m.height)
}

func newPaymentsTable(payments []domain.UpcomingPayment, currency string, height int) table.Model {
	columns := []table.Column{
		{Title: "Due", Width: 12},
		{Title: "Name", Width: 24},
		{Title: "Amount", Width: 12},
		{Title: "Source", Width: 12},
		{Title: "Days", Width: 6},
	}

	rows := make([]table.Row, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, table.Row{
			p.DueDate.Format("2006-01-02"),
			p.Name,
			calculation.FormatPrice(p.Amount, currency),
			string(p.Source),
			strconv.Itoa(p.DaysUntilDue),
		})
	}

	tableHeight := height - 8
	if tableHeight < 4 {
		tableHeight = 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	t.SetStyles(paymentsTableStyles())
	return t
}
