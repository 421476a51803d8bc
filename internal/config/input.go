package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultLookaheadDays bounds the payment schedule when the dataset does
// not specify a window.
const DefaultLookaheadDays = 30

// Assumptions carries the evaluation parameters for a dataset.
type Assumptions struct {
	AsOf          domain.Date `yaml:"as_of" json:"asOf"`
	LookaheadDays int         `yaml:"lookahead_days" json:"lookaheadDays"`
	Currency      string      `yaml:"currency" json:"currency"`
}

// Dataset is the complete engine input: the financial records plus the
// plan and evaluation assumptions.
type Dataset struct {
	Transactions   []domain.Transaction   `yaml:"transactions" json:"transactions"`
	Accounts       []domain.Account       `yaml:"accounts" json:"accounts"`
	Debts          []domain.Debt          `yaml:"debts" json:"debts"`
	Budgets        []domain.Budget        `yaml:"budgets" json:"budgets"`
	RetirementPlan *domain.RetirementPlan `yaml:"retirement_plan,omitempty" json:"retirementPlan,omitempty"`
	ShoppingList   []domain.ShoppingItem  `yaml:"shopping_list" json:"shoppingList"`
	Assumptions    Assumptions            `yaml:"assumptions" json:"assumptions"`
}

// AsOf returns the evaluation date, defaulting to today when unset.
func (d *Dataset) AsOf() time.Time {
	if d.Assumptions.AsOf.IsZero() {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return d.Assumptions.AsOf.Time
}

// LookaheadDays returns the schedule window, defaulting when unset.
func (d *Dataset) LookaheadDays() int {
	if d.Assumptions.LookaheadDays <= 0 {
		return DefaultLookaheadDays
	}
	return d.Assumptions.LookaheadDays
}

// InputParser handles parsing of dataset files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a dataset from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Dataset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var dataset Dataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateDataset(&dataset); err != nil {
		return nil, fmt.Errorf("dataset validation failed: %w", err)
	}

	return &dataset, nil
}

// ValidateDataset validates the loaded dataset. The engine itself is total
// over its inputs; this boundary enforces the record-level invariants the
// engine assumes (non-negative amounts, ordered ages, known enums).
func (ip *InputParser) ValidateDataset(dataset *Dataset) error {
	for i, tx := range dataset.Transactions {
		if err := ip.validateTransaction(&tx); err != nil {
			return fmt.Errorf("transaction %d (%s): %w", i, tx.Name, err)
		}
	}
	for i, account := range dataset.Accounts {
		if err := ip.validateAccount(&account); err != nil {
			return fmt.Errorf("account %d (%s): %w", i, account.Name, err)
		}
	}
	for i, debt := range dataset.Debts {
		if err := ip.validateDebt(&debt); err != nil {
			return fmt.Errorf("debt %d (%s): %w", i, debt.Name, err)
		}
	}
	for i, budget := range dataset.Budgets {
		if err := ip.validateBudget(&budget); err != nil {
			return fmt.Errorf("budget %d (%s): %w", i, budget.Category, err)
		}
	}
	for i, item := range dataset.ShoppingList {
		if err := ip.validateShoppingItem(&item); err != nil {
			return fmt.Errorf("shopping item %d (%s): %w", i, item.Name, err)
		}
	}
	if dataset.RetirementPlan != nil {
		if err := ip.validateRetirementPlan(dataset.RetirementPlan); err != nil {
			return fmt.Errorf("retirement plan: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateTransaction(tx *domain.Transaction) error {
	switch tx.Type {
	case domain.TransactionIncome, domain.TransactionExpense:
	default:
		return fmt.Errorf("unknown transaction type %q", tx.Type)
	}
	if tx.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("amount must be non-negative, got %s", tx.Amount)
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if tx.IsRecurring {
		switch tx.Frequency {
		case domain.FrequencyWeekly, domain.FrequencyBiweekly, domain.FrequencyMonthly, domain.FrequencyYearly:
		default:
			return fmt.Errorf("recurring transaction needs a valid frequency, got %q", tx.Frequency)
		}
	}
	return nil
}

func (ip *InputParser) validateAccount(account *domain.Account) error {
	switch account.Type {
	case domain.AccountBank, domain.AccountInvestment, domain.AccountCash, domain.AccountCredit:
	default:
		return fmt.Errorf("unknown account type %q", account.Type)
	}
	if account.PaymentDay < 0 || account.PaymentDay > 31 {
		return fmt.Errorf("payment day must be within 1-31, got %d", account.PaymentDay)
	}
	if account.Balance.LessThan(decimal.Zero) && account.Type != domain.AccountCredit {
		return fmt.Errorf("only credit accounts may carry a negative balance")
	}
	return nil
}

func (ip *InputParser) validateDebt(debt *domain.Debt) error {
	if debt.RemainingBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("remaining balance must be non-negative, got %s", debt.RemainingBalance)
	}
	if debt.MinPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("minimum payment must be non-negative, got %s", debt.MinPayment)
	}
	return nil
}

func (ip *InputParser) validateBudget(budget *domain.Budget) error {
	if budget.Category == "" {
		return fmt.Errorf("category is required")
	}
	if budget.Limit.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("limit must be positive, got %s", budget.Limit)
	}
	switch budget.Period {
	case domain.BudgetMonthly, domain.BudgetYearly, domain.BudgetCustom:
	default:
		return fmt.Errorf("unknown budget period %q", budget.Period)
	}
	return nil
}

func (ip *InputParser) validateShoppingItem(item *domain.ShoppingItem) error {
	if item.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("quantity must be positive, got %s", item.Quantity)
	}
	return nil
}

func (ip *InputParser) validateRetirementPlan(plan *domain.RetirementPlan) error {
	if plan.TargetAge <= plan.CurrentAge {
		return fmt.Errorf("target age (%d) must be greater than current age (%d)", plan.TargetAge, plan.CurrentAge)
	}
	if plan.CurrentSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("current savings must be non-negative, got %s", plan.CurrentSavings)
	}
	if plan.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly contribution must be non-negative, got %s", plan.MonthlyContribution)
	}
	if plan.TargetMonthlyIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("target monthly income must be non-negative, got %s", plan.TargetMonthlyIncome)
	}
	return nil
}
