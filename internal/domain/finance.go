package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes cash inflows from outflows. The sign of the
// cash-flow effect is carried here, never by a negative Amount.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Frequency is the calendar cadence of a recurring transaction.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// AccountType classifies an account for liquidity and scheduling purposes.
type AccountType string

const (
	AccountBank       AccountType = "bank"
	AccountInvestment AccountType = "investment"
	AccountCash       AccountType = "cash"
	AccountCredit     AccountType = "credit"
)

// TransferCategory marks internal transfers between a user's own accounts.
// Transfers are balance-neutral and must be excluded from cash-flow ratios.
const TransferCategory = "Transferencia"

// Transaction represents a single income or expense movement.
// Amount is always non-negative; Type carries the direction.
type Transaction struct {
	ID          string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string          `yaml:"name" json:"name"`
	Type        TransactionType `yaml:"type" json:"type"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Date        Date            `yaml:"date" json:"date"`
	Category    string          `yaml:"category" json:"category"`
	SubCategory string          `yaml:"sub_category,omitempty" json:"subCategory,omitempty"`
	IsRecurring bool            `yaml:"is_recurring,omitempty" json:"isRecurring,omitempty"`
	Frequency   Frequency       `yaml:"frequency,omitempty" json:"frequency,omitempty"`
}

// IsTransfer reports whether the transaction is an internal transfer.
func (t Transaction) IsTransfer() bool {
	return t.Category == TransferCategory
}

// Account represents a money holding. Balance may be negative for credit
// accounts (carried revolving balance).
type Account struct {
	ID              string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name            string          `yaml:"name" json:"name"`
	Type            AccountType     `yaml:"type" json:"type"`
	Balance         decimal.Decimal `yaml:"balance" json:"balance"`
	PaymentDay      int             `yaml:"payment_day,omitempty" json:"paymentDay,omitempty"`
	LinkedAccountID string          `yaml:"linked_account_id,omitempty" json:"linkedAccountId,omitempty"`
}

// IsLiquid reports whether the account balance is available on demand
// (bank and cash accounts; investments and credit lines are not).
func (a Account) IsLiquid() bool {
	return a.Type == AccountBank || a.Type == AccountCash
}

// Debt represents an outstanding obligation with a fixed monthly due day.
// DueDate is the day of month ("1".."31") the minimum payment falls on.
type Debt struct {
	ID               string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name             string          `yaml:"name" json:"name"`
	RemainingBalance decimal.Decimal `yaml:"remaining_balance" json:"remainingBalance"`
	MinPayment       decimal.Decimal `yaml:"min_payment" json:"minPayment"`
	DueDate          string          `yaml:"due_date" json:"dueDate"`
}

// BudgetPeriod is the window a budget limit applies to.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
	BudgetCustom  BudgetPeriod = "custom"
)

// Budget caps spending for one category over a period.
type Budget struct {
	ID       string          `yaml:"id,omitempty" json:"id,omitempty"`
	Category string          `yaml:"category" json:"category"`
	Limit    decimal.Decimal `yaml:"limit" json:"limit"`
	Period   BudgetPeriod    `yaml:"period" json:"period"`
}
