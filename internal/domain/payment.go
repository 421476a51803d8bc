package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSource identifies which kind of obligation produced a payment.
type PaymentSource string

const (
	SourceRecurring  PaymentSource = "recurring"
	SourceDebt       PaymentSource = "debt"
	SourceCreditCard PaymentSource = "credit_card"
)

// UpcomingPayment is one concrete payment event inside the lookahead window.
// DaysUntilDue is signed relative to the scheduling reference date.
type UpcomingPayment struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"dueDate"`
	Category     string          `json:"category"`
	Source       PaymentSource   `json:"source"`
	DaysUntilDue int             `json:"daysUntilDue"`
	IsOverdue    bool            `json:"isOverdue"`
}
