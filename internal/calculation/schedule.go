package calculation

import (
	"sort"
	"strconv"
	"time"

	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
)

// urgentWindowDays is the horizon for the Urgent view.
const urgentWindowDays = 3

// UpcomingPaymentsScheduler expands recurring expenses, debts and revolving
// credit balances into concrete payment events inside a lookahead window.
type UpcomingPaymentsScheduler struct{}

// NewUpcomingPaymentsScheduler creates a new scheduler.
func NewUpcomingPaymentsScheduler() *UpcomingPaymentsScheduler {
	return &UpcomingPaymentsScheduler{}
}

// Schedule builds the payment list as of the given date. Every returned
// item's due date is on or after asOf (next occurrences are rolled forward,
// never back), and the list is sorted ascending by due date.
func (sc *UpcomingPaymentsScheduler) Schedule(transactions []domain.Transaction, debts []domain.Debt, accounts []domain.Account, lookaheadDays int, asOf time.Time) []domain.UpcomingPayment {
	today := truncateToDay(asOf)
	payments := make([]domain.UpcomingPayment, 0, len(transactions)+len(debts)+len(accounts))

	for _, tx := range transactions {
		if tx.Type != domain.TransactionExpense || !tx.IsRecurring {
			continue
		}
		due, ok := nextOccurrence(tx.Date.Time, tx.Frequency, today)
		if !ok {
			continue
		}
		payments = append(payments, newPayment(tx.Name, tx.Amount, due, tx.Category, domain.SourceRecurring, today))
	}

	for _, debt := range debts {
		if debt.MinPayment.LessThanOrEqual(decimalZero) {
			continue
		}
		day, ok := parseDayOfMonth(debt.DueDate)
		if !ok {
			continue
		}
		due := nextMonthlyDay(day, today)
		payments = append(payments, newPayment(debt.Name, debt.MinPayment, due, "Debt", domain.SourceDebt, today))
	}

	for _, account := range accounts {
		if account.Type != domain.AccountCredit || account.Balance.IsZero() {
			continue
		}
		day := account.PaymentDay
		if day < 1 {
			day = 1
		}
		due := nextMonthlyDay(day, today)
		payments = append(payments, newPayment(account.Name, account.Balance.Abs(), due, "Credit Card", domain.SourceCreditCard, today))
	}

	filtered := payments[:0]
	horizon := today.AddDate(0, 0, lookaheadDays)
	for _, p := range payments {
		if p.DueDate.After(horizon) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DueDate.Before(filtered[j].DueDate)
	})
	return filtered
}

// Total sums the amounts of a payment list.
func (sc *UpcomingPaymentsScheduler) Total(payments []domain.UpcomingPayment) decimal.Decimal {
	total := decimalZero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Urgent returns the non-overdue payments due within three days.
func (sc *UpcomingPaymentsScheduler) Urgent(payments []domain.UpcomingPayment) []domain.UpcomingPayment {
	urgent := make([]domain.UpcomingPayment, 0, len(payments))
	for _, p := range payments {
		if !p.IsOverdue && p.DaysUntilDue <= urgentWindowDays {
			urgent = append(urgent, p)
		}
	}
	return urgent
}

// Overdue returns the payments whose due date has already passed.
func (sc *UpcomingPaymentsScheduler) Overdue(payments []domain.UpcomingPayment) []domain.UpcomingPayment {
	overdue := make([]domain.UpcomingPayment, 0)
	for _, p := range payments {
		if p.IsOverdue {
			overdue = append(overdue, p)
		}
	}
	return overdue
}

func newPayment(name string, amount decimal.Decimal, due time.Time, category string, source domain.PaymentSource, today time.Time) domain.UpcomingPayment {
	days := daysBetween(today, due)
	return domain.UpcomingPayment{
		Name:         name,
		Amount:       amount,
		DueDate:      due,
		Category:     category,
		Source:       source,
		DaysUntilDue: days,
		IsOverdue:    days < 0,
	}
}

// nextOccurrence rolls a recurring anchor date forward by its frequency
// until it lands on or after the reference date. Monthly and yearly steps
// keep the anchor's day of month, clamping to the last day of shorter
// months (a Jan 31 anchor recurs on Feb 28, then Mar 31).
func nextOccurrence(anchor time.Time, frequency domain.Frequency, today time.Time) (time.Time, bool) {
	anchor = truncateToDay(anchor)
	if anchor.IsZero() {
		return time.Time{}, false
	}

	switch frequency {
	case domain.FrequencyWeekly, domain.FrequencyBiweekly:
		step := 7
		if frequency == domain.FrequencyBiweekly {
			step = 14
		}
		next := anchor
		if next.Before(today) {
			gap := daysBetween(next, today)
			next = next.AddDate(0, 0, (gap/step)*step)
			for next.Before(today) {
				next = next.AddDate(0, 0, step)
			}
		}
		return next, true
	case domain.FrequencyMonthly:
		for k := 0; ; k++ {
			next := addMonthsClamped(anchor, k)
			if !next.Before(today) {
				return next, true
			}
		}
	case domain.FrequencyYearly:
		for k := 0; ; k++ {
			next := addMonthsClamped(anchor, k*12)
			if !next.Before(today) {
				return next, true
			}
		}
	default:
		return time.Time{}, false
	}
}

// nextMonthlyDay finds the first occurrence of a day-of-month on or after
// the reference date, clamped to the month's length.
func nextMonthlyDay(day int, today time.Time) time.Time {
	candidate := dayInMonth(today.Year(), today.Month(), day)
	if candidate.Before(today) {
		next := today.AddDate(0, 1, 0)
		candidate = dayInMonth(next.Year(), next.Month(), day)
	}
	return candidate
}

// addMonthsClamped adds whole months to a date while preserving the
// anchor's day of month, clamping when the target month is shorter.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	year := anchor.Year()
	month := int(anchor.Month()) + months
	year += (month - 1) / 12
	month = (month-1)%12 + 1
	return dayInMonth(year, time.Month(month), anchor.Day())
}

func dayInMonth(year int, month time.Month, day int) time.Time {
	last := daysInMonth(year, month)
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func parseDayOfMonth(value string) (int, bool) {
	day, err := strconv.Atoi(value)
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
