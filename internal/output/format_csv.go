package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rvillegas/finpulse/internal/domain"
)

// CSVFormatter formats engine results as CSV.
type CSVFormatter struct{}

// FormatProjection generates CSV output for a retirement projection.
func (cf *CSVFormatter) FormatProjection(projection domain.RetirementProjection) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write([]string{"Total Savings", "Monthly Income", "Years Of Funding"}); err != nil {
		return "", err
	}
	row := []string{
		projection.TotalSavings.StringFixed(0),
		projection.MonthlyIncome.StringFixed(0),
		projection.YearsOfFunding.StringFixed(1),
	}
	if err := writer.Write(row); err != nil {
		return "", err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FormatPayments generates CSV output for a payment schedule.
func (cf *CSVFormatter) FormatPayments(payments []domain.UpcomingPayment) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Name", "Amount", "Due Date", "Category", "Source", "Days Until Due", "Overdue"}
	if err := writer.Write(header); err != nil {
		return "", err
	}
	for _, p := range payments {
		row := []string{
			p.Name,
			p.Amount.StringFixed(2),
			p.DueDate.Format("2006-01-02"),
			p.Category,
			string(p.Source),
			strconv.Itoa(p.DaysUntilDue),
			strconv.FormatBool(p.IsOverdue),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
