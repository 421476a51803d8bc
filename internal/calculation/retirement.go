package calculation

import (
	"fmt"
	"math"

	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalZero    = decimal.Zero
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// ForeverFundingMonths caps the drawdown solve when the balance never
// depletes. Kept numeric rather than a tagged variant so callers can
// compare and format it like any other duration.
const ForeverFundingMonths = 999 * 12

// RetirementProjector projects accumulated capital and drawdown duration
// from a plan's savings, contribution and return assumptions. All amounts
// are expressed in today's purchasing power via the Fisher relation.
type RetirementProjector struct{}

// NewRetirementProjector creates a new projector.
func NewRetirementProjector() *RetirementProjector {
	return &RetirementProjector{}
}

// Project computes the projection for a plan. Total for every plan with
// TargetAge > CurrentAge; degenerate numeric cases resolve to documented
// sentinels instead of errors.
func (rp *RetirementProjector) Project(plan domain.RetirementPlan) domain.RetirementProjection {
	months := (plan.TargetAge - plan.CurrentAge) * 12
	if months < 0 {
		months = 0
	}

	realMonthly := realMonthlyRate(plan.ExpectedReturn, plan.InflationRate)
	growth := onePlus(realMonthly).Pow(decimal.NewFromInt(int64(months)))

	total := plan.CurrentSavings.Mul(growth)
	total = total.Add(annuityFutureValue(plan.MonthlyContribution, realMonthly, growth, months))

	fundingMonths := drawdownMonths(total, plan.TargetMonthlyIncome, realMonthly)

	// Sustainable income follows the 4% rule, independent of the drawdown
	// solve: it answers what could be drawn without depleting principal.
	monthlyIncome := total.Mul(decimal.NewFromFloat(0.04)).Div(decimalTwelve)

	return domain.RetirementProjection{
		TotalSavings:   total.Round(0),
		MonthlyIncome:  monthlyIncome.Round(0),
		YearsOfFunding: decimal.NewFromFloat(fundingMonths).Div(decimalTwelve).Round(1),
	}
}

// realMonthlyRate converts an annual nominal return percentage into a
// monthly rate in constant purchasing power: (1+nominal)/(1+inflation) - 1,
// divided by twelve.
func realMonthlyRate(expectedReturn, inflationRate decimal.Decimal) decimal.Decimal {
	nominal := expectedReturn.Div(decimalHundred)
	inflation := inflationRate.Div(decimalHundred)
	realAnnual := onePlus(nominal).Div(onePlus(inflation)).Sub(decimalOne)
	return realAnnual.Div(decimalTwelve)
}

// annuityFutureValue is the ordinary-annuity future value of a level
// monthly contribution: PMT * ((1+r)^n - 1) / r, or PMT * n when r is zero.
func annuityFutureValue(payment, rate, growth decimal.Decimal, months int) decimal.Decimal {
	if payment.LessThanOrEqual(decimalZero) || months <= 0 {
		return decimalZero
	}
	if rate.IsZero() {
		return payment.Mul(decimal.NewFromInt(int64(months)))
	}
	return payment.Mul(growth.Sub(decimalOne)).Div(rate)
}

// drawdownMonths solves for how many months a level withdrawal can be
// sustained while the remaining balance keeps earning the monthly rate
// (NPER inversion): -ln(1 - total*r/target) / ln(1+r).
func drawdownMonths(total, targetMonthly, rate decimal.Decimal) float64 {
	if total.LessThanOrEqual(decimalZero) {
		return 0
	}
	if targetMonthly.LessThanOrEqual(decimalZero) {
		return ForeverFundingMonths
	}
	if rate.IsZero() {
		months := total.Div(targetMonthly).InexactFloat64()
		return capMonths(months)
	}

	// Interest alone covers the withdrawal: the principal never depletes.
	if total.Mul(rate).GreaterThanOrEqual(targetMonthly) {
		return ForeverFundingMonths
	}

	r := rate.InexactFloat64()
	arg := 1 - total.Mul(rate).Div(targetMonthly).InexactFloat64()
	if arg <= 0 || 1+r <= 0 {
		return ForeverFundingMonths
	}

	months := -math.Log(arg) / math.Log(1+r)
	if math.IsNaN(months) || math.IsInf(months, 0) || months < 0 {
		return 0
	}
	return capMonths(months)
}

func capMonths(months float64) float64 {
	if months > ForeverFundingMonths {
		return ForeverFundingMonths
	}
	return months
}

// Recommend builds the advisory messages for a projection against the
// plan's target monthly income.
func (rp *RetirementProjector) Recommend(projection domain.RetirementProjection, targetMonthlyIncome decimal.Decimal) []string {
	recommendations := make([]string, 0, 3)

	thirtyYears := decimal.NewFromInt(30)
	if projection.YearsOfFunding.GreaterThanOrEqual(thirtyYears) {
		recommendations = append(recommendations,
			"Your projected savings comfortably cover your target retirement income.")
	} else {
		recommendations = append(recommendations,
			fmt.Sprintf("At your target income, savings would last about %s years of retirement.",
				projection.YearsOfFunding.StringFixed(1)))
		if targetMonthlyIncome.GreaterThan(projection.MonthlyIncome) {
			gap := targetMonthlyIncome.Sub(projection.MonthlyIncome)
			recommendations = append(recommendations,
				fmt.Sprintf("Your target income exceeds the sustainable withdrawal by %s per month; consider raising your monthly contribution.",
					gap.StringFixed(2)))
		}
	}

	recommendations = append(recommendations,
		"Review your plan annually and adjust contributions to market conditions.")
	return recommendations
}

func onePlus(value decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(value)
}
