package domain

import (
	"github.com/shopspring/decimal"
)

// RetirementPlan carries the savings and return assumptions for a projection.
// ExpectedReturn and InflationRate are annual percentages (7 means 7%).
// Callers guarantee TargetAge > CurrentAge and non-negative amounts.
type RetirementPlan struct {
	CurrentAge          int             `yaml:"current_age" json:"currentAge"`
	TargetAge           int             `yaml:"target_age" json:"targetAge"`
	CurrentSavings      decimal.Decimal `yaml:"current_savings" json:"currentSavings"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution"`
	ExpectedReturn      decimal.Decimal `yaml:"expected_return" json:"expectedReturn"`
	InflationRate       decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`
	TargetMonthlyIncome decimal.Decimal `yaml:"target_monthly_income" json:"targetMonthlyIncome"`
}

// RetirementProjection is the inflation-adjusted outcome of a plan.
// TotalSavings and MonthlyIncome are rounded to whole currency units;
// YearsOfFunding carries one decimal place.
type RetirementProjection struct {
	TotalSavings   decimal.Decimal `json:"totalSavings"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	YearsOfFunding decimal.Decimal `json:"yearsOfFunding"`
}
