package domain

import (
	"github.com/shopspring/decimal"
)

// HealthLevel buckets a composite score into a coarse rating.
type HealthLevel string

const (
	HealthExcellent HealthLevel = "excellent"
	HealthGood      HealthLevel = "good"
	HealthFair      HealthLevel = "fair"
	HealthPoor      HealthLevel = "poor"
)

// Factor names used as HealthReport breakdown keys.
const (
	FactorSavingsRatio          = "savingsRatio"
	FactorDebtRatio             = "debtRatio"
	FactorEmergencyFund         = "emergencyFund"
	FactorBudgetCompliance      = "budgetCompliance"
	FactorIncomeDiversification = "incomeDiversification"
)

// FactorScore is one sub-factor's raw value and the points it earned.
type FactorScore struct {
	Value decimal.Decimal `json:"value"`
	Score int             `json:"score"`
}

// HealthReport is the composite financial health assessment.
// Score is clamped to [0,100]; Recommendations holds at most three entries
// ordered by severity.
type HealthReport struct {
	Score           int                    `json:"score"`
	Level           HealthLevel            `json:"level"`
	Breakdown       map[string]FactorScore `json:"breakdown"`
	Recommendations []string               `json:"recommendations"`
}
