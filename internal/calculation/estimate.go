package calculation

import (
	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
)

// minimumPrice floors every estimate so vanishingly small quantities still
// produce a visible amount.
var minimumPrice = decimal.NewFromFloat(0.10)

// defaultCategory is the rate applied to unrecognized categories.
const defaultCategory = "Other"

// categoryRates maps a shopping category to its price per base unit.
var categoryRates = map[string]decimal.Decimal{
	"Vegetables": decimal.NewFromFloat(2.5),
	"Fruits":     decimal.NewFromFloat(3.0),
	"Dairy":      decimal.NewFromFloat(1.8),
	"Meat":       decimal.NewFromFloat(8.0),
	"Fish":       decimal.NewFromFloat(9.5),
	"Bakery":     decimal.NewFromFloat(2.0),
	"Beverages":  decimal.NewFromFloat(1.5),
	"Pantry":     decimal.NewFromFloat(2.2),
	"Frozen":     decimal.NewFromFloat(3.5),
	"Household":  decimal.NewFromFloat(3.0),
	"Other":      decimal.NewFromFloat(2.0),
}

// unitFactors converts a quantity in the given unit to the category's base
// unit. Unrecognized units convert with factor 1.
var unitFactors = map[string]decimal.Decimal{
	"kg":         decimalOne,
	"g":          decimal.NewFromFloat(0.001),
	"l":          decimalOne,
	"ml":         decimal.NewFromFloat(0.001),
	"unit":       decimalOne,
	"tablespoon": decimal.NewFromFloat(0.015),
	"teaspoon":   decimal.NewFromFloat(0.005),
}

// PriceEstimator estimates shopping item costs from data-driven category
// and unit tables.
type PriceEstimator struct{}

// NewPriceEstimator creates a new estimator.
func NewPriceEstimator() *PriceEstimator {
	return &PriceEstimator{}
}

// Estimate returns the item's price. A recorded estimate above zero is
// returned as-is; a recorded zero means "not yet estimated" and triggers a
// full recomputation.
func (pe *PriceEstimator) Estimate(item domain.ShoppingItem) decimal.Decimal {
	if item.EstimatedPrice != nil && item.EstimatedPrice.GreaterThan(decimalZero) {
		return *item.EstimatedPrice
	}

	rate, ok := categoryRates[item.Category]
	if !ok {
		rate = categoryRates[defaultCategory]
	}

	factor, ok := unitFactors[item.Unit]
	if !ok {
		factor = decimalOne
	}

	price := item.Quantity.Mul(factor).Mul(rate)
	if price.LessThan(minimumPrice) {
		price = minimumPrice
	}
	return price.Round(2)
}

// EstimateTotal sums the estimates for a whole list.
func (pe *PriceEstimator) EstimateTotal(items []domain.ShoppingItem) decimal.Decimal {
	total := decimalZero
	for _, item := range items {
		total = total.Add(pe.Estimate(item))
	}
	return total.Round(2)
}

// UpdateItemPrice returns a copy of the item with its estimate set to the
// given price, or to the computed estimate when price is nil. The input
// item is never mutated.
func (pe *PriceEstimator) UpdateItemPrice(item domain.ShoppingItem, price *decimal.Decimal) domain.ShoppingItem {
	updated := item
	var value decimal.Decimal
	if price != nil {
		value = *price
	} else {
		value = pe.Estimate(item)
	}
	updated.EstimatedPrice = &value
	return updated
}

// FormatPrice renders an amount with two decimals and a trailing currency
// glyph. Unrecognized or empty currencies default to the euro.
func FormatPrice(amount decimal.Decimal, currency string) string {
	glyph := "€"
	switch currency {
	case "USD", "$":
		glyph = "$"
	case "GBP", "£":
		glyph = "£"
	}
	return amount.StringFixed(2) + glyph
}
