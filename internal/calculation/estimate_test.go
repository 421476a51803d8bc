package calculation

import (
	"testing"

	"github.com/rvillegas/finpulse/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(quantity float64, unit, category string) domain.ShoppingItem {
	return domain.ShoppingItem{
		Name:     category,
		Quantity: decimal.NewFromFloat(quantity),
		Unit:     unit,
		Category: category,
	}
}

func TestEstimate_CategoryRates(t *testing.T) {
	estimator := NewPriceEstimator()

	tests := []struct {
		item domain.ShoppingItem
		want string
	}{
		{item(2, "kg", "Vegetables"), "5.00"},
		{item(500, "g", "Dairy"), "0.90"},
		{item(1, "kg", "Meat"), "8.00"},
		{item(2, "l", "Beverages"), "3.00"},
		{item(3, "unit", "Unheard Of Category"), "6.00"},
	}

	for _, tc := range tests {
		got := estimator.Estimate(tc.item)
		assert.Equal(t, tc.want, got.StringFixed(2),
			"%s %s of %s", tc.item.Quantity, tc.item.Unit, tc.item.Category)
	}
}

func TestEstimate_UnitConversions(t *testing.T) {
	estimator := NewPriceEstimator()

	// 250 ml of beverages at 1.5/l.
	assert.Equal(t, "0.38", estimator.Estimate(item(250, "ml", "Beverages")).StringFixed(2))
	// Tablespoons convert to fractional kilograms.
	assert.Equal(t, "0.24", estimator.Estimate(item(2, "tablespoon", "Meat")).StringFixed(2))
	// Unknown units convert with factor 1.
	assert.Equal(t, "7.50", estimator.Estimate(item(3, "bag", "Vegetables")).StringFixed(2))
}

func TestEstimate_MinimumPriceFloor(t *testing.T) {
	estimator := NewPriceEstimator()

	got := estimator.Estimate(item(1, "g", "Vegetables"))
	assert.Equal(t, "0.10", got.StringFixed(2))
}

func TestEstimate_RecordedPriceShortCircuitsOnlyWhenPositive(t *testing.T) {
	estimator := NewPriceEstimator()

	recorded := decimal.NewFromFloat(4.20)
	withPrice := item(2, "kg", "Vegetables")
	withPrice.EstimatedPrice = &recorded
	assert.True(t, estimator.Estimate(withPrice).Equal(recorded))

	// A recorded zero means "not yet estimated" and recomputes fully.
	zero := decimal.Zero
	withZero := item(2, "kg", "Vegetables")
	withZero.EstimatedPrice = &zero
	assert.Equal(t, "5.00", estimator.Estimate(withZero).StringFixed(2))
}

func TestEstimateTotal_SumsAndRounds(t *testing.T) {
	estimator := NewPriceEstimator()

	items := []domain.ShoppingItem{
		item(2, "kg", "Vegetables"),  // 5.00
		item(500, "g", "Dairy"),      // 0.90
		item(250, "ml", "Beverages"), // 0.38
	}
	assert.Equal(t, "6.28", estimator.EstimateTotal(items).StringFixed(2))
}

func TestUpdateItemPrice_NeverMutatesInput(t *testing.T) {
	estimator := NewPriceEstimator()

	original := item(2, "kg", "Vegetables")
	price := decimal.NewFromFloat(9.99)

	updated := estimator.UpdateItemPrice(original, &price)
	require.NotNil(t, updated.EstimatedPrice)
	assert.True(t, updated.EstimatedPrice.Equal(price))
	assert.Nil(t, original.EstimatedPrice, "input item must stay untouched")

	// Without an explicit price, the computed estimate is recorded.
	computed := estimator.UpdateItemPrice(original, nil)
	require.NotNil(t, computed.EstimatedPrice)
	assert.Equal(t, "5.00", computed.EstimatedPrice.StringFixed(2))
	assert.Nil(t, original.EstimatedPrice)
}

func TestFormatPrice_CurrencyGlyphs(t *testing.T) {
	amount := decimal.NewFromFloat(3.5)

	assert.Equal(t, "3.50€", FormatPrice(amount, ""))
	assert.Equal(t, "3.50€", FormatPrice(amount, "EUR"))
	assert.Equal(t, "3.50$", FormatPrice(amount, "USD"))
	assert.Equal(t, "3.50£", FormatPrice(amount, "GBP"))
	assert.Equal(t, "3.50€", FormatPrice(amount, "JPY"))
}
