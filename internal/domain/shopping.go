package domain

import (
	"github.com/shopspring/decimal"
)

// ShoppingItem is one line of a shopping list. EstimatedPrice is nil until
// an estimate has been recorded; a recorded zero means "not yet estimated"
// and is recomputed on demand.
type ShoppingItem struct {
	ID             string           `yaml:"id,omitempty" json:"id,omitempty"`
	Name           string           `yaml:"name" json:"name"`
	Quantity       decimal.Decimal  `yaml:"quantity" json:"quantity"`
	Unit           string           `yaml:"unit" json:"unit"`
	Category       string           `yaml:"category" json:"category"`
	EstimatedPrice *decimal.Decimal `yaml:"estimated_price,omitempty" json:"estimatedPrice,omitempty"`
}
