package pescados

import (
	"fmt"
	"strings"
)

// NotFoundLabel is displayed in place of the name of a deleted product.
const NotFoundLabel = "Produto não encontrado"

// Product is an entry of the catalog.
type Product struct {
	ID               ID     `json:"id"`
	Name             string `json:"name"`
	DefaultBuyPrice  Money  `json:"defaultBuyPrice"`  // per kg
	DefaultSellPrice Money  `json:"defaultSellPrice"` // per kg
}

// NewProduct creates a product with a fresh id.
func NewProduct(name string, buy, sell Money) Product {
	return Product{ID: NewID(), Name: strings.TrimSpace(name), DefaultBuyPrice: buy, DefaultSellPrice: sell}
}

// Validate checks the product fields.
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: product id is missing", ErrInvalid)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is missing", ErrInvalid)
	}
	if p.DefaultBuyPrice.IsNegative() {
		return fmt.Errorf("%w: default buy price must not be negative, got %s", ErrInvalid, p.DefaultBuyPrice)
	}
	if p.DefaultSellPrice.IsNegative() {
		return fmt.Errorf("%w: default sell price must not be negative, got %s", ErrInvalid, p.DefaultSellPrice)
	}
	return nil
}

// DefaultPrice returns the price per kg suggested for a transaction of that kind.
func (p Product) DefaultPrice(k Kind) Money {
	if k == Sale {
		return p.DefaultSellPrice
	}
	return p.DefaultBuyPrice
}

// ShortName returns the first word of the product name.
func (p Product) ShortName() string { return firstWord(p.Name) }

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
