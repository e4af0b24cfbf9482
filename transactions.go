package pescados

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/pescados/date"
)

// Kind tells whether a transaction is a purchase or a sale.
type Kind string

// Transaction kinds, as persisted.
const (
	Purchase Kind = "purchase"
	Sale     Kind = "sale"
)

// ParseKind parses a transaction kind, including the shop's portuguese names.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "purchase", "buy", "compra":
		return Purchase, nil
	case "sale", "sell", "venda":
		return Sale, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction kind %q", ErrInvalid, s)
	}
}

// Transaction is an immutable purchase or sale of some weight of a product.
type Transaction struct {
	ID        ID
	Product   ID // weak reference, the product may have been deleted since.
	Kind      Kind
	Weight    Weight
	UnitPrice Money // per kg
	// Total is Weight × UnitPrice computed when the transaction was created. It is
	// the figure used by every aggregation and is never recomputed.
	Total Money
	Date  date.Date
	Memo  string
}

// NewTransaction creates a transaction with a fresh id and computes its total value.
func NewTransaction(on date.Date, product ID, kind Kind, weight Weight, unitPrice Money, memo string) Transaction {
	return Transaction{
		ID:        NewID(),
		Product:   product,
		Kind:      kind,
		Weight:    weight,
		UnitPrice: unitPrice,
		Total:     unitPrice.Mul(weight),
		Date:      on,
		Memo:      strings.TrimSpace(memo),
	}
}

// Validate checks the transaction fields.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: transaction id is missing", ErrInvalid)
	}
	if t.Product == "" {
		return fmt.Errorf("%w: transaction product is missing", ErrInvalid)
	}
	if t.Kind != Purchase && t.Kind != Sale {
		return fmt.Errorf("%w: unknown transaction kind %q", ErrInvalid, t.Kind)
	}
	if !t.Weight.IsPositive() {
		return fmt.Errorf("%w: weight must be positive, got %s", ErrInvalid, t.Weight)
	}
	if t.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price must not be negative, got %s", ErrInvalid, t.UnitPrice)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is missing", ErrInvalid)
	}
	return nil
}

// Signed returns the total as a cash flow: positive for a sale, negative for a purchase.
func (t Transaction) Signed() Money {
	if t.Kind == Sale {
		return t.Total
	}
	return t.Total.Neg()
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var o orderedObject
	o.add("id", t.ID)
	o.add("productId", t.Product)
	o.add("kind", t.Kind)
	o.add("weightKg", t.Weight)
	o.add("unitPrice", t.UnitPrice)
	o.add("totalValue", t.Total)
	o.add("date", t.Date)
	o.addNonEmpty("memo", t.Memo)
	return o.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        ID        `json:"id"`
		Product   ID        `json:"productId"`
		Kind      Kind      `json:"kind"`
		Weight    Weight    `json:"weightKg"`
		UnitPrice Money     `json:"unitPrice"`
		Total     Money     `json:"totalValue"`
		Date      date.Date `json:"date"`
		Memo      string    `json:"memo,omitempty"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction(temp)
	return nil
}
