package pescados

import "github.com/etnz/pescados/date"

// Fixed products used across tests, with readable ids.
var (
	shrimp  = Product{ID: "p-shrimp", Name: "Camarão Regional", DefaultBuyPrice: M(25), DefaultSellPrice: M(40)}
	hake    = Product{ID: "p-hake", Name: "Pescada Amarela", DefaultBuyPrice: M(18), DefaultSellPrice: M(30)}
	crabLeg = Product{ID: "p-crab", Name: "Pata de Caranguejo", DefaultBuyPrice: M(30), DefaultSellPrice: M(50)}
)

// purchase is a helper for test to create a purchase with a fixed id.
func purchase(id ID, on string, product ID, kg, price float64) Transaction {
	tx := NewTransaction(date.MustParse(on), product, Purchase, Kg(kg), M(price), "")
	tx.ID = id
	return tx
}

// sale is a helper for test to create a sale with a fixed id.
func sale(id ID, on string, product ID, kg, price float64) Transaction {
	tx := NewTransaction(date.MustParse(on), product, Sale, Kg(kg), M(price), "")
	tx.ID = id
	return tx
}

// window is a helper for test to create a window from two dates.
func window(from, to string) date.Window {
	return date.NewWindow(date.MustParse(from), date.MustParse(to))
}

// equalMoney compares Money by value, 10 and 10.00 are equal.
func equalMoney(a, b Money) bool { return a.Equal(b) }

// equalWeight compares Weight by value.
func equalWeight(a, b Weight) bool { return a.Equal(b) }
