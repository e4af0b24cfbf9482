package pescados

import (
	"math/rand/v2"

	"github.com/etnz/pescados/date"
	"github.com/shopspring/decimal"
)

// DemoDays is the number of days covered by Demo.
const DemoDays = 60

// Demo generates plausible transactions over the DemoDays days ending on today, oldest first.
//
// Each day gets 1 to 4 transactions on a random product, 60% of them purchases, weighing
// 2 to 25 kg at the product default price ±10%.
func Demo(c *Catalog, today date.Date, r *rand.Rand) []Transaction {
	products := make([]Product, 0, c.Len())
	for p := range c.Products() {
		products = append(products, p)
	}
	if len(products) == 0 {
		return nil
	}

	var txs []Transaction
	for day := DemoDays - 1; day >= 0; day-- {
		on := today.Add(-day)
		for range 1 + r.IntN(4) {
			p := products[r.IntN(len(products))]
			kind := Sale
			if r.Float64() < 0.6 {
				kind = Purchase
			}
			// one decimal for weights, cents for prices.
			weight := Kg(decimal.NewFromFloat(2 + r.Float64()*23).Round(1))
			factor := decimal.NewFromFloat(0.9 + r.Float64()*0.2)
			price := Money{value: p.DefaultPrice(kind).Decimal().Mul(factor).Round(2)}
			txs = append(txs, NewTransaction(on, p.ID, kind, weight, price, ""))
		}
	}
	return txs
}
