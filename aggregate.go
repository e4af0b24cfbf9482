package pescados

import "github.com/etnz/pescados/date"

// Row holds the figures of one product over a window.
type Row struct {
	Product         ID     `json:"productId,omitempty"` // empty for the totals and the orphans rows
	Name            string `json:"name"`
	WeightPurchased Weight `json:"weightPurchased"`
	WeightSold      Weight `json:"weightSold"`
	Invested        Money  `json:"invested"` // sum of purchase totals
	Sold            Money  `json:"sold"`     // sum of sale totals
	Profit          Money  `json:"profit"`   // Sold - Invested
}

// Active reports whether any money moved on this row.
func (r Row) Active() bool { return r.Invested.IsPositive() || r.Sold.IsPositive() }

// add folds a transaction into the row.
func (r *Row) add(tx Transaction) {
	switch tx.Kind {
	case Purchase:
		r.WeightPurchased = r.WeightPurchased.Add(tx.Weight)
		r.Invested = r.Invested.Add(tx.Total)
	case Sale:
		r.WeightSold = r.WeightSold.Add(tx.Weight)
		r.Sold = r.Sold.Add(tx.Total)
	}
	r.Profit = r.Sold.Sub(r.Invested)
}

// sum adds every field of x to r.
func (r *Row) sum(x Row) {
	r.WeightPurchased = r.WeightPurchased.Add(x.WeightPurchased)
	r.WeightSold = r.WeightSold.Add(x.WeightSold)
	r.Invested = r.Invested.Add(x.Invested)
	r.Sold = r.Sold.Add(x.Sold)
	r.Profit = r.Profit.Add(x.Profit)
}

// OrphanPolicy tells the aggregation what to do with transactions whose product was deleted.
type OrphanPolicy int

const (
	// SkipOrphans leaves them out of every row and of the totals. They are only counted.
	SkipOrphans OrphanPolicy = iota
	// GroupOrphans gathers them in a last row named NotFoundLabel, included in the totals.
	GroupOrphans
)

// Report is the aggregation of a ledger over a window.
type Report struct {
	Window       date.Window `json:"window"`
	Rows         []Row       `json:"rows"`         // one per catalog product, in catalog order
	Totals       Row         `json:"totals"`       // field-wise sum of Rows
	Transactions int         `json:"transactions"` // in-window transactions folded into Rows
	Orphans      int         `json:"orphans"`      // in-window transactions referencing a deleted product
	// OrphansGrouped is set when the orphans are folded into a NotFoundLabel row, and so
	// counted in Transactions and Totals.
	OrphansGrouped bool `json:"orphansGrouped"`
}

// Row returns the row of a product.
func (r *Report) Row(id ID) (Row, bool) {
	for _, row := range r.Rows {
		if row.Product == id {
			return row, true
		}
	}
	return Row{}, false
}

// Aggregate folds the ledger transactions dated within w into one row per catalog product.
//
// Rows are computed from the stored transaction totals, never from weight × price. The
// totals are the sum of the rows so that they always agree with them.
func Aggregate(c *Catalog, l *Ledger, w date.Window, policy OrphanPolicy) *Report {
	report := &Report{Window: w, Totals: Row{Name: "Total"}, OrphansGrouped: policy == GroupOrphans}

	rows := make([]Row, 0, c.Len()+1)
	index := make(map[ID]int, c.Len())
	for p := range c.Products() {
		index[p.ID] = len(rows)
		rows = append(rows, Row{Product: p.ID, Name: p.Name})
	}
	orphans := Row{Name: NotFoundLabel}

	for _, tx := range l.Transactions(InWindow(w)) {
		i, ok := index[tx.Product]
		if !ok {
			report.Orphans++
			if policy == GroupOrphans {
				orphans.add(tx)
				report.Transactions++
			}
			continue
		}
		rows[i].add(tx)
		report.Transactions++
	}
	if policy == GroupOrphans && report.Orphans > 0 {
		rows = append(rows, orphans)
	}

	for _, row := range rows {
		report.Totals.sum(row)
	}
	report.Rows = rows
	return report
}
