package renderer

import (
	"github.com/etnz/pescados"
	"github.com/etnz/pescados/date"
)

// Dashboard is a struct to represent the dashboard data in json.
// Numbers use the exact decimal types so that they already carry their renderers.
type Dashboard struct {
	// From is the first day of the window.
	From date.Date `json:"from"`
	// To is the last day of the window, included.
	To date.Date `json:"to"`
	// Totals sums every product row.
	Totals DashboardRow `json:"totals"`
	// Products lists the products with some activity in the window, in catalog order.
	Products []DashboardRow `json:"products"`
	// Transactions counts the transactions aggregated.
	Transactions int `json:"transactions"`
	// Orphans counts the transactions of deleted products.
	Orphans int `json:"orphans"`
	// OrphansGrouped tells whether the orphans are in the figures, on a line of their own,
	// or left out.
	OrphansGrouped bool `json:"orphansGrouped,omitempty"`
}

// DashboardRow holds the figures of one product.
type DashboardRow struct {
	Name            string          `json:"name"`
	WeightPurchased pescados.Weight `json:"weightPurchased"`
	WeightSold      pescados.Weight `json:"weightSold"`
	Invested        pescados.Money  `json:"invested"`
	Sold            pescados.Money  `json:"sold"`
	Profit          pescados.Money  `json:"profit"`
}

// NewDashboard creates a Dashboard from an aggregation report.
func NewDashboard(r *pescados.Report) *Dashboard {
	d := &Dashboard{
		From:           r.Window.From,
		To:             r.Window.To,
		Totals:         newDashboardRow(r.Totals),
		Products:       []DashboardRow{},
		Transactions:   r.Transactions,
		Orphans:        r.Orphans,
		OrphansGrouped: r.OrphansGrouped,
	}
	for _, row := range r.Rows {
		if row.Active() {
			d.Products = append(d.Products, newDashboardRow(row))
		}
	}
	return d
}

func newDashboardRow(r pescados.Row) DashboardRow {
	return DashboardRow{
		Name:            r.Name,
		WeightPurchased: r.WeightPurchased,
		WeightSold:      r.WeightSold,
		Invested:        r.Invested,
		Sold:            r.Sold,
		Profit:          r.Profit,
	}
}

// Profitable reports whether the window ends with a non negative result.
func (d Dashboard) Profitable() bool { return !d.Totals.Profit.IsNegative() }

// Loss returns the absolute value of a negative result.
func (d Dashboard) Loss() pescados.Money { return d.Totals.Profit.Neg() }
