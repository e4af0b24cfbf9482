package pescados

import (
	"slices"

	"github.com/etnz/pescados/date"
)

// Palette is the cycle of colours assigned to pie slices.
var Palette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884d8", "#82ca9d", "#ffc658", "#ff7300"}

// Bar is one group of the invested/sold bar chart.
type Bar struct {
	Label    string `json:"label"` // first word of the product name
	Invested Money  `json:"invested"`
	Sold     Money  `json:"sold"`
}

// Bars returns one bar group per active row.
func Bars(r *Report) []Bar {
	var bars []Bar
	for _, row := range r.Rows {
		if !row.Active() {
			continue
		}
		bars = append(bars, Bar{Label: firstWord(row.Name), Invested: row.Invested, Sold: row.Sold})
	}
	return bars
}

// Point is the cumulative result at the end of a day.
type Point struct {
	Date  date.Date `json:"date"`
	Label string    `json:"label"`
	Value Money     `json:"value"`
}

// CumulativeLine returns the running result (sales minus purchases) of the transactions
// dated within w, with one point per day that has transactions.
//
// Every in-window transaction counts, including those of deleted products.
func CumulativeLine(l *Ledger, w date.Window) []Point {
	txs := l.Collect(InWindow(w))
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Date.Compare(b.Date) })

	var points []Point
	var running Money
	for _, tx := range txs {
		running = running.Add(tx.Signed())
		if n := len(points); n > 0 && points[n-1].Date == tx.Date {
			points[n-1].Value = running
			continue
		}
		points = append(points, Point{Date: tx.Date, Label: tx.Date.Label(), Value: running})
	}
	return points
}

// Slice is one part of the sales pie.
type Slice struct {
	Name  string `json:"name"`
	Value Money  `json:"value"`
	Color string `json:"color"`
}

// Pie returns one slice per row with sales, coloured by cycling through Palette.
func Pie(r *Report) []Slice {
	var pie []Slice
	for _, row := range r.Rows {
		if !row.Sold.IsPositive() {
			continue
		}
		pie = append(pie, Slice{
			Name:  row.Name,
			Value: row.Sold,
			Color: Palette[len(pie)%len(Palette)],
		})
	}
	return pie
}
