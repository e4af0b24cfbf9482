package pescados

import (
	"encoding/json"

	"github.com/etnz/pescados/date"
)

// Export is the document gathering a report and its chart projections.
type Export struct {
	Report *Report
	Bars   []Bar
	Line   []Point
	Pie    []Slice
}

// NewExport aggregates c and l over w and builds every projection.
func NewExport(c *Catalog, l *Ledger, w date.Window) *Export {
	r := Aggregate(c, l, w, SkipOrphans)
	return &Export{
		Report: r,
		Bars:   Bars(r),
		Line:   CumulativeLine(l, w),
		Pie:    Pie(r),
	}
}

// MarshalJSON writes the report fields first, then the projections. Empty projections
// are written as empty arrays so that queries always find them.
func (e *Export) MarshalJSON() ([]byte, error) {
	var o orderedObject
	o.merge(e.Report)
	o.add("bars", nonNil(e.Bars))
	o.add("line", nonNil(e.Line))
	o.add("pie", nonNil(e.Pie))
	return o.MarshalJSON()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

var _ json.Marshaler = (*Export)(nil)
