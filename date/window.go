package date

import "fmt"

// Window is a range of dates, both boundaries included.
//
// A Window whose From is after its To is empty: it contains no date.
type Window struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// NewWindow returns the window from start to end included.
func NewWindow(start, end Date) Window { return Window{From: start, To: end} }

// Contains return true date is included in the window (boundaries included)
func (w Window) Contains(d Date) bool { return !d.Before(w.From) && !d.After(w.To) }

// IsEmpty reports whether no date can fall in w.
func (w Window) IsEmpty() bool { return w.From.After(w.To) }

// Includes reports whether every date of x is also in w.
func (w Window) Includes(x Window) bool {
	if x.IsEmpty() {
		return true
	}
	return w.Contains(x.From) && w.Contains(x.To)
}

func (w Window) String() string { return fmt.Sprintf("%s..%s", w.From, w.To) }

// Resolve builds the window selected by command line style inputs.
//
// An explicit start wins over the period token; an empty end means today. When neither a
// start nor a period is given, the default period applies.
func Resolve(today Date, period, start, end string, def Period) (Window, error) {
	to := today
	if end != "" {
		d, err := Parse(end)
		if err != nil {
			return Window{}, fmt.Errorf("invalid end date: %w", err)
		}
		to = d
	}
	if start != "" {
		from, err := Parse(start)
		if err != nil {
			return Window{}, fmt.Errorf("invalid start date: %w", err)
		}
		return NewWindow(from, to), nil
	}
	p := def
	if period != "" {
		var err error
		if p, err = ParsePeriod(period); err != nil {
			return Window{}, err
		}
	}
	return p.Window(to), nil
}
