package date

import (
	"fmt"
	"strings"
)

// Period is a named look-back window ending today.
type Period int

const (
	Day Period = iota
	Week
	Month
	Year
)

func (p Period) String() string {
	switch p {
	case Day:
		return "today"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Periods lists every period token in increasing length.
func Periods() []Period { return []Period{Day, Week, Month, Year} }

// ParsePeriod parses a period token. The portuguese names used by the shop are accepted too.
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "today", "day", "daily", "dia", "hoje":
		return Day, nil
	case "week", "weekly", "semana":
		return Week, nil
	case "month", "monthly", "mes", "mês":
		return Month, nil
	case "year", "yearly", "ano":
		return Year, nil
	default:
		return Day, fmt.Errorf("unknown period %q", p)
	}
}

// Start returns the first day of the period ending on today.
func (p Period) Start(today Date) Date {
	switch p {
	case Week:
		return today.Add(-7)
	case Month:
		return today.AddMonths(-1)
	case Year:
		return today.AddYears(-1)
	default:
		return today
	}
}

// Window resolves the period into a concrete window ending on today.
func (p Period) Window(today Date) Window {
	return Window{From: p.Start(today), To: today}
}
