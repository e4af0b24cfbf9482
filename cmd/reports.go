package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/pescados"
	"github.com/etnz/pescados/date"
	"github.com/etnz/pescados/renderer"
	"github.com/google/subcommands"
)

// --- Dashboard Command ---

type dashboardCmd struct {
	windowFlags
	orphans bool
}

func (*dashboardCmd) Name() string { return "dashboard" }
func (*dashboardCmd) Synopsis() string {
	return "is the business profitable? totals and per product figures"
}
func (*dashboardCmd) Usage() string {
	return `psc dashboard [-p <period> | -s <start_date>] [-e <end_date>] [-orphans]

  Aggregates the transactions of the window (the last month by default) per
  product: weights bought and sold, amounts invested and sold, and the result.
  Transactions of deleted products are left out of the figures unless -orphans
  is set, in which case they are grouped under "` + pescados.NotFoundLabel + `".
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.windowFlags.SetFlags(f)
	f.BoolVar(&c.orphans, "orphans", false, "Include the transactions of deleted products in the figures.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := c.window(date.Month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	policy := pescados.SkipOrphans
	if c.orphans {
		policy = pescados.GroupOrphans
	}
	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		report := pescados.Aggregate(s.Catalog(), s.Ledger(), w, policy)
		printMarkdown(renderer.RenderDashboard(renderer.NewDashboard(report)))
		return subcommands.ExitSuccess
	})
}

// --- Chart Command ---

type chartCmd struct {
	windowFlags
	width int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the bar, line or pie chart in the terminal" }
func (*chartCmd) Usage() string {
	return `psc chart [-p <period> | -s <start_date>] [-e <end_date>] [-width <n>] bar|line|pie

  bar   invested and sold amounts per product
  line  cumulative result (sales minus purchases) day after day
  pie   share of each product in the sales
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.windowFlags.SetFlags(f)
	f.IntVar(&c.width, "width", renderer.DefaultChartWidth, "Width of the longest bar.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	kind := f.Arg(0)
	switch kind {
	case "bar", "line", "pie":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart %q, want bar, line or pie\n", kind)
		return subcommands.ExitUsageError
	}
	w, err := c.window(date.Month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		ledger := s.Ledger()
		var chart string
		switch kind {
		case "bar":
			chart = renderer.BarChart(pescados.Bars(s.Report(w)), c.width)
		case "line":
			chart = renderer.LineChart(pescados.CumulativeLine(ledger, w), c.width)
		case "pie":
			chart = renderer.PieChart(pescados.Pie(s.Report(w)), c.width)
		}
		fmt.Fprintf(stdout, "%s to %s\n\n%s\n", w.From.Label(), w.To.Label(), chart)
		return subcommands.ExitSuccess
	})
}

// --- Export Command ---

type exportCmd struct {
	windowFlags
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the report and the chart data as JSON" }
func (*exportCmd) Usage() string {
	return `psc export [-p <period> | -s <start_date>] [-e <end_date>]

  Prints the report of the window (the last month by default) with the bar, line
  and pie chart data as a single JSON document.
`
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := c.window(date.Month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		data, err := json.MarshalIndent(pescados.NewExport(s.Catalog(), s.Ledger(), w), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding export: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%s\n", data)
		return subcommands.ExitSuccess
	})
}

// --- Query Command ---

type queryCmd struct {
	windowFlags
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the export document with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `psc query [-p <period> | -s <start_date>] [-e <end_date>] <jsonpath>

  Evaluates a JSONPath expression on the document printed by psc export.

Usage Examples:
$ psc query '$.totals.profit'
$ psc query -p year '$.rows[?(@.profit < 0)].name'
`
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)
	w, err := c.window(date.Month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		result, err := query(pescados.NewExport(s.Catalog(), s.Ledger(), w), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%s\n", result)
		return subcommands.ExitSuccess
	})
}

// query evaluates a JSONPath expression on the JSON form of v and returns the indented JSON result.
func query(v any, path string) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return json.MarshalIndent(jval, "", "  ")
}
