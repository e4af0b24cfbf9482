package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pescados"
	"github.com/etnz/pescados/date"
	"github.com/etnz/pescados/renderer"
	"github.com/google/subcommands"
)

// --- Buy and Sell Commands ---

// registerCmd registers a purchase or a sale, depending on kind.
type registerCmd struct {
	kind    pescados.Kind
	product string
	weight  string
	price   string
	date    string
	memo    string
}

func (c *registerCmd) Name() string {
	if c.kind == pescados.Sale {
		return "sell"
	}
	return "buy"
}

func (c *registerCmd) Synopsis() string {
	if c.kind == pescados.Sale {
		return "register a sale"
	}
	return "register a purchase"
}

func (c *registerCmd) Usage() string {
	return fmt.Sprintf(`psc %s -p <product> -w <kg> [-u <price per kg>] [-d <date>] [-m <memo>]

  Registers a %s. The product is referenced by its name, its id, or the end of
  its id. The price per kg defaults to the product's default %s price. The total
  value is computed once, as weight × price, and never changes afterwards.

Usage Examples:
$ psc %s -p "Camarão Rosa" -w 12,5
`, c.Name(), c.kind, c.Name(), c.Name())
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "Product name or id")
	f.StringVar(&c.weight, "w", "", "Weight in kg")
	f.StringVar(&c.price, "u", "", "Price per kg. Defaults to the product's default price.")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.memo, "m", "", "An optional note for the transaction")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" || c.weight == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	weight, err := pescados.ParseWeight(c.weight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing weight: %v\n", err)
		return subcommands.ExitUsageError
	}
	day := today()
	if c.date != "" {
		if day, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		catalog := s.Catalog()
		p, err := catalog.Find(c.product)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		price := p.DefaultPrice(c.kind)
		if c.price != "" {
			if price, err = pescados.ParseMoney(c.price); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		tx, err := s.Register(ctx, day, p.ID, c.kind, weight, price, c.memo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error registering transaction: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Registered %s (%s)\n", renderer.Transaction(tx, catalog), tx.ID.Short())
		return subcommands.ExitSuccess
	})
}

// --- Delete Transaction Command ---

type deleteTxCmd struct {
	id  string
	yes bool
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `psc delete-tx -id <transaction> [-y]

  Deletes a transaction, referenced by its id or the end of its id (as shown by
  psc tx).
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteTxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		tx, err := s.Ledger().Find(c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		label := renderer.Transaction(tx, s.Catalog())
		if !c.yes && !confirm(fmt.Sprintf("Delete %s?", label)) {
			fmt.Fprintln(stdout, "Cancelled.")
			return subcommands.ExitSuccess
		}
		if _, err := s.DeleteTransaction(ctx, tx.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Deleted %s.\n", label)
		return subcommands.ExitSuccess
	})
}

// --- Transactions Command ---

type txCmd struct {
	windowFlags
	product string
	kind    string
	head    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `psc tx [-p <period> | -s <start_date>] [-e <end_date>] [-product <product>] [-kind <kind>] [-head <n>]

  Lists transactions from the newest registered. Without window flags every
  transaction is listed. Transactions of deleted products are kept and labelled
  "` + pescados.NotFoundLabel + `".
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.windowFlags.SetFlags(f)
	f.StringVar(&c.product, "product", "", "Only list transactions of this product.")
	f.StringVar(&c.kind, "kind", "", "Only list purchases or sales.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(pescados.Transaction) bool
	if c.isSet() {
		w, err := c.window(date.Month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, pescados.InWindow(w))
	}
	if c.kind != "" {
		k, err := pescados.ParseKind(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, pescados.ByKind(k))
	}

	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		catalog := s.Catalog()
		if c.product != "" {
			p, err := catalog.Find(c.product)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			filters = append(filters, pescados.ByProduct(p.ID))
		}
		txs := s.Ledger().Collect(filters...)
		if c.head > 0 && len(txs) > c.head {
			txs = txs[:c.head]
		}
		printMarkdown(renderer.TransactionsMarkdown(txs, catalog))
		return subcommands.ExitSuccess
	})
}
