package cmd

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/etnz/pescados"
	"github.com/etnz/pescados/renderer"
	"github.com/google/subcommands"
)

// --- Init Command ---

type initCmd struct {
	demo bool
	seed uint64
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the store with the default catalog" }
func (*initCmd) Usage() string {
	return `psc init [-demo] [-seed <n>]

  Creates the store if it does not exist yet. A new store starts with the
  default catalog of 8 products. With -demo, an empty ledger is filled with
  60 days of generated purchases and sales.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.demo, "demo", false, "Generate demo transactions when the ledger is empty.")
	f.Uint64Var(&c.seed, "seed", 0, "Seed of the demo generator. Random by default.")
}

func (c *initCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		if c.demo {
			if n := s.Ledger().Len(); n > 0 {
				fmt.Fprintf(os.Stderr, "Warning: the ledger already holds %d transactions, no demo data generated.\n", n)
			} else {
				seed := c.seed
				if seed == 0 {
					seed = nowSeed()
				}
				txs := pescados.Demo(s.Catalog(), today(), rand.New(rand.NewPCG(seed, seed)))
				if err := s.Import(ctx, txs); err != nil {
					fmt.Fprintf(os.Stderr, "Error generating demo data: %v\n", err)
					return subcommands.ExitFailure
				}
			}
		}
		fmt.Fprintf(stdout, "Store ready: %d products, %d transactions.\n", s.Catalog().Len(), s.Ledger().Len())
		return subcommands.ExitSuccess
	})
}

// --- Products Command ---

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the catalog" }
func (*productsCmd) Usage() string {
	return `psc products

  Lists the products with their default purchase and sale prices per kg.
`
}

func (*productsCmd) SetFlags(f *flag.FlagSet) {}

func (*productsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		printMarkdown(renderer.CatalogMarkdown(s.Catalog()))
		return subcommands.ExitSuccess
	})
}

// --- Add Product Command ---

type addProductCmd struct {
	name string
	buy  string
	sell string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a product to the catalog" }
func (*addProductCmd) Usage() string {
	return `psc add-product -n <name> [-b <buy price>] [-s <sell price>]

  Adds a product at the end of the catalog. Prices are per kg and default to 0.

Usage Examples:
$ psc add-product -n Tainha -b 12 -s 22,50
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
	f.StringVar(&c.buy, "b", "0", "Default purchase price per kg")
	f.StringVar(&c.sell, "s", "0", "Default sale price per kg")
}

func (c *addProductCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	buy, err := pescados.ParseMoney(c.buy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing buy price: %v\n", err)
		return subcommands.ExitUsageError
	}
	sell, err := pescados.ParseMoney(c.sell)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sell price: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		p, err := s.AddProduct(ctx, c.name, buy, sell)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding product: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Added %s (%s): buy %s/kg, sell %s/kg\n", p.Name, p.ID.Short(), p.DefaultBuyPrice, p.DefaultSellPrice)
		return subcommands.ExitSuccess
	})
}

// --- Update Product Command ---

type updateProductCmd struct {
	id   string
	name string
	buy  string
	sell string
}

func (*updateProductCmd) Name() string     { return "update-product" }
func (*updateProductCmd) Synopsis() string { return "rename a product or change its default prices" }
func (*updateProductCmd) Usage() string {
	return `psc update-product -id <product> [-n <name>] [-b <buy price>] [-s <sell price>]

  Updates a product in place. The product is referenced by its name, its id, or
  the end of its id. Only the given fields change. Registered transactions keep
  their prices.
`
}

func (c *updateProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product name or id")
	f.StringVar(&c.name, "n", "", "New name")
	f.StringVar(&c.buy, "b", "", "New default purchase price per kg")
	f.StringVar(&c.sell, "s", "", "New default sale price per kg")
}

func (c *updateProductCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		p, err := s.Catalog().Find(c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.name != "" {
			p.Name = c.name
		}
		if c.buy != "" {
			if p.DefaultBuyPrice, err = pescados.ParseMoney(c.buy); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing buy price: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if c.sell != "" {
			if p.DefaultSellPrice, err = pescados.ParseMoney(c.sell); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing sell price: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if err := s.UpdateProduct(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating product: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Updated %s (%s): buy %s/kg, sell %s/kg\n", p.Name, p.ID.Short(), p.DefaultBuyPrice, p.DefaultSellPrice)
		return subcommands.ExitSuccess
	})
}

// --- Delete Product Command ---

type deleteProductCmd struct {
	id  string
	yes bool
}

func (*deleteProductCmd) Name() string     { return "delete-product" }
func (*deleteProductCmd) Synopsis() string { return "remove a product from the catalog" }
func (*deleteProductCmd) Usage() string {
	return `psc delete-product -id <product> [-y]

  Removes a product from the catalog. Its transactions are kept: they are listed
  as "` + pescados.NotFoundLabel + `" and left out of the dashboard totals.
`
}

func (c *deleteProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product name or id")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteProductCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *pescados.Store) subcommands.ExitStatus {
		p, err := s.Catalog().Find(c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		n := len(s.Ledger().Collect(pescados.ByProduct(p.ID)))
		if !c.yes && !confirm(fmt.Sprintf("Delete %s (%s), referenced by %d transactions?", p.Name, p.ID.Short(), n)) {
			fmt.Fprintln(stdout, "Cancelled.")
			return subcommands.ExitSuccess
		}
		if _, err := s.DeleteProduct(ctx, p.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting product: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Deleted %s.\n", p.Name)
		return subcommands.ExitSuccess
	})
}
