package pescados

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Catalog is the ordered list of products traded.
type Catalog struct {
	products []Product
}

// NewCatalog creates a catalog holding products, in that order.
func NewCatalog(products ...Product) *Catalog {
	return &Catalog{products: slices.Clone(products)}
}

// DefaultCatalog returns the catalog the shop starts with.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		NewProduct("Camarão Regional", M(25), M(40)),
		NewProduct("Camarão Rosa", M(35), M(55)),
		NewProduct("Pescada Amarela", M(18), M(30)),
		NewProduct("Dourada", M(20), M(35)),
		NewProduct("Filhote", M(28), M(45)),
		NewProduct("Pescada Gó", M(15), M(28)),
		NewProduct("Pata de Caranguejo", M(30), M(50)),
		NewProduct("Massa de Caranguejo", M(40), M(65)),
	)
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Clone returns an independent copy of c.
func (c *Catalog) Clone() *Catalog { return NewCatalog(c.products...) }

// Products iterates over the products in catalog order.
func (c *Catalog) Products() iter.Seq[Product] {
	return slices.Values(c.products)
}

// Product returns the product with that exact id.
func (c *Catalog) Product(id ID) (Product, bool) {
	i := c.index(id)
	if i < 0 {
		return Product{}, false
	}
	return c.products[i], true
}

// Name returns the product name, or NotFoundLabel for an unknown id.
func (c *Catalog) Name(id ID) string {
	if p, ok := c.Product(id); ok {
		return p.Name
	}
	return NotFoundLabel
}

// Find resolves a user reference: a full id, a unique id suffix or a case insensitive name.
func (c *Catalog) Find(ref string) (Product, error) {
	if p, ok := c.Product(ID(ref)); ok {
		return p, nil
	}
	p, err := resolve("product", ref, c.products, func(p Product) bool {
		return strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(ref))
	})
	if err == nil || errors.Is(err, ErrAmbiguous) {
		return p, err
	}
	return resolve("product", ref, c.products, func(p Product) bool { return p.ID.matches(ref) })
}

// Add appends a new product.
func (c *Catalog) Add(p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if c.index(p.ID) >= 0 {
		return fmt.Errorf("%w: product %q already exists", ErrInvalid, p.ID)
	}
	c.products = append(c.products, p)
	return nil
}

// Update replaces in place the product with the same id.
func (c *Catalog) Update(p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i := c.index(p.ID)
	if i < 0 {
		return fmt.Errorf("product %q: %w", p.ID, ErrNotFound)
	}
	c.products[i] = p
	return nil
}

// Delete removes a product. Transactions referencing it are left untouched.
func (c *Catalog) Delete(id ID) (Product, error) {
	i := c.index(id)
	if i < 0 {
		return Product{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	p := c.products[i]
	c.products = slices.Delete(c.products, i, i+1)
	return p, nil
}

func (c *Catalog) index(id ID) int {
	return slices.IndexFunc(c.products, func(p Product) bool { return p.ID == id })
}
