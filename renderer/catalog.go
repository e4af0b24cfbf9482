package renderer

import (
	"bytes"

	"github.com/etnz/pescados"
	md "github.com/nao1215/markdown"
)

// CatalogMarkdown renders the product list with the default prices per kg.
func CatalogMarkdown(c *pescados.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Produtos")
	if c.Len() == 0 {
		doc.PlainText("Nenhum produto cadastrado.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Id", "Produto", "Compra (kg)", "Venda (kg)"},
		Rows:   [][]string{},
	}
	for p := range c.Products() {
		table.Rows = append(table.Rows, []string{
			p.ID.Short(),
			p.Name,
			p.DefaultBuyPrice.String(),
			p.DefaultSellPrice.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
