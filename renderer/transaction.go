package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/pescados"
	md "github.com/nao1215/markdown"
)

// KindLabel returns the label of a transaction kind.
func KindLabel(k pescados.Kind) string {
	switch k {
	case pescados.Purchase:
		return "Compra"
	case pescados.Sale:
		return "Venda"
	default:
		return string(k)
	}
}

// Transaction renders a transaction to a one line sentence.
// Transactions of deleted products are labelled pescados.NotFoundLabel.
func Transaction(tx pescados.Transaction, c *pescados.Catalog) string {
	return fmt.Sprintf("%s de %s de %s a %s/kg em %s: %s",
		KindLabel(tx.Kind), tx.Weight, c.Name(tx.Product), tx.UnitPrice, tx.Date.Label(), tx.Total)
}

// TransactionsMarkdown renders transactions, in the given order, as a markdown table.
func TransactionsMarkdown(txs []pescados.Transaction, c *pescados.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transações")
	if len(txs) == 0 {
		doc.PlainText("Nenhuma transação no período.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Data", "Id", "Produto", "Tipo", "Peso (kg)", "Preço (kg)", "Total", "Nota"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		total := tx.Total.String()
		if tx.Kind == pescados.Sale {
			total = "+" + total
		} else {
			total = "-" + total
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.Label(),
			tx.ID.Short(),
			c.Name(tx.Product),
			KindLabel(tx.Kind),
			tx.Weight.Decimal().String(),
			tx.UnitPrice.String(),
			total,
			tx.Memo,
		})
	}
	doc.Table(table)

	return doc.String()
}
