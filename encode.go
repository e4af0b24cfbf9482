package pescados

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The catalog and the ledger are each persisted as a single JSON array, in their
// in-memory order: catalog order for products, newest first for transactions.
// There is no schema version and decoding does not validate the records.

// EncodeCatalog writes the catalog products to w as a JSON array.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	products := c.products
	if products == nil {
		products = []Product{}
	}
	return encodeJSON(w, products)
}

// DecodeCatalog reads a catalog written by EncodeCatalog.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var products []Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}
	return &Catalog{products: products}, nil
}

// EncodeLedger writes the ledger transactions to w as a JSON array, newest first.
func EncodeLedger(w io.Writer, l *Ledger) error {
	txs := l.transactions
	if txs == nil {
		txs = []Transaction{}
	}
	return encodeJSON(w, txs)
}

// DecodeLedger reads a ledger written by EncodeLedger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var txs []Transaction
	if err := json.NewDecoder(r).Decode(&txs); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	return &Ledger{transactions: txs}, nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	return nil
}
