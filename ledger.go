package pescados

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/pescados/date"
)

// Ledger represents the list of registered transactions.
//
// In a Ledger transactions are kept newest first, in registration order. Transactions
// are never edited, only registered or deleted.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger holding txs, newest first.
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: slices.Clone(txs)}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Clone returns an independent copy of l.
func (l *Ledger) Clone() *Ledger { return NewLedger(l.transactions...) }

// Register validates tx and records it as the newest transaction.
func (l *Ledger) Register(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if slices.ContainsFunc(l.transactions, func(t Transaction) bool { return t.ID == tx.ID }) {
		return fmt.Errorf("%w: transaction %q already exists", ErrInvalid, tx.ID)
	}
	l.transactions = slices.Insert(l.transactions, 0, tx)
	return nil
}

// Delete removes the transaction with that id.
func (l *Ledger) Delete(id ID) (Transaction, error) {
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return Transaction{}, fmt.Errorf("transaction %q: %w", id, ErrNotFound)
	}
	tx := l.transactions[i]
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return tx, nil
}

// Find resolves a user reference: a full id or a unique id suffix.
func (l *Ledger) Find(ref string) (Transaction, error) {
	return resolve("transaction", ref, l.transactions, func(t Transaction) bool { return t.ID.matches(ref) })
}

// Transactions returns an iterator over the transactions accepted by all filters, newest first.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Collect returns the transactions accepted by all filters, newest first.
func (l *Ledger) Collect(filters ...func(Transaction) bool) []Transaction {
	var txs []Transaction
	for _, tx := range l.Transactions(filters...) {
		txs = append(txs, tx)
	}
	return txs
}

// InWindow returns a predicate that accepts transactions dated within w.
func InWindow(w date.Window) func(Transaction) bool {
	return func(tx Transaction) bool { return w.Contains(tx.Date) }
}

// ByProduct returns a predicate that filters transactions by product.
func ByProduct(id ID) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Product == id }
}

// ByKind returns a predicate that filters transactions by kind.
func ByKind(k Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind == k }
}

// Orphaned returns a predicate that accepts transactions whose product is not in c.
func Orphaned(c *Catalog) func(Transaction) bool {
	return func(tx Transaction) bool {
		_, ok := c.Product(tx.Product)
		return !ok
	}
}
