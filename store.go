package pescados

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/etnz/pescados/date"
	"github.com/etnz/pescados/storage"
	"go.uber.org/zap"
)

// Keys under which the catalog and the ledger are persisted.
const (
	CatalogKey = "pescados_produtos"
	LedgerKey  = "pescados_transacoes"
)

// Store owns the catalog and the ledger and persists them into a key value store after
// every mutation.
//
// A failed write is logged and remembered (see Err), the in-memory state is kept.
// A Store is not safe for concurrent use.
type Store struct {
	kv      storage.KV
	log     *zap.Logger
	catalog *Catalog
	ledger  *Ledger
	err     error
}

// Open loads the catalog and the ledger from kv.
//
// A missing catalog is replaced by the DefaultCatalog, which is persisted right away so
// that product ids are stable across runs. A missing ledger is empty.
func Open(ctx context.Context, kv storage.KV, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{kv: kv, log: log}

	var errs []error
	catalog, seeded, err := loadCatalog(ctx, kv)
	if err != nil {
		errs = append(errs, err)
	}
	ledger, err := loadLedger(ctx, kv)
	if err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	s.catalog, s.ledger = catalog, ledger

	if seeded {
		log.Info("seeding default catalog", zap.Int("products", catalog.Len()))
		s.persist(ctx, CatalogKey)
	}
	log.Debug("store opened", zap.Int("products", catalog.Len()), zap.Int("transactions", ledger.Len()))
	return s, nil
}

func loadCatalog(ctx context.Context, kv storage.KV) (c *Catalog, seeded bool, err error) {
	data, err := kv.Get(ctx, CatalogKey)
	if errors.Is(err, storage.ErrNotFound) {
		return DefaultCatalog(), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read catalog: %w", err)
	}
	c, err = DecodeCatalog(bytes.NewReader(data))
	return c, false, err
}

func loadLedger(ctx context.Context, kv storage.KV) (*Ledger, error) {
	data, err := kv.Get(ctx, LedgerKey)
	if errors.Is(err, storage.ErrNotFound) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return DecodeLedger(bytes.NewReader(data))
}

// Catalog returns a snapshot of the catalog.
func (s *Store) Catalog() *Catalog { return s.catalog.Clone() }

// Ledger returns a snapshot of the ledger.
func (s *Store) Ledger() *Ledger { return s.ledger.Clone() }

// Err returns the last persistence error, if any.
func (s *Store) Err() error { return s.err }

// Close closes the underlying key value store.
func (s *Store) Close() error { return s.kv.Close() }

// AddProduct creates a product and appends it to the catalog.
func (s *Store) AddProduct(ctx context.Context, name string, buy, sell Money) (Product, error) {
	p := NewProduct(name, buy, sell)
	if err := s.catalog.Add(p); err != nil {
		return Product{}, err
	}
	s.log.Info("product added", zap.String("id", p.ID.String()), zap.String("name", p.Name))
	s.persist(ctx, CatalogKey)
	return p, nil
}

// UpdateProduct replaces the product with the same id.
func (s *Store) UpdateProduct(ctx context.Context, p Product) error {
	if err := s.catalog.Update(p); err != nil {
		return err
	}
	s.log.Info("product updated", zap.String("id", p.ID.String()), zap.String("name", p.Name))
	s.persist(ctx, CatalogKey)
	return nil
}

// DeleteProduct removes a product from the catalog. Its transactions are kept.
func (s *Store) DeleteProduct(ctx context.Context, id ID) (Product, error) {
	p, err := s.catalog.Delete(id)
	if err != nil {
		return Product{}, err
	}
	s.log.Info("product deleted", zap.String("id", id.String()), zap.String("name", p.Name))
	s.persist(ctx, CatalogKey)
	return p, nil
}

// Register records a new transaction for an existing product.
func (s *Store) Register(ctx context.Context, on date.Date, product ID, kind Kind, weight Weight, unitPrice Money, memo string) (Transaction, error) {
	if _, ok := s.catalog.Product(product); !ok {
		return Transaction{}, fmt.Errorf("product %q: %w", product, ErrNotFound)
	}
	tx := NewTransaction(on, product, kind, weight, unitPrice, memo)
	if err := s.ledger.Register(tx); err != nil {
		return Transaction{}, err
	}
	s.log.Info("transaction registered",
		zap.String("id", tx.ID.String()),
		zap.String("kind", string(tx.Kind)),
		zap.Stringer("weight", tx.Weight),
		zap.Stringer("total", tx.Total),
	)
	s.persist(ctx, LedgerKey)
	return tx, nil
}

// DeleteTransaction removes a transaction from the ledger.
func (s *Store) DeleteTransaction(ctx context.Context, id ID) (Transaction, error) {
	tx, err := s.ledger.Delete(id)
	if err != nil {
		return Transaction{}, err
	}
	s.log.Info("transaction deleted", zap.String("id", id.String()))
	s.persist(ctx, LedgerKey)
	return tx, nil
}

// Import registers transactions in bulk, oldest first, and persists the ledger once.
// Either every transaction is registered or none is.
func (s *Store) Import(ctx context.Context, txs []Transaction) error {
	ledger := s.ledger.Clone()
	for _, tx := range txs {
		if err := ledger.Register(tx); err != nil {
			return fmt.Errorf("cannot import transaction %q: %w", tx.ID, err)
		}
	}
	s.ledger = ledger
	s.log.Info("transactions imported", zap.Int("count", len(txs)))
	s.persist(ctx, LedgerKey)
	return nil
}

// Report aggregates the current state over w, skipping orphaned transactions.
func (s *Store) Report(w date.Window) *Report {
	return Aggregate(s.catalog, s.ledger, w, SkipOrphans)
}

// persist writes one key. Failures are logged and kept in s.err.
func (s *Store) persist(ctx context.Context, key string) {
	var buf bytes.Buffer
	var err error
	switch key {
	case CatalogKey:
		err = EncodeCatalog(&buf, s.catalog)
	case LedgerKey:
		err = EncodeLedger(&buf, s.ledger)
	default:
		panic(fmt.Sprintf("unknown key %q", key))
	}
	if err == nil {
		err = s.kv.Put(ctx, key, buf.Bytes())
	}
	if err != nil {
		s.err = fmt.Errorf("cannot persist %s: %w", key, err)
		s.log.Warn("persistence failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.log.Debug("persisted", zap.String("key", key), zap.Int("bytes", buf.Len()))
}
