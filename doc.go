// Package pescados keeps the books of a small seafood trading operation.
//
// It records purchases and sales of products from a catalog and derives
// profitability views over a date window. It is designed to be local-first and
// single-user: the whole state is two JSON documents kept in a key-value store.
//
// The core functionalities include:
//   - Catalog: the products traded, with their default purchase and sale prices per kg.
//   - Ledger: the immutable purchase and sale transactions, newest first.
//   - Aggregation: a stateless pass that folds the ledger, restricted to a
//     date.Window, into per-product and total figures.
//   - Projections: chart-ready reshaping of the aggregation (bars, cumulative
//     line, pie).
//   - Store: the explicit owner of the catalog and ledger, mirroring every
//     mutation to a storage.KV.
//
// This package serves as the foundational logic for the `psc` command-line tool.
package pescados
