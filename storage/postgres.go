package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const statementTimeout = 5 * time.Second

// Postgres is a KV stored in a single PostgreSQL table.
type Postgres struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenPostgres connects to the database at url and ensures the table exists.
func OpenPostgres(ctx context.Context, url string, log *zap.Logger) (*Postgres, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", describeConnectionError(err))
	}

	p := &Postgres{db: db, log: log}
	if err := p.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("connected to PostgreSQL")
	return p, nil
}

func (p *Postgres) ensureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS pescados_kv (
    key TEXT PRIMARY KEY,
    value JSON NOT NULL,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);`
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	var value []byte
	err := p.db.QueryRowContext(ctx, `SELECT value FROM pescados_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	const upsert = `INSERT INTO pescados_kv(key, value, updated_at) VALUES($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := p.db.ExecContext(ctx, upsert, key, string(value)); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	p.log.Debug("stored", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (p *Postgres) Close() error { return p.db.Close() }

// describeConnectionError adds a hint to the most common connection failures.
func describeConnectionError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "role") && strings.Contains(msg, "does not exist"):
		return fmt.Errorf("%w (the database user does not exist, check the user in the database URL)", err)
	case strings.Contains(msg, "password authentication failed"):
		return fmt.Errorf("%w (credentials rejected, check the user and password in the database URL)", err)
	case strings.Contains(msg, "connection refused"):
		return fmt.Errorf("%w (is the server running and reachable?)", err)
	default:
		return err
	}
}
