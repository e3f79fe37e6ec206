package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wortwahl/wortwahl-api/internal/store"
)

// Dialect selects the SQL flavor used for placeholders and migrations.
type Dialect string

// Supported dialects.
const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// queries holds the dialect-specific SQL statements.
type queries struct {
	get    string
	upsert string
	del    string
}

var dialectQueries = map[Dialect]queries{
	DialectSQLite: {
		get: `SELECT value FROM kv_blobs WHERE key = ?`,
		upsert: `INSERT INTO kv_blobs (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		del: `DELETE FROM kv_blobs WHERE key = ?`,
	},
	DialectPostgres: {
		get: `SELECT value FROM kv_blobs WHERE key = $1`,
		upsert: `INSERT INTO kv_blobs (key, value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		del: `DELETE FROM kv_blobs WHERE key = $1`,
	},
}

// Store implements the store.KV interface using a SQL database as the
// storage backend.
type Store struct {
	db      store.DBTX
	queries queries
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a SQL implementation of the KV interface. It accepts a
// database connection or transaction that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func New(db store.DBTX, dialect Dialect, logger *slog.Logger) (*Store, error) {
	if db == nil {
		panic("db cannot be nil")
	}
	q, ok := dialectQueries[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:      db,
		queries: q,
		logger:  logger.With(slog.String("component", "sqlkv")),
		now:     time.Now,
	}, nil
}

// Ensure Store implements store.KV interface
var _ store.KV = (*Store)(nil)

// Get implements store.KV.Get.
// Returns store.ErrKeyNotFound if the key does not exist.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, s.queries.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", store.ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, store.NewStoreError("kv_blob", "get", key, err)
	}
	return value, nil
}

// Set implements store.KV.Set. Upserts the value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, s.queries.upsert, key, value, s.now().UTC())
	if err != nil {
		return store.NewStoreError("kv_blob", "set", key, err)
	}
	return nil
}

// Delete implements store.KV.Delete. Deleting a missing key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, s.queries.del, key)
	if err != nil {
		return store.NewStoreError("kv_blob", "delete", key, err)
	}
	return nil
}
