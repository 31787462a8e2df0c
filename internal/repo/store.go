// Package repo is the Postgres persistence layer. Every tenant-scoped query
// filters on the caller's institution_id inside the statement itself, so a
// row that is absent and a row that belongs to another institution are
// indistinguishable to callers.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/platformbuilds/athlos-core/internal/config"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

// Store wraps the database handle. All repository methods hang off it.
type Store struct {
	db  *sqlx.DB
	log logger.Logger
}

// Open connects to Postgres and verifies the connection. A failure here is
// fatal at startup.
func Open(cfg config.DatabaseConfig, log logger.Logger) (*Store, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping is used by the readiness endpoint.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		s.safeRollback(tx)
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) safeRollback(tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil && err.Error() != "sql: transaction has already been committed or rolled back" {
		s.log.Warn("rollback failed", "error", err)
	}
}

// rowTimes receives server-assigned timestamps from INSERT ... RETURNING.
type rowTimes struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// recordedTimes is rowTimes plus the recorded_at column used by attendance
// and assessment results.
type recordedTimes struct {
	RecordedAt time.Time `db:"recorded_at"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
