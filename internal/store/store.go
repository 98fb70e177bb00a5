// Package store persists wizard session snapshots so a session survives a
// server restart. Snapshots are opaque JSON documents keyed by session id.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
)

// Drivers accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Store defines the persistence interface for wizard sessions.
type Store interface {
	// SaveSession inserts or replaces the snapshot of a session. The
	// session expires ttl after the save.
	SaveSession(ctx context.Context, id string, state []byte, ttl time.Duration) error
	// LoadSession returns the snapshot of a live session, or nil when the
	// session is unknown or expired.
	LoadSession(ctx context.Context, id string) ([]byte, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates the Store for driver. dsn is a file path for sqlite and a
// connection string for postgres; it is ignored for memory.
func Open(ctx context.Context, driver, dsn string, poolCfg *PoolConfig) (Store, error) {
	switch driver {
	case DriverSQLite, "":
		return NewSQLite(dsn)
	case DriverPostgres:
		return NewPostgres(ctx, dsn, poolCfg)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
