package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/customer-service/internal/config"
	"github.com/MKhiriev/customer-service/internal/logger"
)

// Storages bundles every repository the service layer depends on, together
// with the shared database connection. It is constructed once at process
// start and passed down explicitly; there is no package-level singleton.
type Storages struct {
	CustomerRepository CustomerRepository

	db *DB
}

// NewStorages opens the database selected by the DSN scheme, applies
// migrations, and wires the repositories.
//
// DSNs starting with "postgres://" or "postgresql://" select the PostgreSQL
// backend; everything else is treated as a SQLite path (including ":memory:").
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Storages{
		CustomerRepository: NewCustomerRepository(db, log),
		db:                 db,
	}, nil
}

// Reset drops and re-creates the whole schema. Functional test suites call
// it between runs for isolation; production code never does.
func (s *Storages) Reset(ctx context.Context) error {
	return s.db.ResetSchema()
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
