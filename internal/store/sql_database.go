package store

import (
	"github.com/MKhiriev/customer-service/migrations"
)

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// ResetSchema rolls the schema back and re-applies all migrations, leaving
// an empty customers table. It is the test-isolation primitive: functional
// suites call it between runs instead of deleting rows one by one.
func (db *DB) ResetSchema() error {
	return migrations.Reset(db.DB, db.dialect)
}
