package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/customer-service/internal/logger"
	"github.com/MKhiriev/customer-service/models"
)

// customerRepository is the SQL-backed implementation of
// [CustomerRepository]. It works against the "customers" table on either
// database backend; the wrapped [DB] carries the placeholder format the
// query builders need.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCustomer persists a new customer record and returns the fully
// populated [models.Customer] with the database-assigned ID.
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new record.
func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCustomerQuery(customer, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error building insert query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error executing insert")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return models.Customer{}, ErrCustomerNotSaved
		default:
			return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.Customer
	if err := row.Scan(&saved.ID, &saved.FirstName, &saved.LastName, &saved.Email, &saved.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotSaved
		}
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error: scanning error")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetCustomer retrieves the customer record with the given id.
//
// Error handling:
//   - empty result set → [ErrCustomerNotFound].
//   - Any driver-level error → wrapped as "unexpected DB error".
func (r *customerRepository) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCustomerQuery(id, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetCustomer").Msg("error building select query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Customer
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}
		log.Err(err).Str("func", "*customerRepository.GetCustomer").Msg("error executing select")
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.ID, &found.FirstName, &found.LastName, &found.Email, &found.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}
		log.Err(err).Str("func", "*customerRepository.GetCustomer").Msg("error: scanning error")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateCustomer overwrites every mutable column of the record with the
// given id and returns the stored result.
//
// A zero rows-affected count means the id does not exist →
// [ErrCustomerNotFound].
func (r *customerRepository) UpdateCustomer(ctx context.Context, id int64, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCustomerQuery(id, customer, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.UpdateCustomer").Msg("error building update query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.UpdateCustomer").Msg("error executing update")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.Customer{}, ErrCustomerNotFound
	}

	updated := customer
	updated.ID = id
	return updated, nil
}

// DeleteCustomer removes the record with the given id. The operation is
// idempotent: deleting an absent record succeeds silently.
func (r *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCustomerQuery(id, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListCustomers returns every record matching the filter, ordered by id.
// A zero filter returns the full table contents.
func (r *customerRepository) ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCustomersQuery(filter, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber); err != nil {
			log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}
