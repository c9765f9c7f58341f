package store

import (
	"context"

	"github.com/MKhiriev/customer-service/models"
)

// CustomerRepository owns persistence of customer records.
//
// Implementations are backed by a relational database; every method is safe
// for concurrent use and scoped to a single statement (or transaction) per
// call.
type CustomerRepository interface {
	// CreateCustomer persists a new record and returns it with the
	// database-assigned ID populated.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	// GetCustomer returns the record with the given id, or
	// [ErrCustomerNotFound].
	GetCustomer(ctx context.Context, id int64) (models.Customer, error)

	// UpdateCustomer replaces all mutable fields of the record with the
	// given id and returns the stored result. Returns
	// [ErrCustomerNotFound] if no such record exists.
	UpdateCustomer(ctx context.Context, id int64, customer models.Customer) (models.Customer, error)

	// DeleteCustomer removes the record with the given id. Deleting an
	// absent record is not an error.
	DeleteCustomer(ctx context.Context, id int64) error

	// ListCustomers returns all records matching the filter, in id order.
	// A zero filter returns every record.
	ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error)
}
