package service

import (
	"context"

	"github.com/MKhiriev/customer-service/models"
)

// CustomerService owns the business rules of the customer resource:
// payload validation on writes and delegation to the repository.
type CustomerService interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, customer models.Customer) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error)
}

// AppInfoService reports service identity and build metadata for the
// index endpoint.
type AppInfoService interface {
	GetServiceInfo(ctx context.Context) models.ServiceInfo
}
