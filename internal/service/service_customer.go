package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/customer-service/internal/logger"
	"github.com/MKhiriev/customer-service/internal/store"
	"github.com/MKhiriev/customer-service/internal/validators"
	"github.com/MKhiriev/customer-service/models"
)

// customerService implements [CustomerService] on top of the customer
// repository. Write operations validate the payload before touching the
// database; a validation failure surfaces as [ErrInvalidDataProvided] so
// the transport layer can map it to 400.
type customerService struct {
	repository store.CustomerRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewCustomerService(repository store.CustomerRepository, logger *logger.Logger) CustomerService {
	logger.Debug().Msg("creating customer service")
	return &customerService{
		repository: repository,
		validator:  validators.NewCustomerValidator(),
		logger:     logger,
	}
}

// CreateCustomer validates the payload and persists a new record. The
// returned customer carries the database-assigned id. Any id supplied by
// the caller is ignored: the database owns id assignment.
func (s *customerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, customer); err != nil {
		log.Err(err).Str("func", "*customerService.CreateCustomer").Msg("customer payload failed validation")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	customer.ID = 0
	return s.repository.CreateCustomer(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	return s.repository.GetCustomer(ctx, id)
}

// UpdateCustomer validates the replacement payload and overwrites every
// mutable field of the record with the given id. The repository reports
// [store.ErrCustomerNotFound] for unknown ids.
func (s *customerService) UpdateCustomer(ctx context.Context, id int64, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, customer); err != nil {
		log.Err(err).Str("func", "*customerService.UpdateCustomer").Msg("customer payload failed validation")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.UpdateCustomer(ctx, id, customer)
}

// DeleteCustomer removes the record if present. Absent ids are not an
// error: delete is idempotent end to end.
func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.repository.DeleteCustomer(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	return s.repository.ListCustomers(ctx, filter)
}
