// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the customer service REST API.
//
// The primary abstraction is [CustomerAPI], which decouples callers from the
// underlying protocol. The package ships an HTTP implementation
// ([NewHTTPCustomerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/customer-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/customer_api_mock.go -package=mock

// CustomerAPI defines transport-agnostic access to the customer service.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type CustomerAPI interface {
	// ServiceInfo fetches the service identity from the API root.
	ServiceInfo(ctx context.Context) (models.ServiceInfo, error)

	// CreateCustomer registers a new customer record and returns it with
	// the server-assigned id.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	// GetCustomer fetches a single record by id. Returns [ErrNotFound]
	// for unknown ids.
	GetCustomer(ctx context.Context, id int64) (models.Customer, error)

	// UpdateCustomer replaces every field of the record with the given id
	// and returns the stored result.
	UpdateCustomer(ctx context.Context, id int64, customer models.Customer) (models.Customer, error)

	// DeleteCustomer removes the record with the given id. Unknown ids
	// succeed: delete is idempotent.
	DeleteCustomer(ctx context.Context, id int64) error

	// ListCustomers fetches records matching the filter, all records when
	// the filter is zero.
	ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error)
}
