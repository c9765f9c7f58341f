package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/customer-service/internal/logger"
	"github.com/MKhiriev/customer-service/internal/utils"
	"github.com/MKhiriev/customer-service/models"
)

type httpCustomerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCustomerAdapter constructs an HTTP/REST implementation of
// [CustomerAPI]. It normalises and validates the base URL from address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPCustomerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (CustomerAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpCustomerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCustomerAdapter) ServiceInfo(ctx context.Context) (models.ServiceInfo, error) {
	var info models.ServiceInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/")
	if err != nil {
		return models.ServiceInfo{}, fmt.Errorf("service info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceInfo{}, err
	}

	return info, nil
}

func (h *httpCustomerAdapter) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	var created models.Customer

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(customer).
		SetResult(&created).
		Post("/customers")
	if err != nil {
		return models.Customer{}, fmt.Errorf("create customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	return created, nil
}

func (h *httpCustomerAdapter) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	var customer models.Customer

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&customer).
		Get(fmt.Sprintf("/customers/%d", id))
	if err != nil {
		return models.Customer{}, fmt.Errorf("get customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	return customer, nil
}

func (h *httpCustomerAdapter) UpdateCustomer(ctx context.Context, id int64, customer models.Customer) (models.Customer, error) {
	var updated models.Customer

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(customer).
		SetResult(&updated).
		Put(fmt.Sprintf("/customers/%d", id))
	if err != nil {
		return models.Customer{}, fmt.Errorf("update customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	return updated, nil
}

func (h *httpCustomerAdapter) DeleteCustomer(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/customers/%d", id))
	if err != nil {
		return fmt.Errorf("delete customer request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCustomerAdapter) ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	var customers []models.Customer

	req := h.client.R().
		SetContext(ctx).
		SetResult(&customers)

	if filter.Email != "" {
		req.SetQueryParam("email", filter.Email)
	}
	if filter.LastName != "" {
		req.SetQueryParam("last_name", filter.LastName)
	}

	resp, err := req.Get("/customers")
	if err != nil {
		return nil, fmt.Errorf("list customers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return customers, nil
}
