// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/customer-service/internal/logger"
	"github.com/MKhiriev/customer-service/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpCustomerAdapter {
	t.Helper()

	a, err := NewHTTPCustomerAdapter(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCustomerAdapter)
}

func sampleCustomer(id int64) models.Customer {
	return models.Customer{
		ID:          id,
		FirstName:   "Grace",
		LastName:    "Hopper",
		Email:       "grace@example.com",
		PhoneNumber: "+1-555-0199",
	}
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPCustomerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPCustomerAdapter("", time.Second, logger.Nop())

	require.Error(t, err)
}

func TestNewHTTPCustomerAdapter_SchemelessAddress(t *testing.T) {
	a, err := NewHTTPCustomerAdapter("localhost:8080", time.Second, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, a)
}

// ── ServiceInfo ─────────────────────────────────────────────────────────────

func TestServiceInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ServiceInfo{Name: "Customer Service", Version: "1.0.0"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	info, err := a.ServiceInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Customer Service", info.Name)
	assert.Equal(t, "1.0.0", info.Version)
}

// ── CreateCustomer ──────────────────────────────────────────────────────────

func TestCreateCustomer_Adapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var received models.Customer
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.ID = 11

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateCustomer(context.Background(), sampleCustomer(0))

	require.NoError(t, err)
	assert.EqualValues(t, 11, created.ID)
	assert.Equal(t, "grace@example.com", created.Email)
}

func TestCreateCustomer_Adapter_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid data provided"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateCustomer(context.Background(), models.Customer{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── GetCustomer ─────────────────────────────────────────────────────────────

func TestGetCustomer_Adapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers/11", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sampleCustomer(11))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetCustomer(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, sampleCustomer(11), got)
}

func TestGetCustomer_Adapter_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCustomer(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── UpdateCustomer ──────────────────────────────────────────────────────────

func TestUpdateCustomer_Adapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/customers/11", r.URL.Path)

		var received models.Customer
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.ID = 11

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	replacement := sampleCustomer(0)
	replacement.Email = "new@email.com"

	a := newTestAdapter(t, srv.URL)
	updated, err := a.UpdateCustomer(context.Background(), 11, replacement)

	require.NoError(t, err)
	assert.EqualValues(t, 11, updated.ID)
	assert.Equal(t, "new@email.com", updated.Email)
}

// ── DeleteCustomer ──────────────────────────────────────────────────────────

func TestDeleteCustomer_Adapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/customers/11", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.DeleteCustomer(context.Background(), 11))
}

// ── ListCustomers ───────────────────────────────────────────────────────────

func TestListCustomers_Adapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "grace@example.com", r.URL.Query().Get("email"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Customer{sampleCustomer(1)})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListCustomers(context.Background(), models.CustomerFilter{Email: "grace@example.com"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grace@example.com", got[0].Email)
}

func TestListCustomers_Adapter_NoFilterParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Customer{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListCustomers(context.Background(), models.CustomerFilter{})

	require.NoError(t, err)
	assert.Empty(t, got)
}
