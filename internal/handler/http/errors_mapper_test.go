package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/customer-service/internal/service"
	"github.com/MKhiriev/customer-service/internal/store"
	"github.com/MKhiriev/customer-service/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"not found", store.ErrCustomerNotFound, http.StatusNotFound},
		{"not saved", store.ErrCustomerNotSaved, http.StatusInternalServerError},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unmapped error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped invalid data", fmt.Errorf("%w: email is empty", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrCustomerNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestRespondError_ClientErrorCarriesMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, fmt.Errorf("%w: email is empty", service.ErrInvalidDataProvided))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Contains(t, body.Message, "email is empty")
}

func TestRespondError_ServerErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
	assert.NotContains(t, body.Message, "connection refused")
}

func TestWriteError_SetsJSONContentType(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, http.StatusNotFound, "customer with id 99 was not found")

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
