package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/customer-service/internal/service"
	"github.com/MKhiriev/customer-service/internal/store"
	"github.com/MKhiriev/customer-service/internal/utils"
	"github.com/MKhiriev/customer-service/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrCustomerNotFound: http.StatusNotFound,
	store.ErrCustomerNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError emits the uniform JSON error body carried by every non-2xx
// response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Status:  statusCode,
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}

// respondError maps a service or store error to its HTTP status. Client
// errors carry the underlying message; server errors hide it behind the
// canonical status text.
func respondError(w http.ResponseWriter, err error) {
	statusCode := statusFromError(err)

	message := err.Error()
	if statusCode >= http.StatusInternalServerError {
		message = http.StatusText(statusCode)
	}

	writeError(w, statusCode, message)
}
