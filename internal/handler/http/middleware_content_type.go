package http

import (
	"net/http"
	"strings"
)

const contentTypeJSON = "application/json"

// withJSONContentType rejects write requests whose Content-Type is not JSON
// before the body is read. The check runs ahead of any payload validation,
// so a missing header answers 415 even for an empty body.
func withJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		if !strings.Contains(contentType, contentTypeJSON) {
			writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be "+contentTypeJSON)
			return
		}

		next.ServeHTTP(w, r)
	})
}
