// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the response body with the given
// status code, setting Content-Type to application/json.
//
// Headers already present on w (for example Location) are preserved. If
// marshaling fails the response becomes a plain 500 and the error is
// returned wrapped.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response body", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
