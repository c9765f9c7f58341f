// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/customer-service/internal/logger"
	"github.com/MKhiriev/customer-service/internal/utils"
	"github.com/MKhiriev/customer-service/models"
)

// customerID extracts the {id} path parameter. A non-numeric id means the
// URL names no existing resource, so the caller should answer 404.
func customerID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	created, err := h.services.CustomerService.CreateCustomer(ctx, customer)
	if err != nil {
		log.Err(err).Msg("customer was not created")
		respondError(w, err)
		return
	}

	log.Debug().Int64("id", created.ID).Msg("customer created")

	w.Header().Set("Location", fmt.Sprintf("/customers/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := customerID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "customer id must be an integer")
		return
	}

	customer, err := h.services.CustomerService.GetCustomer(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("customer lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

// updateCustomer replaces every field of an existing record. The resource
// must exist before the payload is examined: an unknown id answers 404 even
// when the body would not validate.
func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := customerID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "customer id must be an integer")
		return
	}

	if _, err := h.services.CustomerService.GetCustomer(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("customer to update was not found")
		respondError(w, err)
		return
	}

	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	updated, err := h.services.CustomerService.UpdateCustomer(ctx, id, customer)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("customer was not updated")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteCustomer always answers 204: deleting an absent record succeeds.
func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := customerID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "customer id must be an integer")
		return
	}

	if err := h.services.CustomerService.DeleteCustomer(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("customer was not deleted")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.CustomerFilter{
		Email:    r.URL.Query().Get("email"),
		LastName: r.URL.Query().Get("last_name"),
	}

	customers, err := h.services.CustomerService.ListCustomers(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing customers failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}
