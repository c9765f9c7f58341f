package http

import (
	"net/http"

	"github.com/MKhiriev/customer-service/internal/utils"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetServiceInfo(r.Context())

	utils.WriteJSON(w, info, http.StatusOK)
}
