package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/service"
)

// RentalHandler answers booking-calendar queries.
type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

func (h *RentalHandler) Availability(w http.ResponseWriter, r *http.Request) {
	clothID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	delivery, err := time.Parse("2006-01-02", q.Get("delivery_date"))
	if err != nil {
		writeError(w, domain.Validationf("invalid delivery_date %q, expected YYYY-MM-DD", q.Get("delivery_date")))
		return
	}
	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		writeError(w, domain.Validationf("invalid days %q", q.Get("days")))
		return
	}
	var excludeOrderID int64
	if raw := q.Get("exclude_order"); raw != "" {
		excludeOrderID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, domain.Validationf("invalid exclude_order %q", raw))
			return
		}
	}

	available, err := h.rentals.IsAvailable(r.Context(), clothID, delivery, days, excludeOrderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (h *RentalHandler) UnavailableDays(w http.ResponseWriter, r *http.Request) {
	clothID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	days, err := h.rentals.UnavailableDays(r.Context(), clothID)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Format("2006-01-02"))
	}
	writeJSON(w, http.StatusOK, map[string][]string{"unavailable_days": out})
}
