package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/service"
)

// PaymentHandler exposes payment actions over HTTP.
type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) Add(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		AmountCents int64  `json:"amount_cents"`
		Type        string `json:"type"`
		Status      string `json:"status"`
		Notes       string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, domain.Validationf("invalid request body: %v", err))
		return
	}
	payment, err := h.payments.AddPayment(r.Context(), orderID, service.AddPaymentInput{
		AmountCents: payload.AmountCents,
		Type:        domain.PaymentType(strings.ToUpper(payload.Type)),
		Status:      domain.PaymentStatus(strings.ToUpper(payload.Status)),
		Notes:       payload.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	paymentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	payment, err := h.payments.PayPayment(r.Context(), paymentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	paymentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		Notes string `json:"notes"`
	}
	// body is optional for cancellation
	_ = json.NewDecoder(r.Body).Decode(&payload)

	payment, err := h.payments.CancelPayment(r.Context(), paymentID, payload.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
