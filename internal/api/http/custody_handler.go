package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/service"
)

// CustodyHandler exposes custody actions over HTTP.
type CustodyHandler struct {
	custodies service.CustodyService
}

func NewCustodyHandler(custodies service.CustodyService) *CustodyHandler {
	return &CustodyHandler{custodies: custodies}
}

func (h *CustodyHandler) Create(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		Type        string `json:"type"`
		Description string `json:"description"`
		ValueCents  int64  `json:"value_cents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, domain.Validationf("invalid request body: %v", err))
		return
	}
	custody, err := h.custodies.CreateCustody(r.Context(), orderID, service.CreateCustodyInput{
		Type:        domain.CustodyType(strings.ToUpper(payload.Type)),
		Description: payload.Description,
		ValueCents:  payload.ValueCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, custody)
}

func (h *CustodyHandler) Decide(w http.ResponseWriter, r *http.Request) {
	custodyID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		Outcome string `json:"outcome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, domain.Validationf("invalid request body: %v", err))
		return
	}
	custody, err := h.custodies.Decide(r.Context(), custodyID, domain.CustodyStatus(strings.ToUpper(payload.Outcome)))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, custody)
}

func (h *CustodyHandler) AttachReturnProof(w http.ResponseWriter, r *http.Request) {
	custodyID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var payload service.ReturnProofInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, domain.Validationf("invalid request body: %v", err))
		return
	}
	proof, err := h.custodies.AttachReturnProof(r.Context(), custodyID, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, proof)
}
