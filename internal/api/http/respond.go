package http

import (
	"encoding/json"
	"net/http"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the business error taxonomy to status codes. Anything
// without a kind is an internal fault and stays opaque to the caller.
func writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict, domain.KindInvalidState:
		status = http.StatusConflict
	case domain.KindPrecondition:
		status = http.StatusPreconditionFailed
	}
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "INTERNAL", Message: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: string(kind), Message: err.Error()})
}
