package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/thethao247/backend/apperrors"
)

// ApiResponse is the envelope every endpoint answers with.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// writeError maps an error onto its HTTP status and client message via
// apperrors. Unclassified errors surface as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.GetStatus(err), ApiResponse{
		Success: false,
		Message: apperrors.GetMessage(err),
	})
}
