package handlers

import (
	"net/http"
	"time"
)

// Health check endpoint
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Server is running",
		Data: map[string]interface{}{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}
