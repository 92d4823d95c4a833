package handler

import (
	"encoding/json"
	"net/http"
)

// Handler describes the service at the root path.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status":  "ok",
		"message": "Petal Pink Storefront API",
		"path":    r.URL.Path,
		"docs":    "/swagger/index.html",
	}

	_ = json.NewEncoder(w).Encode(response)
}
