package handlers

import (
	"net/http"
)

// HealthHandler - liveness probe
func HealthHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
