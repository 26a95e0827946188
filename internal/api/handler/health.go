package handler

import (
	"context"
	"net/http"

	"github.com/auracanvas/aura-api/internal/api/response"
)

// Pinger reports backing store connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including database connectivity
func ReadyCheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}

// NotImplemented answers the credits and payment webhook stubs
func NotImplemented(w http.ResponseWriter, r *http.Request) {
	response.NotImplemented(w)
}
