package controllers

import (
	"net/http"
	"time"

	"github.com/stockflow/stockflow-backend/api/responses"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /api/health. It reports liveness only; datasource
// reachability is left to the orchestrator's readiness probes.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, healthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
