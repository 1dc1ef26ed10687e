package main

import (
	"context"
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

type healthCheck func(ctx context.Context) error

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string, len(app.healthChecks)),
	}

	healthy := true
	for name, check := range app.healthChecks {
		status := "ok"
		if err := check(ctx); err != nil {
			app.logger.Warnw("health check failed", "service", name, "error", err)
			status = "error"
			healthy = false
		}
		response.Services[name] = status
	}

	// if any service is down, mark as unhealthy
	if !healthy {
		response.Status = "unhealthy"
		if err := writeJson(w, http.StatusServiceUnavailable, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
